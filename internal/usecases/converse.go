package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

const (
	// Maximum number of chat history messages to include in the context
	MAX_CHAT_HISTORY_MESSAGES = 5

	// Keep tool selection deterministic to reduce malformed function arguments.
	CHAT_TEMPERATURE = 0.2

	CHAT_MAX_TOKENS = 1000

	// FALLBACK_REPLY is returned whenever the gateway fails mid-turn. The
	// conversation must always produce a reply, never a raw transport error.
	FALLBACK_REPLY = "I'm having trouble processing your request. Let me try a different approach."
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// ConverseResult is the outcome of one conversation turn.
type ConverseResult struct {
	Reply       string
	ToolResults []string
	Messages    []domain.LLMChatMessage
}

// Converse defines the interface for processing one conversation turn.
type Converse interface {
	Execute(ctx context.Context, userMessage, userName string, history []domain.LLMChatMessage) (ConverseResult, error)
}

// ConverseImpl is the implementation of the Converse use case. It runs the
// two-phase exchange: one model call with the tool schema attached to resolve
// intent, tool execution, then a second call without tools to ground the
// final reply in real tool output.
type ConverseImpl struct {
	llmClient      domain.LLMClient
	toolRegistry   domain.LLMToolRegistry
	timeProvider   domain.CurrentTimeProvider
	queryValidator QueryValidator
	grounder       ToolCallGrounder
	logger         *log.Logger
	model          string
}

// NewConverseImpl creates a new instance of ConverseImpl.
func NewConverseImpl(
	llmClient domain.LLMClient,
	toolRegistry domain.LLMToolRegistry,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	model string,
) ConverseImpl {
	return ConverseImpl{
		llmClient:    llmClient,
		toolRegistry: toolRegistry,
		timeProvider: timeProvider,
		logger:       logger,
		model:        model,
	}
}

// Execute processes one user message and returns the final reply, the raw
// tool result texts in execution order, and the full updated message list.
func (c ConverseImpl) Execute(ctx context.Context, userMessage, userName string, history []domain.LLMChatMessage) (ConverseResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userMessage) == "" {
		return ConverseResult{}, domain.NewValidationErr("message cannot be empty")
	}

	systemMessage, err := c.buildSystemMessage(userName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ConverseResult{}, err
	}

	messages := make([]domain.LLMChatMessage, 0, MAX_CHAT_HISTORY_MESSAGES+2)
	messages = append(messages, systemMessage)
	if len(history) > MAX_CHAT_HISTORY_MESSAGES {
		history = history[len(history)-MAX_CHAT_HISTORY_MESSAGES:]
	}
	messages = append(messages, history...)
	messages = append(messages, domain.LLMChatMessage{
		Role:    domain.ChatRole_User,
		Content: userMessage,
	})

	// Vague requests never reach the model with tools attached; asking for
	// missing criteria beats searching on invented ones.
	if c.queryValidator.IsVague(userMessage) {
		return ConverseResult{
			Reply:    c.queryValidator.ClarificationPrompt(),
			Messages: messages,
		}, nil
	}

	temperature := CHAT_TEMPERATURE
	maxTokens := CHAT_MAX_TOKENS

	response, err := c.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Tools:       c.toolRegistry.List(),
	})
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		c.logger.Printf("converse: intent call failed: %v", err)
		return ConverseResult{Reply: FALLBACK_REPLY, Messages: messages}, nil
	}
	RecordLLMTokensUsed(spanCtx, response.Usage.PromptTokens, response.Usage.CompletionTokens)

	if len(response.ToolCalls) == 0 {
		return ConverseResult{
			Reply:    response.Content,
			Messages: messages,
		}, nil
	}

	toolResults := []string{}
	for _, toolCall := range response.ToolCalls {
		if !c.grounder.IsGrounded(toolCall, userMessage) {
			c.logger.Printf("converse: dropped ungrounded %s call %s", toolCall.Function, toolCall.ID)
			RecordToolCallExecuted(spanCtx, toolCall.Function, true)
			continue
		}
		RecordToolCallExecuted(spanCtx, toolCall.Function, false)

		result := c.toolRegistry.Call(spanCtx, toolCall, messages)
		if !result.IsToolCallSuccess() {
			c.logger.Printf("converse: tool %s returned an error result", toolCall.Function)
		}
		toolResults = append(toolResults, result.Content)

		// Keep the call record and its result adjacent so the grounding turn
		// can attribute each result to its call.
		messages = append(messages, domain.LLMChatMessage{
			Role:      domain.ChatRole_Assistant,
			ToolCalls: []domain.LLMToolCall{toolCall},
		})
		messages = append(messages, result)
	}

	// Every call was dropped by the grounding guard; behave as if the model
	// had not called a tool.
	if len(toolResults) == 0 {
		reply := response.Content
		if strings.TrimSpace(reply) == "" {
			reply = c.queryValidator.ClarificationPrompt()
		}
		return ConverseResult{
			Reply:    reply,
			Messages: messages,
		}, nil
	}

	// No tool schema on the grounding call, so the model must answer in prose.
	grounded, err := c.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		c.logger.Printf("converse: grounding call failed: %v", err)
		return ConverseResult{Reply: FALLBACK_REPLY, ToolResults: toolResults, Messages: messages}, nil
	}
	RecordLLMTokensUsed(spanCtx, grounded.Usage.PromptTokens, grounded.Usage.CompletionTokens)

	return ConverseResult{
		Reply:       grounded.Content,
		ToolResults: toolResults,
		Messages:    messages,
	}, nil
}

// buildSystemMessage loads the embedded persona prompt and injects the user's
// name and the current date.
func (c ConverseImpl) buildSystemMessage(userName string) (domain.LLMChatMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return domain.LLMChatMessage{}, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return domain.LLMChatMessage{}, fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	if len(messages) == 0 {
		return domain.LLMChatMessage{}, fmt.Errorf("chat prompt is empty")
	}

	system := messages[0]
	system.Content = fmt.Sprintf(
		system.Content,
		userName,
		c.timeProvider.Now().Format(time.DateOnly),
	)
	return system, nil
}

// InitConverse initializes the Converse use case and registers it in the dependency container.
type InitConverse struct {
	LLMClient    domain.LLMClient           `resolve:""`
	ToolRegistry domain.LLMToolRegistry     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Model        string                     `config:"LLM_MODEL" default:"llama3-8b-8192"`
}

// Initialize initializes the ConverseImpl use case and registers it in the dependency container.
func (ic InitConverse) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[Converse](NewConverseImpl(
		ic.LLMClient,
		ic.ToolRegistry,
		ic.TimeProvider,
		ic.Logger,
		ic.Model,
	))
	return ctx, nil
}
