package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

// LLMToolManager manages a collection of LLM tools.
type LLMToolManager struct {
	tools map[string]domain.LLMTool
}

// NewLLMToolManager creates a new LLMToolManager with the provided tools.
func NewLLMToolManager(tools ...domain.LLMTool) LLMToolManager {
	toolMap := make(map[string]domain.LLMTool)
	for _, tool := range tools {
		toolMap[tool.Definition().Function.Name] = tool
	}
	return LLMToolManager{
		tools: toolMap,
	}
}

// StatusMessage returns a status message about the tool execution.
func (m LLMToolManager) StatusMessage(functionName string) string {
	if tool, ok := m.tools[functionName]; ok {
		if msg := tool.StatusMessage(); msg != "" {
			return msg
		}
	}
	return "⏳ Processing request..."
}

// List returns all registered LLM tools.
func (m LLMToolManager) List() []domain.LLMToolDefinition {
	toolList := make([]domain.LLMToolDefinition, 0, len(m.tools))
	for _, tool := range m.tools {
		toolList = append(toolList, tool.Definition())
	}
	return toolList
}

// Call invokes the appropriate tool based on the function call.
func (m LLMToolManager) Call(ctx context.Context, call domain.LLMToolCall, conversationHistory []domain.LLMChatMessage) domain.LLMChatMessage {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("tool.function", call.Function),
		),
	)
	defer span.End()
	tool, exists := m.tools[call.Function]
	if !exists {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf("I don't know how to execute the tool '%s'.", call.Function),
		}
	}
	return tool.Call(spanCtx, call, conversationHistory)
}

// unmarshalToolArguments unmarshals the tool arguments from a JSON string into
// the target struct, ensuring that only a single JSON object is present and that there are no unknown fields.
func unmarshalToolArguments(arguments string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}

// InitLLMToolRegistry initializes the tool registry and registers it in the dependency container.
type InitLLMToolRegistry struct {
	Finder       RestaurantFinder           `resolve:""`
	Availability AvailabilityEngine         `resolve:""`
	Booker       ReservationBooker          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize builds the four reservation tools and registers the registry.
func (i InitLLMToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMToolRegistry](NewLLMToolManager(
		NewRestaurantSearchTool(
			i.Finder,
		),
		NewRestaurantDetailsTool(
			i.Finder,
		),
		NewAvailabilityCheckTool(
			i.Availability,
			i.TimeProvider,
		),
		NewReservationMakerTool(
			i.Booker,
			i.Finder,
			i.Availability,
			i.TimeProvider,
		),
	))
	return ctx, nil
}
