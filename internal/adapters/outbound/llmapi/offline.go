package llmapi

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/foodiespot/concierge/internal/domain"
)

// OfflineHeuristicGateway is a deterministic stand-in for the chat API. It
// pattern-matches the user's text into one of the reservation tools and, on
// the grounding turn, relays the raw tool output. Replies are labeled so an
// operator can tell offline answers from model answers.
type OfflineHeuristicGateway struct{}

// NewOfflineHeuristicGateway creates a new offline gateway.
func NewOfflineHeuristicGateway() OfflineHeuristicGateway {
	return OfflineHeuristicGateway{}
}

const offlineLabel = "(offline mode) "

var (
	restaurantIDRe = regexp.MustCompile(`\brest_\d+\b`)
	isoDateRe      = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	clockTimeRe    = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	partySizeRe    = regexp.MustCompile(`(?:for|party of)\s+(\d+)\b`)
	customerNameRe = regexp.MustCompile(`(?:under|name is)\s+([A-Za-z]+(?:\s[A-Za-z]+)?)`)

	bookIntentRe         = regexp.MustCompile(`\b(book|reserve|reservation)\b`)
	availabilityIntentRe = regexp.MustCompile(`\b(availability|available|slots?|what time|open)\b`)
	detailsIntentRe      = regexp.MustCompile(`\b(details|tell me (?:more )?about|more info)\b`)

	offlineCuisines  = []string{"italian", "french", "indian", "chinese", "japanese", "thai", "mexican", "american", "mediterranean"}
	offlineLocations = []string{"downtown", "uptown", "midtown", "west side", "east side", "waterfront"}
)

// Chat implements domain.LLMClient.Chat without any network call.
func (g OfflineHeuristicGateway) Chat(_ context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	userText := strings.ToLower(lastUserMessage(req.Messages))

	// No tool schema means this is the grounding turn: relay tool output.
	if len(req.Tools) == 0 {
		if results := toolResults(req.Messages); results != "" {
			return domain.LLMChatResponse{Content: offlineLabel + results}, nil
		}
		return domain.LLMChatResponse{Content: offlineLabel + "I can help you search restaurants, check availability, and make reservations."}, nil
	}

	switch {
	case bookIntentRe.MatchString(userText):
		return g.reservationCall(userText)
	case availabilityIntentRe.MatchString(userText):
		return g.availabilityCall(userText)
	case detailsIntentRe.MatchString(userText):
		return g.detailsCall(userText)
	default:
		return g.searchCall(userText)
	}
}

func (g OfflineHeuristicGateway) reservationCall(userText string) (domain.LLMChatResponse, error) {
	restaurantID := restaurantIDRe.FindString(userText)
	date := isoDateRe.FindString(userText)
	reservationTime := clockTimeRe.FindString(userText)
	partySize := firstGroup(partySizeRe, userText)
	customerName := firstGroup(customerNameRe, userText)

	missing := []string{}
	if restaurantID == "" {
		missing = append(missing, "the restaurant id")
	}
	if date == "" {
		missing = append(missing, "the date (YYYY-MM-DD)")
	}
	if reservationTime == "" {
		missing = append(missing, "the time (HH:MM)")
	}
	if partySize == "" {
		missing = append(missing, "the party size")
	}
	if customerName == "" {
		missing = append(missing, "the name for the reservation")
	}
	if len(missing) > 0 {
		return domain.LLMChatResponse{
			Content: offlineLabel + "To book a table I still need " + strings.Join(missing, ", ") + ".",
		}, nil
	}

	size, _ := strconv.Atoi(partySize)
	return toolCallResponse("make_reservation", fmt.Sprintf(
		`{"restaurant_id":%q,"customer_name":%q,"date":%q,"time":%q,"party_size":%d}`,
		restaurantID, titleCase(customerName), date, padTime(reservationTime), size,
	)), nil
}

func (g OfflineHeuristicGateway) availabilityCall(userText string) (domain.LLMChatResponse, error) {
	restaurantID := restaurantIDRe.FindString(userText)
	date := isoDateRe.FindString(userText)
	if restaurantID == "" || date == "" {
		return domain.LLMChatResponse{
			Content: offlineLabel + "To check availability I need a restaurant id and a date in YYYY-MM-DD format.",
		}, nil
	}

	args := fmt.Sprintf(`{"restaurant_id":%q,"date":%q`, restaurantID, date)
	if reservationTime := clockTimeRe.FindString(userText); reservationTime != "" {
		args += fmt.Sprintf(`,"time":%q`, padTime(reservationTime))
	}
	if partySize := firstGroup(partySizeRe, userText); partySize != "" {
		size, _ := strconv.Atoi(partySize)
		args += fmt.Sprintf(`,"party_size":%d`, size)
	}
	args += "}"
	return toolCallResponse("check_availability", args), nil
}

func (g OfflineHeuristicGateway) detailsCall(userText string) (domain.LLMChatResponse, error) {
	restaurantID := restaurantIDRe.FindString(userText)
	if restaurantID == "" {
		return domain.LLMChatResponse{
			Content: offlineLabel + "Which restaurant would you like details for? A restaurant id like rest_1 works best.",
		}, nil
	}
	return toolCallResponse("get_restaurant_details", fmt.Sprintf(`{"restaurant_id":%q}`, restaurantID)), nil
}

func (g OfflineHeuristicGateway) searchCall(userText string) (domain.LLMChatResponse, error) {
	args := "{"
	sep := ""
	for _, cuisine := range offlineCuisines {
		if strings.Contains(userText, cuisine) {
			args += fmt.Sprintf(`%s"cuisine":%q`, sep, titleCase(cuisine))
			sep = ","
			break
		}
	}
	for _, location := range offlineLocations {
		if strings.Contains(userText, location) {
			args += fmt.Sprintf(`%s"location":%q`, sep, titleCase(location))
			sep = ","
			break
		}
	}
	if partySize := firstGroup(partySizeRe, userText); partySize != "" {
		size, _ := strconv.Atoi(partySize)
		args += fmt.Sprintf(`%s"party_size":%d`, sep, size)
		sep = ","
	}
	args += "}"

	if args == "{}" {
		return domain.LLMChatResponse{
			Content: offlineLabel + "What kind of restaurant are you looking for? A cuisine or a neighborhood helps.",
		}, nil
	}
	return toolCallResponse("search_restaurants", args), nil
}

func toolCallResponse(function, arguments string) domain.LLMChatResponse {
	return domain.LLMChatResponse{
		ToolCalls: []domain.LLMToolCall{
			{
				ID:        "offline_" + uuid.NewString()[:8],
				Function:  function,
				Arguments: arguments,
			},
		},
	}
}

func lastUserMessage(messages []domain.LLMChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.ChatRole_User {
			return messages[i].Content
		}
	}
	return ""
}

func toolResults(messages []domain.LLMChatMessage) string {
	results := []string{}
	for _, msg := range messages {
		if msg.Role == domain.ChatRole_Tool && msg.Content != "" {
			results = append(results, msg.Content)
		}
	}
	return strings.Join(results, "\n\n")
}

func firstGroup(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// padTime normalizes H:MM to HH:MM.
func padTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
