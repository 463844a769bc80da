package usecases

import (
	"encoding/json"
	"strings"

	"github.com/foodiespot/concierge/internal/domain"
)

// ToolCallGrounder rejects search_restaurants calls whose arguments cannot be
// traced back to the user's literal text. An ungrounded call is dropped
// before dispatch, as if the model had not called a tool at all.
type ToolCallGrounder struct{}

var cuisineAliases = map[string][]string{
	"italian":  {"pasta", "pizza", "italian food"},
	"chinese":  {"chinese food", "asian", "dim sum"},
	"japanese": {"sushi", "ramen", "japanese food"},
	"mexican":  {"tacos", "mexican food", "burritos"},
	"indian":   {"curry", "indian food", "tikka"},
	"thai":     {"thai food", "pad thai"},
	"american": {"burger", "american food", "steak"},
	"french":   {"french food", "bistro"},
}

var locationAliases = map[string][]string{
	"downtown":   {"city center", "central"},
	"uptown":     {"upper", "north"},
	"midtown":    {"middle", "center"},
	"west side":  {"western", "west"},
	"east side":  {"eastern", "east"},
	"waterfront": {"by the water", "near water", "riverside", "lakeside"},
}

var priceTierWords = map[int][]string{
	1: {"cheap", "inexpensive", "budget", "affordable"},
	2: {"moderate", "mid-range", "reasonable"},
	3: {"expensive", "high-end", "pricey"},
	4: {"very expensive", "luxury", "top-end", "finest"},
}

var genericPriceWords = []string{"price", "cost", "expensive", "cheap", "affordable", "budget"}

// IsGrounded reports whether every non-empty search argument in the tool call
// is present in the user's text, directly or through a known alias. Calls to
// tools other than search_restaurants always pass. Malformed argument
// payloads fail closed.
func (ToolCallGrounder) IsGrounded(toolCall domain.LLMToolCall, userText string) bool {
	if toolCall.Function != "search_restaurants" {
		return true
	}

	userText = strings.ToLower(userText)

	args := struct {
		Cuisine    string `json:"cuisine"`
		Location   string `json:"location"`
		PriceRange int    `json:"price_range"`
	}{}
	if err := json.Unmarshal([]byte(toolCall.Arguments), &args); err != nil {
		return false
	}

	if args.Cuisine != "" && !mentionedCuisine(userText, args.Cuisine) {
		return false
	}
	if args.Location != "" && !mentionedLocation(userText, args.Location) {
		return false
	}
	if args.PriceRange != 0 && !mentionedPrice(userText, args.PriceRange) {
		return false
	}

	return true
}

func mentionedCuisine(query, cuisine string) bool {
	cuisine = strings.ToLower(cuisine)
	if strings.Contains(query, cuisine) {
		return true
	}
	for _, alias := range cuisineAliases[cuisine] {
		if strings.Contains(query, alias) {
			return true
		}
	}
	return false
}

func mentionedLocation(query, location string) bool {
	location = strings.ToLower(location)
	if strings.Contains(query, location) {
		return true
	}
	for _, alias := range locationAliases[location] {
		if strings.Contains(query, alias) {
			return true
		}
	}
	return false
}

func mentionedPrice(query string, priceRange int) bool {
	// A literal $ run stands in for a price tier.
	dollarCount := strings.Count(query, "$")
	if dollarCount >= 1 && dollarCount <= 4 {
		return dollarCount >= priceRange
	}

	for _, word := range priceTierWords[priceRange] {
		if strings.Contains(query, word) {
			return true
		}
	}

	for _, word := range genericPriceWords {
		if strings.Contains(query, word) {
			return true
		}
	}

	return false
}
