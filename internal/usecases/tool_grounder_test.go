package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodiespot/concierge/internal/domain"
)

func TestToolCallGrounder_IsGrounded(t *testing.T) {
	tests := map[string]struct {
		function  string
		arguments string
		userText  string
		expected  bool
	}{
		"other-tools-always-pass": {
			function:  "make_reservation",
			arguments: `{"restaurant_id":"rest_1"}`,
			userText:  "book me a table anywhere",
			expected:  true,
		},
		"cuisine-mentioned-directly": {
			function:  "search_restaurants",
			arguments: `{"cuisine":"Italian"}`,
			userText:  "I want italian food tonight",
			expected:  true,
		},
		"cuisine-via-alias": {
			function:  "search_restaurants",
			arguments: `{"cuisine":"japanese"}`,
			userText:  "somewhere with good sushi",
			expected:  true,
		},
		"cuisine-not-mentioned": {
			function:  "search_restaurants",
			arguments: `{"cuisine":"french"}`,
			userText:  "I want dinner tonight",
			expected:  false,
		},
		"location-via-alias": {
			function:  "search_restaurants",
			arguments: `{"location":"waterfront"}`,
			userText:  "something riverside would be nice",
			expected:  true,
		},
		"location-not-mentioned": {
			function:  "search_restaurants",
			arguments: `{"cuisine":"italian","location":"uptown"}`,
			userText:  "italian food please",
			expected:  false,
		},
		"price-via-dollar-signs": {
			function:  "search_restaurants",
			arguments: `{"price_range":2}`,
			userText:  "somewhere around $$",
			expected:  true,
		},
		"dollar-signs-below-tier": {
			function:  "search_restaurants",
			arguments: `{"price_range":3}`,
			userText:  "somewhere around $$",
			expected:  false,
		},
		"price-via-tier-word": {
			function:  "search_restaurants",
			arguments: `{"price_range":1}`,
			userText:  "something cheap for lunch",
			expected:  true,
		},
		"price-via-generic-word": {
			function:  "search_restaurants",
			arguments: `{"price_range":3}`,
			userText:  "depends on the cost I guess",
			expected:  true,
		},
		"price-not-mentioned": {
			function:  "search_restaurants",
			arguments: `{"price_range":2}`,
			userText:  "dinner for two",
			expected:  false,
		},
		"empty-arguments-pass": {
			function:  "search_restaurants",
			arguments: `{}`,
			userText:  "anything at all",
			expected:  true,
		},
		"malformed-arguments-fail-closed": {
			function:  "search_restaurants",
			arguments: `{"cuisine":`,
			userText:  "italian food",
			expected:  false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			call := domain.LLMToolCall{Function: tt.function, Arguments: tt.arguments}
			assert.Equal(t, tt.expected, ToolCallGrounder{}.IsGrounded(call, tt.userText))
		})
	}
}
