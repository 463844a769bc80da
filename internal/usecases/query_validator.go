package usecases

import (
	"regexp"
	"strings"
)

// QueryValidator short-circuits queries that are too vague to search on,
// so the model never invents search parameters the user didn't give.
type QueryValidator struct{}

var (
	cuisineTokenRe  = regexp.MustCompile(`(?i)(italian|french|indian|chinese|japanese|thai|mexican|american|mediterranean)`)
	locationTokenRe = regexp.MustCompile(`(?i)(downtown|uptown|midtown|west side|east side|waterfront)`)

	vaguePhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`show me options`),
		regexp.MustCompile(`give me options`),
		regexp.MustCompile(`list restaurants`),
		regexp.MustCompile(`what do you have`),
		regexp.MustCompile(`what's available`),
		regexp.MustCompile(`show me restaurants`),
		regexp.MustCompile(`give me restaurants`),
		regexp.MustCompile(`restaurants`),
		regexp.MustCompile(`options`),
	}
)

// IsVague reports whether the query carries no concrete search criteria and
// matches one of the generic "show me options" phrasings.
func (QueryValidator) IsVague(query string) bool {
	query = strings.ToLower(query)

	if cuisineTokenRe.MatchString(query) ||
		locationTokenRe.MatchString(query) ||
		strings.Contains(query, "search") ||
		strings.Contains(query, "find") ||
		strings.Contains(query, "looking for") ||
		strings.Contains(query, "price") ||
		strings.Contains(query, "$") ||
		strings.Contains(query, "people") ||
		strings.Contains(query, "person") {
		return false
	}

	for _, re := range vaguePhraseRes {
		if re.MatchString(query) {
			return true
		}
	}

	return false
}

// ClarificationPrompt returns the fixed reply asking the user to narrow a
// vague request along the four search axes.
func (QueryValidator) ClarificationPrompt() string {
	return "I'd be happy to help you find a restaurant! To give you the best recommendations, " +
		"could you please tell me more about what you're looking for? For example:\n\n" +
		"- What type of cuisine are you interested in? (Italian, Chinese, Thai, etc.)\n" +
		"- Do you have a preferred location?\n" +
		"- What's your price range? ($ to $$$$)\n" +
		"- How many people will be dining?\n\n" +
		"The more details you provide, the better I can help you find the perfect restaurant!"
}
