package domain

// IntentDecision represents whether combined transcript text expresses a
// request for stock information
type IntentDecision string

const (
	// IntentYes - the text asks about a stock
	IntentYes IntentDecision = "yes"
	// IntentNo - no stock intent detected (or extraction failed and was recovered)
	IntentNo IntentDecision = "no"
)

// IntentResult struct - Structured outcome of the intent extraction call.
// Symbol is only meaningful when Intent is IntentYes; keeping intent and
// symbol in one value means no branch can observe a symbol without a decision.
type IntentResult struct {
	Intent IntentDecision
	Symbol string
}

// Positive reports whether a ticker was actually extracted.
func (r IntentResult) Positive() bool {
	return r.Intent == IntentYes && r.Symbol != ""
}

// NoIntent is the recovered result used when extraction fails.
func NoIntent() IntentResult {
	return IntentResult{Intent: IntentNo}
}

// SentimentNeutral is both the label excluded from dominance ranking and
// the documented fallback when every returned article is neutral.
const SentimentNeutral = "Neutral"

// NewsItem represents one news article returned by the sentiment provider
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Label   string `json:"sentiment_label"`
}

// SentimentResult struct - Aggregated news sentiment for one ticker
type SentimentResult struct {
	// Dominant is the non-Neutral label with the highest count across the
	// returned feed, or SentimentNeutral when no non-Neutral label exists.
	Dominant string
	// Counts maps every observed label (Neutral included) to its count.
	Counts map[string]int
	// News holds at most the first five feed items.
	News []NewsItem
}
