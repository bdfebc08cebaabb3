package dto

// SuggestTitlesRequest feeds the deterministic title suggestion helper.
type SuggestTitlesRequest struct {
	CurrentTitle string `json:"currentTitle"`
	Description  string `json:"description"`
}

// SuggestTitlesResponse carries the ordered suggestions, truncated to three.
type SuggestTitlesResponse struct {
	Suggestions []string `json:"suggestions"`
}
