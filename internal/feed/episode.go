package feed

// Episode is one normalized feed item. Date and duration strings are passed
// through exactly as the feed published them. Season and Episode are nil when
// the feed carries no parseable value, which drops them from the JSON sidecar
// entirely.
type Episode struct {
	Title       string `json:"title"`
	GUID        string `json:"guid"`
	PubDate     string `json:"pubDate"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImageURL    string `json:"imageUrl"`
	AudioURL    string `json:"audioUrl"`
	Season      *int   `json:"season,omitempty"`
	Episode     *int   `json:"episode,omitempty"`
}
