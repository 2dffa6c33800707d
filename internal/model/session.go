package model

// Session is the browsing state of a single user: the last search, its pagination cursor
// and the book open in the details view.
type Session struct {
	SearchID     string         `json:"search_id"`
	Criteria     SearchCriteria `json:"criteria"`
	Page         int            `json:"page"`
	ActiveBookID string         `json:"active_book_id,omitempty"`
}

func (s Session) HasSearch() bool {
	return s.SearchID != ""
}
