package model

type BooksPage struct {
	SearchID    string         `json:"search_id"`
	Criteria    SearchCriteria `json:"criteria"`
	Books       []BookPreview  `json:"books"`
	Page        int            `json:"page"`
	Total       int            `json:"total"`
	Remaining   int            `json:"remaining"`
	HasNextPage bool           `json:"has_next_page"`
}

func (p BooksPage) IsEmpty() bool {
	return p.Total == 0
}
