package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"book_catalog/internal/model"
)

// matcher holds a normalized criteria set. A matcher is not safe for concurrent use
// because cases.Caser keeps state between calls.
type matcher struct {
	criteria model.SearchCriteria
	title    string
	fold     cases.Caser
}

func newMatcher(criteria model.SearchCriteria) *matcher {
	criteria = criteria.Normalize()
	fold := cases.Fold()

	return &matcher{
		criteria: criteria,
		title:    fold.String(criteria.Title),
		fold:     fold,
	}
}

func (m *matcher) match(b model.Book) bool {
	return m.matchGenre(b) && m.matchTitle(b) && m.matchAuthor(b)
}

func (m *matcher) matchGenre(b model.Book) bool {
	return m.criteria.Genre == model.Any || slices.Contains(b.Genres, m.criteria.Genre)
}

func (m *matcher) matchTitle(b model.Book) bool {
	return m.title == "" || strings.Contains(m.fold.String(b.Title), m.title)
}

func (m *matcher) matchAuthor(b model.Book) bool {
	return m.criteria.Author == model.Any || b.Author == m.criteria.Author
}
