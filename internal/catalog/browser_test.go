package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"book_catalog/internal/model"
)

type browserSuite struct {
	suite.Suite

	books   []model.Book
	browser *Browser
}

func TestBrowserSuite(t *testing.T) {
	suite.Run(t, new(browserSuite))
}

func (s *browserSuite) SetupTest() {
	s.books = []model.Book{
		{ID: "1", Title: "Dune", Author: "a1", Genres: []string{"sf"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "Hobbit", Author: "a2", Genres: []string{"fantasy"}},
		{ID: "3", Title: "Dune Messiah", Author: "a1", Genres: []string{"sf", "classic"}},
		{ID: "4", Title: "Children of Dune", Author: "a1", Genres: []string{}},
		{ID: "5", Title: "Silmarillion", Author: "a2", Genres: []string{"fantasy", "classic"}},
	}
	s.browser = NewBrowser(s.books)
}

func (s *browserSuite) Test_Search_NoFilterReturnsFullCollection() {
	res := s.browser.Search(model.SearchCriteria{Genre: model.Any, Title: "", Author: model.Any})

	assert.Equal(s.T(), s.books, res)
}

func (s *browserSuite) Test_Search_EmptyCriteriaDefaultsToAny() {
	res := s.browser.Search(model.SearchCriteria{})

	assert.Equal(s.T(), s.books, res)
}

func (s *browserSuite) Test_Search_TitleIsCaseInsensitiveSubstring() {
	browser := NewBrowser(s.books[:2])

	res := browser.Search(model.SearchCriteria{Genre: model.Any, Title: "du", Author: model.Any})

	require.Len(s.T(), res, 1)
	assert.Equal(s.T(), "1", res[0].ID)
}

func (s *browserSuite) Test_Search_TitleIsTrimmed() {
	res := s.browser.Search(model.SearchCriteria{Title: "  DUNE  "})

	assert.Equal(s.T(), []string{"1", "3", "4"}, ids(res))
}

func (s *browserSuite) Test_Search_GenreIsExactMember() {
	res := s.browser.Search(model.SearchCriteria{Genre: "classic"})
	assert.Equal(s.T(), []string{"3", "5"}, ids(res))

	res = s.browser.Search(model.SearchCriteria{Genre: "fan"})
	assert.Empty(s.T(), res)
}

func (s *browserSuite) Test_Search_AuthorIsExactMatch() {
	res := s.browser.Search(model.SearchCriteria{Author: "a2"})
	assert.Equal(s.T(), []string{"2", "5"}, ids(res))

	res = s.browser.Search(model.SearchCriteria{Author: "a"})
	assert.Empty(s.T(), res)
}

func (s *browserSuite) Test_Search_AllPredicatesMustHold() {
	res := s.browser.Search(model.SearchCriteria{Genre: "sf", Title: "messiah", Author: "a1"})
	assert.Equal(s.T(), []string{"3"}, ids(res))

	res = s.browser.Search(model.SearchCriteria{Genre: "fantasy", Title: "dune", Author: "a1"})
	assert.Empty(s.T(), res)
	assert.NotNil(s.T(), res)
}

func (s *browserSuite) Test_Search_IsIdempotent() {
	criteria := model.SearchCriteria{Genre: "sf", Title: "dune"}

	first := s.browser.Search(criteria)
	second := s.browser.Search(criteria)

	assert.Equal(s.T(), first, second)
}

func (s *browserSuite) Test_Search_ReplacesResultsAndResetsCursor() {
	s.browser.Search(model.SearchCriteria{Author: "a1"})
	s.browser.Page(1)
	s.browser.Page(1)
	require.Equal(s.T(), 2, s.browser.Cursor())

	res := s.browser.Search(model.SearchCriteria{Author: "a2"})

	assert.Equal(s.T(), res, s.browser.Results())
	assert.Equal(s.T(), 1, s.browser.Cursor())
	assert.Equal(s.T(), []string{"2"}, ids(s.browser.Page(1)))
}

func (s *browserSuite) Test_Page_TwoBooksOnePerPage() {
	browser := NewBrowser(s.books[:2])

	first := browser.Page(1)
	assert.Equal(s.T(), []string{"1"}, ids(first))
	assert.Equal(s.T(), 1, browser.Remaining(1))

	second := browser.Page(1)
	assert.Equal(s.T(), []string{"2"}, ids(second))
	assert.Equal(s.T(), 0, browser.Remaining(1))
}

func (s *browserSuite) Test_Page_ConcatenationReproducesResults() {
	for size := 1; size <= len(s.books)+1; size++ {
		browser := NewBrowser(s.books)

		var all []model.Book
		for {
			page := browser.Page(size)
			assert.LessOrEqual(s.T(), len(page), size)
			all = append(all, page...)
			if browser.Remaining(size) <= 0 {
				break
			}
		}

		assert.Equal(s.T(), s.books, all, "size %d", size)
	}
}

func (s *browserSuite) Test_Page_ShortFinalPageAndEmptyBeyondEnd() {
	s.browser.Page(2)
	assert.Equal(s.T(), []string{"3", "4"}, ids(s.browser.Page(2)))
	assert.Equal(s.T(), []string{"5"}, ids(s.browser.Page(2)))
	assert.Equal(s.T(), 3, s.browser.Cursor())

	assert.Empty(s.T(), s.browser.Page(2))
	assert.Equal(s.T(), 3, s.browser.Cursor())
	assert.Equal(s.T(), 0, s.browser.Remaining(2))
}

func (s *browserSuite) Test_Page_NonPositiveSize() {
	assert.Empty(s.T(), s.browser.Page(0))
	assert.Empty(s.T(), s.browser.Page(-3))
	assert.Equal(s.T(), 1, s.browser.Cursor())
}

func (s *browserSuite) Test_Page_EmptyResults() {
	s.browser.Search(model.SearchCriteria{Title: "no such book"})

	assert.Empty(s.T(), s.browser.Page(3))
	assert.Equal(s.T(), 0, s.browser.Remaining(3))
}

func (s *browserSuite) Test_Seek_ContinuesFromSavedCursor() {
	s.browser.Seek(2)

	assert.Equal(s.T(), []string{"5"}, ids(s.browser.Page(2)))
	assert.Equal(s.T(), 3, s.browser.Cursor())
}

func (s *browserSuite) Test_Seek_ClampsCursor() {
	s.browser.Seek(0)

	assert.Equal(s.T(), 1, s.browser.Cursor())
	assert.Equal(s.T(), []string{"2"}, ids(s.browser.Page(1)))
}

func (s *browserSuite) Test_Resolve_UsesFullCollection() {
	s.browser.Search(model.SearchCriteria{Author: "a2"})

	book, err := s.browser.Resolve("3")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), s.books[2], book)
}

func (s *browserSuite) Test_Resolve_NotFound() {
	book, err := NewBrowser(s.books[:2]).Resolve("999")

	assert.ErrorIs(s.T(), err, ErrNotFound)
	assert.Equal(s.T(), model.Book{}, book)
}

func (s *browserSuite) Test_Page_AppendDoesNotTouchCollection() {
	books := []model.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	browser := NewBrowser(books)

	first := browser.Page(1)
	_ = append(first, model.Book{ID: "X"})
	second := browser.Page(1)
	_ = append(second, model.Book{ID: "Y"})
	_ = append(browser.Results(), model.Book{ID: "Z"})

	assert.Equal(s.T(), []model.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}}, books)

	book, err := browser.Resolve("2")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2", book.ID)
	_, err = browser.Resolve("X")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *browserSuite) Test_Selection() {
	_, ok := s.browser.Selected()
	assert.False(s.T(), ok)

	book, err := s.browser.Select("2")
	require.NoError(s.T(), err)

	selected, ok := s.browser.Selected()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), book, selected)

	_, err = s.browser.Select("999")
	assert.ErrorIs(s.T(), err, ErrNotFound)
	selected, ok = s.browser.Selected()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), "2", selected.ID)

	s.browser.ClearSelection()
	_, ok = s.browser.Selected()
	assert.False(s.T(), ok)
}

func ids(books []model.Book) []string {
	res := make([]string, 0, len(books))
	for _, b := range books {
		res = append(res, b.ID)
	}
	return res
}
