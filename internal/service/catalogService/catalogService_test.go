package catalogService

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"book_catalog/config"
	"book_catalog/data/session"
	"book_catalog/internal/model"
	"book_catalog/internal/service"
	"book_catalog/internal/service/catalogService/mocks"
)

type catalogServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	cfg      *config.Config
	catalog  model.Catalog
	session  *mocks.MockSession
	service  *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(catalogServiceSuite))
}

func (s *catalogServiceSuite) SetupSuite() {
	s.cfg = &config.Config{
		BooksPerPage: 2,
	}
	s.catalog = model.Catalog{
		Books: []model.Book{
			{ID: "1", Title: "Dune", Author: "a1", Genres: []string{"sf"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), Image: "dune.jpg"},
			{ID: "2", Title: "Hobbit", Author: "a2", Genres: []string{"fantasy"}},
			{ID: "3", Title: "Dune Messiah", Author: "a1", Genres: []string{"sf"}},
			{ID: "4", Title: "Children of Dune", Author: "a1", Genres: []string{"sf", "classic"}},
			{ID: "5", Title: "Silmarillion", Author: "a2", Genres: []string{"fantasy"}},
		},
		Authors: map[string]string{"a1": "Frank Herbert", "a2": "J.R.R. Tolkien"},
		Genres:  map[string]string{"sf": "Science Fiction", "fantasy": "Fantasy", "classic": "Classic"},
	}
}

func (s *catalogServiceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.session = mocks.NewMockSession(s.mockCtrl)

	s.service = New(s.cfg, s.catalog, s.session)
	s.service.newID = func() string { return "search-1" }
}

// expectUpdate runs the update function against stored and records what would be saved.
func (s *catalogServiceSuite) expectUpdate(sessionID string, stored model.Session) *model.Session {
	saved := &model.Session{}
	s.session.EXPECT().
		UpdateSession(gomock.Any(), sessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(*model.Session) error) error {
			current := stored
			if err := fn(&current); err != nil {
				return err
			}
			*saved = current
			return nil
		})
	return saved
}

func (s *catalogServiceSuite) Test_Search_Success() {
	ctx := context.Background()
	saved := s.expectUpdate("42", model.Session{SearchID: "old", Page: 3, ActiveBookID: "5"})

	res, err := s.service.Search(ctx, "42", model.SearchCriteria{})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.BooksPage{
		SearchID: "search-1",
		Criteria: model.SearchCriteria{Genre: model.Any, Title: "", Author: model.Any},
		Books: []model.BookPreview{
			{ID: "1", Title: "Dune", AuthorName: "Frank Herbert", Image: "dune.jpg"},
			{ID: "2", Title: "Hobbit", AuthorName: "J.R.R. Tolkien"},
		},
		Page:        1,
		Total:       5,
		Remaining:   3,
		HasNextPage: true,
	}, res)
	assert.Equal(s.T(), model.Session{
		SearchID:     "search-1",
		Criteria:     model.SearchCriteria{Genre: model.Any, Author: model.Any},
		Page:         1,
		ActiveBookID: "5",
	}, *saved)
}

func (s *catalogServiceSuite) Test_Search_Filtered() {
	s.expectUpdate("42", model.Session{})

	res, err := s.service.Search(context.Background(), "42", model.SearchCriteria{Genre: "sf", Title: " dune "})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, res.Total)
	assert.Equal(s.T(), "dune", res.Criteria.Title)
	require.Len(s.T(), res.Books, 2)
	assert.Equal(s.T(), "1", res.Books[0].ID)
	assert.Equal(s.T(), "3", res.Books[1].ID)
	assert.Equal(s.T(), 1, res.Remaining)
}

func (s *catalogServiceSuite) Test_Search_NoMatches() {
	s.expectUpdate("42", model.Session{})

	res, err := s.service.Search(context.Background(), "42", model.SearchCriteria{Title: "no such book"})

	assert.Nil(s.T(), err)
	assert.True(s.T(), res.IsEmpty())
	assert.Empty(s.T(), res.Books)
	assert.False(s.T(), res.HasNextPage)
	assert.Equal(s.T(), 0, res.Remaining)
}

func (s *catalogServiceSuite) Test_Search_SessionErr() {
	expectedErr := errors.New("redis is down")
	s.session.EXPECT().
		UpdateSession(gomock.Any(), "42", gomock.Any()).
		Return(expectedErr)

	_, err := s.service.Search(context.Background(), "42", model.SearchCriteria{})

	assert.ErrorIs(s.T(), err, expectedErr)
}

func (s *catalogServiceSuite) Test_LoadMore_Success() {
	stored := model.Session{
		SearchID: "search-1",
		Criteria: model.SearchCriteria{Genre: model.Any, Author: model.Any},
		Page:     1,
	}
	saved := s.expectUpdate("42", stored)

	res, err := s.service.LoadMore(context.Background(), "42", "search-1")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []model.BookPreview{
		{ID: "3", Title: "Dune Messiah", AuthorName: "Frank Herbert"},
		{ID: "4", Title: "Children of Dune", AuthorName: "Frank Herbert"},
	}, res.Books)
	assert.Equal(s.T(), 2, res.Page)
	assert.Equal(s.T(), 1, res.Remaining)
	assert.True(s.T(), res.HasNextPage)
	assert.Equal(s.T(), 2, saved.Page)
	assert.Equal(s.T(), "search-1", saved.SearchID)
}

func (s *catalogServiceSuite) Test_LoadMore_LastPage() {
	stored := model.Session{
		SearchID: "search-1",
		Criteria: model.SearchCriteria{Genre: model.Any, Author: model.Any},
		Page:     2,
	}
	saved := s.expectUpdate("42", stored)

	res, err := s.service.LoadMore(context.Background(), "42", "search-1")

	assert.Nil(s.T(), err)
	require.Len(s.T(), res.Books, 1)
	assert.Equal(s.T(), "5", res.Books[0].ID)
	assert.Equal(s.T(), 0, res.Remaining)
	assert.False(s.T(), res.HasNextPage)
	assert.Equal(s.T(), 3, saved.Page)
}

func (s *catalogServiceSuite) Test_LoadMore_NoMorePages() {
	stored := model.Session{
		SearchID: "search-1",
		Criteria: model.SearchCriteria{Genre: model.Any, Author: model.Any},
		Page:     3,
	}
	saved := s.expectUpdate("42", stored)

	_, err := s.service.LoadMore(context.Background(), "42", "search-1")

	assert.ErrorIs(s.T(), err, service.ErrNoMorePages)
	assert.Equal(s.T(), model.Session{}, *saved)
}

func (s *catalogServiceSuite) Test_LoadMore_StaleSearch() {
	s.expectUpdate("42", model.Session{SearchID: "search-2", Page: 1})

	_, err := s.service.LoadMore(context.Background(), "42", "search-1")

	assert.ErrorIs(s.T(), err, service.ErrStaleSearch)
}

func (s *catalogServiceSuite) Test_LoadMore_NoSession() {
	s.expectUpdate("42", model.Session{})

	_, err := s.service.LoadMore(context.Background(), "42", "search-1")

	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func (s *catalogServiceSuite) Test_SelectBook_Success() {
	saved := s.expectUpdate("42", model.Session{SearchID: "search-1", Page: 1})

	res, err := s.service.SelectBook(context.Background(), "42", "4")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), s.catalog.Books[3], res.Book)
	assert.Equal(s.T(), "Frank Herbert", res.AuthorName)
	assert.Equal(s.T(), []string{"Science Fiction", "Classic"}, res.GenreNames)
	assert.Equal(s.T(), "4", saved.ActiveBookID)
	assert.Equal(s.T(), "search-1", saved.SearchID)
}

func (s *catalogServiceSuite) Test_SelectBook_NotFound() {
	saved := s.expectUpdate("42", model.Session{SearchID: "search-1", Page: 1, ActiveBookID: "2"})

	_, err := s.service.SelectBook(context.Background(), "42", "999")

	assert.ErrorIs(s.T(), err, service.ErrNotFound)
	assert.Equal(s.T(), model.Session{}, *saved)
}

func (s *catalogServiceSuite) Test_SelectBook_ReplacesSelection() {
	saved := s.expectUpdate("42", model.Session{ActiveBookID: "2"})

	res, err := s.service.SelectBook(context.Background(), "42", "5")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Silmarillion", res.Title)
	assert.Equal(s.T(), "5", saved.ActiveBookID)
}

func (s *catalogServiceSuite) Test_Search_DropsSelectionMissingFromCatalog() {
	saved := s.expectUpdate("42", model.Session{ActiveBookID: "removed"})

	_, err := s.service.Search(context.Background(), "42", model.SearchCriteria{Author: "a2"})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "", saved.ActiveBookID)
	assert.Equal(s.T(), "search-1", saved.SearchID)
}

func (s *catalogServiceSuite) Test_ActiveBook_Success() {
	s.session.EXPECT().
		GetSession(gomock.Any(), "42").
		Return(model.Session{ActiveBookID: "1"}, nil)

	res, err := s.service.ActiveBook(context.Background(), "42")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Dune", res.Title)
	assert.Equal(s.T(), "Frank Herbert (1965)", res.Subtitle())
}

func (s *catalogServiceSuite) Test_ActiveBook_NothingSelected() {
	s.session.EXPECT().
		GetSession(gomock.Any(), "42").
		Return(model.Session{SearchID: "search-1"}, nil)

	_, err := s.service.ActiveBook(context.Background(), "42")

	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func (s *catalogServiceSuite) Test_ActiveBook_NoSession() {
	s.session.EXPECT().
		GetSession(gomock.Any(), "42").
		Return(model.Session{}, session.ErrNotFound)

	_, err := s.service.ActiveBook(context.Background(), "42")

	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func (s *catalogServiceSuite) Test_CloseDetails() {
	saved := s.expectUpdate("42", model.Session{SearchID: "search-1", Page: 2, ActiveBookID: "1"})

	err := s.service.CloseDetails(context.Background(), "42")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Session{SearchID: "search-1", Page: 2}, *saved)
}

func (s *catalogServiceSuite) Test_CloseDetails_NothingOpen() {
	saved := s.expectUpdate("42", model.Session{SearchID: "search-1", Page: 2})

	err := s.service.CloseDetails(context.Background(), "42")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Session{}, *saved)
}

func (s *catalogServiceSuite) Test_CloseDetails_SelectionMissingFromCatalog() {
	saved := s.expectUpdate("42", model.Session{SearchID: "search-1", Page: 1, ActiveBookID: "removed"})

	err := s.service.CloseDetails(context.Background(), "42")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Session{SearchID: "search-1", Page: 1}, *saved)
}

func (s *catalogServiceSuite) Test_ActiveBook_MissingFromCatalog() {
	s.session.EXPECT().
		GetSession(gomock.Any(), "42").
		Return(model.Session{ActiveBookID: "removed"}, nil)

	_, err := s.service.ActiveBook(context.Background(), "42")

	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func (s *catalogServiceSuite) Test_Reset() {
	s.session.EXPECT().DeleteSession(gomock.Any(), "42").Return(nil)

	err := s.service.Reset(context.Background(), "42")

	assert.Nil(s.T(), err)
}

func (s *catalogServiceSuite) Test_Reset_SessionErr() {
	expectedErr := errors.New("redis is down")
	s.session.EXPECT().DeleteSession(gomock.Any(), "42").Return(expectedErr)

	err := s.service.Reset(context.Background(), "42")

	assert.ErrorIs(s.T(), err, expectedErr)
}

func (s *catalogServiceSuite) Test_Options() {
	assert.Equal(s.T(), []model.Option{
		{ID: "classic", Name: "Classic"},
		{ID: "fantasy", Name: "Fantasy"},
		{ID: "sf", Name: "Science Fiction"},
	}, s.service.Genres())
	assert.Equal(s.T(), []model.Option{
		{ID: "a1", Name: "Frank Herbert"},
		{ID: "a2", Name: "J.R.R. Tolkien"},
	}, s.service.Authors())
}
