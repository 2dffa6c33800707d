package catalogService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"book_catalog/config"
	"book_catalog/data/session"
	"book_catalog/internal/catalog"
	"book_catalog/internal/metrics"
	"book_catalog/internal/model"
	"book_catalog/internal/service"
	"book_catalog/utils"
)

//go:generate mockgen -source=catalogService.go -destination=mocks/mocks.go -package=mocks

type Session interface {
	GetSession(ctx context.Context, sessionID string) (model.Session, error)
	UpdateSession(ctx context.Context, sessionID string, fn func(session *model.Session) error) error
	DeleteSession(ctx context.Context, sessionID string) error
}

var errNoSelection = errors.New("no selection")

// CatalogService runs browsing operations for many users over one shared catalog. The
// state of every user lives in the session store, and each call rebuilds a Browser from it.
type CatalogService struct {
	cfg     *config.Config
	catalog model.Catalog
	session Session
	newID   func() string
}

func New(cfg *config.Config, catalog model.Catalog, session Session) *CatalogService {
	return &CatalogService{
		cfg:     cfg,
		catalog: catalog,
		session: session,
		newID:   uuid.NewString,
	}
}

// Search starts a new search for the session and returns its first page. A search
// without matches is a valid empty page. An open book stays open.
func (s *CatalogService) Search(ctx context.Context, sessionID string, criteria model.SearchCriteria) (model.BooksPage, error) {
	op := "CatalogService.Search"
	rqID := utils.GetRequestIDFromCtx(ctx)

	criteria = criteria.Normalize()
	searchID := s.newID()

	var booksPage model.BooksPage
	err := s.session.UpdateSession(ctx, sessionID, func(session *model.Session) error {
		browser := s.browserFor(*session)
		browser.Search(criteria)
		books := browser.Page(s.cfg.BooksPerPage)

		session.SearchID = searchID
		session.Criteria = criteria
		session.Page = browser.Cursor()
		session.ActiveBookID = selectedID(browser)
		booksPage = s.booksPage(searchID, criteria, browser, books)
		return nil
	})
	if err != nil {
		slog.Error("got error from session.UpdateSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BooksPage{}, fmt.Errorf("%s: save session - %w", op, err)
	}

	metrics.SearchResults.Observe(float64(booksPage.Total))
	slog.Info(
		"search completed",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("searchID", searchID),
		slog.Any("criteria", criteria),
		slog.Int("total", booksPage.Total),
	)

	return booksPage, nil
}

// LoadMore reveals the next page of the search identified by searchID. Only the latest
// search of the session can be continued.
func (s *CatalogService) LoadMore(ctx context.Context, sessionID string, searchID string) (model.BooksPage, error) {
	op := "CatalogService.LoadMore"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var booksPage model.BooksPage
	err := s.session.UpdateSession(ctx, sessionID, func(session *model.Session) error {
		if !session.HasSearch() {
			return service.ErrNotFound
		}
		if session.SearchID != searchID {
			return service.ErrStaleSearch
		}

		browser := s.browserFor(*session)
		if browser.Remaining(s.cfg.BooksPerPage) <= 0 {
			return service.ErrNoMorePages
		}

		books := browser.Page(s.cfg.BooksPerPage)
		session.Page = browser.Cursor()
		booksPage = s.booksPage(session.SearchID, session.Criteria, browser, books)
		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrStaleSearch) || errors.Is(err, service.ErrNoMorePages) {
			slog.Warn("load more declined", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("searchID", searchID))
			return model.BooksPage{}, err
		}
		slog.Error("got error from session.UpdateSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BooksPage{}, fmt.Errorf("%s: save session - %w", op, err)
	}

	slog.Debug("next page loaded", slog.String("rqID", rqID), slog.String("op", op), slog.String("searchID", searchID), slog.Int("page", booksPage.Page))

	return booksPage, nil
}

// SelectBook opens the details view for bookID. Lookups go through the full catalog, so any
// book can be opened regardless of the current search.
func (s *CatalogService) SelectBook(ctx context.Context, sessionID string, bookID string) (model.BookDetails, error) {
	op := "CatalogService.SelectBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var book model.Book
	err := s.session.UpdateSession(ctx, sessionID, func(session *model.Session) error {
		browser := s.browserFor(*session)

		selected, err := browser.Select(bookID)
		if err != nil {
			return service.ErrNotFound
		}

		book = selected
		session.ActiveBookID = selectedID(browser)
		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn("book not found", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", bookID))
			return model.BookDetails{}, err
		}
		slog.Error("got error from session.UpdateSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BookDetails{}, fmt.Errorf("%s: save session - %w", op, err)
	}

	return s.catalog.Details(book), nil
}

func (s *CatalogService) ActiveBook(ctx context.Context, sessionID string) (model.BookDetails, error) {
	op := "CatalogService.ActiveBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := s.session.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.BookDetails{}, service.ErrNotFound
		}
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BookDetails{}, fmt.Errorf("%s: get session - %w", op, err)
	}

	book, ok := s.browserFor(chatSession).Selected()
	if !ok {
		if chatSession.ActiveBookID != "" {
			slog.Warn("active book is not in catalog", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", chatSession.ActiveBookID))
		}
		return model.BookDetails{}, service.ErrNotFound
	}

	return s.catalog.Details(book), nil
}

// CloseDetails clears the selection. Closing when nothing is open is a no-op.
func (s *CatalogService) CloseDetails(ctx context.Context, sessionID string) error {
	op := "CatalogService.CloseDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	err := s.session.UpdateSession(ctx, sessionID, func(session *model.Session) error {
		browser := s.browserFor(*session)
		if _, ok := browser.Selected(); !ok && session.ActiveBookID == "" {
			return errNoSelection
		}

		browser.ClearSelection()
		session.ActiveBookID = selectedID(browser)
		return nil
	})
	if err != nil && !errors.Is(err, errNoSelection) {
		slog.Error("got error from session.UpdateSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: save session - %w", op, err)
	}

	return nil
}

// Reset forgets the search and the selection of the session.
func (s *CatalogService) Reset(ctx context.Context, sessionID string) error {
	op := "CatalogService.Reset"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.session.DeleteSession(ctx, sessionID); err != nil {
		slog.Error("got error from session.DeleteSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: delete session - %w", op, err)
	}

	slog.Debug("session reset", slog.String("rqID", rqID), slog.String("op", op))

	return nil
}

func (s *CatalogService) Genres() []model.Option {
	return s.catalog.GenreOptions()
}

func (s *CatalogService) Authors() []model.Option {
	return s.catalog.AuthorOptions()
}

func (s *CatalogService) booksPage(searchID string, criteria model.SearchCriteria, browser *catalog.Browser, books []model.Book) model.BooksPage {
	previews := make([]model.BookPreview, 0, len(books))
	for _, b := range books {
		previews = append(previews, s.catalog.Preview(b))
	}

	remaining := browser.Remaining(s.cfg.BooksPerPage)

	return model.BooksPage{
		SearchID:    searchID,
		Criteria:    criteria,
		Books:       previews,
		Page:        browser.Cursor(),
		Total:       len(browser.Results()),
		Remaining:   remaining,
		HasNextPage: remaining > 0,
	}
}

// browserFor rebuilds the browsing state saved in the session. A selection that is no longer
// in the catalog is dropped.
func (s *CatalogService) browserFor(session model.Session) *catalog.Browser {
	browser := catalog.NewBrowser(s.catalog.Books)

	if session.HasSearch() {
		browser.Search(session.Criteria)
		browser.Seek(session.Page)
	}

	if session.ActiveBookID != "" {
		_, _ = browser.Select(session.ActiveBookID)
	}

	return browser
}

func selectedID(browser *catalog.Browser) string {
	if book, ok := browser.Selected(); ok {
		return book.ID
	}
	return ""
}
