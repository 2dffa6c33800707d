package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"book_catalog/internal/model"
	"book_catalog/utils"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

type namedRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type bookRow struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	AuthorID    string       `db:"author_id"`
	Published   sql.NullTime `db:"published"`
	Description string       `db:"description"`
	Image       string       `db:"image"`
}

type bookGenreRow struct {
	BookID  string `db:"book_id"`
	GenreID string `db:"genre_id"`
}

// LoadCatalog reads the whole collection. Books keep their insertion order and every
// book keeps the order of its genres.
func (r *Postgres) LoadCatalog(ctx context.Context) (model.Catalog, error) {
	op := "Postgres.LoadCatalog"
	rqID := utils.GetRequestIDFromCtx(ctx)

	authors, err := r.loadNamed(ctx, `SELECT id, name FROM authors`)
	if err != nil {
		slog.Error("Failed to load authors", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Catalog{}, fmt.Errorf("%s: load authors - %w", op, err)
	}

	genres, err := r.loadNamed(ctx, `SELECT id, name FROM genres`)
	if err != nil {
		slog.Error("Failed to load genres", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Catalog{}, fmt.Errorf("%s: load genres - %w", op, err)
	}

	var books []bookRow
	err = r.db.SelectContext(ctx, &books, `SELECT id, title, author_id, published, description, image FROM books ORDER BY position`)
	if err != nil {
		slog.Error("Failed to load books", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Catalog{}, fmt.Errorf("%s: load books - %w", op, err)
	}

	if len(books) == 0 {
		slog.Warn("No books in catalog tables", slog.String("op", op), slog.String("rqID", rqID))
		return model.Catalog{}, ErrEmptyCatalog
	}

	var bookGenres []bookGenreRow
	err = r.db.SelectContext(ctx, &bookGenres, `SELECT book_id, genre_id FROM book_genres ORDER BY book_id, position`)
	if err != nil {
		slog.Error("Failed to load book genres", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Catalog{}, fmt.Errorf("%s: load book genres - %w", op, err)
	}

	genresByBook := make(map[string][]string, len(books))
	for _, bg := range bookGenres {
		genresByBook[bg.BookID] = append(genresByBook[bg.BookID], bg.GenreID)
	}

	catalog := model.Catalog{
		Books:   make([]model.Book, 0, len(books)),
		Authors: authors,
		Genres:  genres,
	}
	for _, b := range books {
		bookGenres := genresByBook[b.ID]
		if bookGenres == nil {
			bookGenres = []string{}
		}

		var published time.Time
		if b.Published.Valid {
			published = b.Published.Time
		}

		catalog.Books = append(catalog.Books, model.Book{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.AuthorID,
			Genres:      bookGenres,
			Published:   published,
			Description: b.Description,
			Image:       b.Image,
		})
	}

	slog.Info(
		"Catalog loaded from DB",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("books", len(catalog.Books)),
		slog.Int("authors", len(authors)),
		slog.Int("genres", len(genres)),
	)

	return catalog, nil
}

func (r *Postgres) loadNamed(ctx context.Context, query string) (map[string]string, error) {
	var rows []namedRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	res := make(map[string]string, len(rows))
	for _, row := range rows {
		res[row.ID] = row.Name
	}
	return res, nil
}
