package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"

	"book_catalog/internal/model"
	"book_catalog/utils"
)

// JSONFile loads the catalog from a document shaped as
// {"books": [...], "authors": {"id": "name"}, "genres": {"id": "name"}}.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) LoadCatalog(ctx context.Context) (model.Catalog, error) {
	op := "JSONFile.LoadCatalog"
	rqID := utils.GetRequestIDFromCtx(ctx)

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("can't open catalog file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("path", f.path))
		return model.Catalog{}, fmt.Errorf("%s: can't open catalog file - %w", op, err)
	}
	defer file.Close()

	catalog, err := Decode(file)
	if err != nil {
		slog.Error("can't decode catalog file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("path", f.path))
		return model.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	slog.Info(
		"catalog loaded from file",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("path", f.path),
		slog.Int("books", len(catalog.Books)),
		slog.Int("authors", len(catalog.Authors)),
		slog.Int("genres", len(catalog.Genres)),
	)

	return catalog, nil
}

func Decode(r io.Reader) (model.Catalog, error) {
	catalog := model.Catalog{}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	if err := Validate(catalog); err != nil {
		return model.Catalog{}, err
	}

	if catalog.Authors == nil {
		catalog.Authors = map[string]string{}
	}
	if catalog.Genres == nil {
		catalog.Genres = map[string]string{}
	}
	for i := range catalog.Books {
		if catalog.Books[i].Genres == nil {
			catalog.Books[i].Genres = []string{}
		}
	}

	return catalog, nil
}

// Validate rejects collections where an identifier lookup would be ambiguous.
func Validate(catalog model.Catalog) error {
	seen := make(map[string]struct{}, len(catalog.Books))
	for i, b := range catalog.Books {
		if b.ID == "" {
			return fmt.Errorf("book #%d: %w", i, ErrEmptyBookID)
		}
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("book %q: %w", b.ID, ErrDuplicateBookID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}
