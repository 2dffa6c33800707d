// Package catalog filters, paginates and looks up books of a static collection.
package catalog

import (
	"slices"

	"book_catalog/internal/model"
)

// Browser owns the browsing state over a read-only collection: the current result set,
// the pagination cursor and the active selection.
//
// Pagination moves through Page(1), Page(2), ... and every Search resets it to Page(1).
// The first Page call after construction or Search returns the window [0, size); every
// following call returns [cursor*size, (cursor+1)*size) and advances the cursor.
//
// A Browser is not safe for concurrent use.
type Browser struct {
	books     []model.Book
	results   []model.Book
	cursor    int
	served    bool
	selection *model.Book
}

func NewBrowser(books []model.Book) *Browser {
	return &Browser{
		books:   books,
		results: books,
		cursor:  1,
	}
}

// Search replaces the result set with every book matching criteria, in collection order.
func (b *Browser) Search(criteria model.SearchCriteria) []model.Book {
	m := newMatcher(criteria)

	results := make([]model.Book, 0)
	for _, book := range b.books {
		if m.match(book) {
			results = append(results, book)
		}
	}

	b.results = results
	b.cursor = 1
	b.served = false

	return slices.Clip(results)
}

// Results and every page are capped at their length, so appending to them never writes
// into the collection.
func (b *Browser) Results() []model.Book {
	return slices.Clip(b.results)
}

func (b *Browser) Cursor() int {
	return b.cursor
}

// Seek restores a cursor saved from an earlier Browser over the same result set.
// The first page is considered already served.
func (b *Browser) Seek(cursor int) {
	if cursor < 1 {
		cursor = 1
	}
	b.cursor = cursor
	b.served = true
}

func (b *Browser) Page(size int) []model.Book {
	if size <= 0 {
		return []model.Book{}
	}

	if !b.served {
		b.served = true
		n := min(size, len(b.results))
		return b.results[:n:n]
	}

	from := b.cursor * size
	if from >= len(b.results) {
		return []model.Book{}
	}
	to := min(from+size, len(b.results))

	b.cursor++

	return b.results[from:to:to]
}

// Remaining is how many results are left after the pages revealed so far. Zero means
// "load more" must be disabled.
func (b *Browser) Remaining(size int) int {
	return max(0, len(b.results)-b.cursor*size)
}

// Resolve looks id up in the full collection, not in the result set.
func (b *Browser) Resolve(id string) (model.Book, error) {
	for _, book := range b.books {
		if book.ID == id {
			return book, nil
		}
	}
	return model.Book{}, ErrNotFound
}

func (b *Browser) Select(id string) (model.Book, error) {
	book, err := b.Resolve(id)
	if err != nil {
		return model.Book{}, err
	}

	b.selection = &book
	return book, nil
}

func (b *Browser) Selected() (model.Book, bool) {
	if b.selection == nil {
		return model.Book{}, false
	}
	return *b.selection, true
}

func (b *Browser) ClearSelection() {
	b.selection = nil
}
