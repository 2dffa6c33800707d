package model

import (
	"sort"
)

// Catalog is the static collection loaded once at startup. It is never mutated afterwards.
type Catalog struct {
	Books   []Book            `json:"books"`
	Authors map[string]string `json:"authors"`
	Genres  map[string]string `json:"genres"`
}

type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Catalog) Preview(b Book) BookPreview {
	return BookPreview{
		ID:         b.ID,
		Title:      b.Title,
		AuthorName: c.AuthorName(b.Author),
		Image:      b.Image,
	}
}

func (c Catalog) Details(b Book) BookDetails {
	names := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		if name, ok := c.Genres[g]; ok {
			names = append(names, name)
			continue
		}
		names = append(names, g)
	}

	return BookDetails{
		Book:       b,
		AuthorName: c.AuthorName(b.Author),
		GenreNames: names,
	}
}

// AuthorName falls back to the raw identifier for authors missing from the mapping.
func (c Catalog) AuthorName(id string) string {
	if name, ok := c.Authors[id]; ok {
		return name
	}
	return id
}

func (c Catalog) GenreOptions() []Option {
	return options(c.Genres)
}

func (c Catalog) AuthorOptions() []Option {
	return options(c.Authors)
}

func options(m map[string]string) []Option {
	res := make([]Option, 0, len(m))
	for id, name := range m {
		res = append(res, Option{ID: id, Name: name})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Name == res[j].Name {
			return res[i].ID < res[j].ID
		}
		return res[i].Name < res[j].Name
	})

	return res
}
