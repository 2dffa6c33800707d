package model

import (
	"fmt"
	"time"
)

type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genres      []string  `json:"genres"`
	Published   time.Time `json:"published"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

type BookPreview struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author"`
	Image      string `json:"image"`
}

type BookDetails struct {
	Book
	AuthorName string   `json:"author_name"`
	GenreNames []string `json:"genre_names"`
}

// Subtitle is rendered under the title in the details view: "<author> (<year>)".
func (d BookDetails) Subtitle() string {
	if d.Published.IsZero() {
		return d.AuthorName
	}
	return fmt.Sprintf("%s (%d)", d.AuthorName, d.Published.Year())
}
