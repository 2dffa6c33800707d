package model

import "strings"

// Any matches every genre or author.
const Any = "any"

type SearchCriteria struct {
	Genre  string `json:"genre"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Normalize defaults absent fields to their match-all equivalents.
func (c SearchCriteria) Normalize() SearchCriteria {
	c.Genre = strings.TrimSpace(c.Genre)
	c.Author = strings.TrimSpace(c.Author)
	c.Title = strings.TrimSpace(c.Title)

	if c.Genre == "" {
		c.Genre = Any
	}
	if c.Author == "" {
		c.Author = Any
	}

	return c
}

func (c SearchCriteria) MatchesAll() bool {
	c = c.Normalize()
	return c.Genre == Any && c.Author == Any && c.Title == ""
}
