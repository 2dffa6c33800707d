package telegram

import (
	"strings"

	"book_catalog/internal/model"
)

const (
	genrePrefix  = "genre:"
	authorPrefix = "author:"
)

// ParseQuery splits a message into search criteria. Words prefixed with genre: or author:
// select an identifier, everything else is the title. The last filter of a kind wins.
func ParseQuery(text string) model.SearchCriteria {
	criteria := model.SearchCriteria{}
	titleWords := make([]string, 0)

	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		switch {
		case strings.HasPrefix(lower, genrePrefix) && len(word) > len(genrePrefix):
			criteria.Genre = word[len(genrePrefix):]
		case strings.HasPrefix(lower, authorPrefix) && len(word) > len(authorPrefix):
			criteria.Author = word[len(authorPrefix):]
		default:
			titleWords = append(titleWords, word)
		}
	}

	criteria.Title = strings.Join(titleWords, " ")

	return criteria.Normalize()
}
