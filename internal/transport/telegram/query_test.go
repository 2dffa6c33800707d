package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"book_catalog/internal/model"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.SearchCriteria
	}{
		{
			name: "title only",
			text: "  the  hobbit ",
			want: model.SearchCriteria{Genre: model.Any, Title: "the hobbit", Author: model.Any},
		},
		{
			name: "all filters",
			text: "dune genre:sf Author:a1",
			want: model.SearchCriteria{Genre: "sf", Title: "dune", Author: "a1"},
		},
		{
			name: "filters only",
			text: "genre:fantasy",
			want: model.SearchCriteria{Genre: "fantasy", Title: "", Author: model.Any},
		},
		{
			name: "empty prefix is part of title",
			text: "genre: dune",
			want: model.SearchCriteria{Genre: model.Any, Title: "genre: dune", Author: model.Any},
		},
		{
			name: "last filter wins",
			text: "author:a1 author:a2",
			want: model.SearchCriteria{Genre: model.Any, Author: "a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.text))
		})
	}
}
