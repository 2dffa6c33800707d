package telebotConverter

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"book_catalog/internal/model"
	"book_catalog/internal/model/tg/tgCallback"
)

const buttonsPerRow = 5

func StartResponse() string {
	return "Welcome! Send me a part of a book title and I will look it up in the catalog. Use /help to see how to filter by genre or author."
}

func HelpResponse() string {
	return "Send any text to search books by title.\n\n" +
		"Add genre:<id> or author:<id> to narrow the search, for example:\n" +
		"dune genre:sf author:a1\n\n" +
		"Use /genres and /authors to see the available ids."
}

func OptionsList(title string, options []model.Option) string {
	sb := strings.Builder{}
	sb.WriteString(title)
	sb.WriteString("\n\n")

	if len(options) == 0 {
		sb.WriteString("nothing here yet")
		return sb.String()
	}

	for _, o := range options {
		sb.WriteString(fmt.Sprintf("%s: %s\n", o.ID, o.Name))
	}

	return sb.String()
}

func BooksNotFound(criteria model.SearchCriteria) string {
	return fmt.Sprintf("No results found for: %s", describeCriteria(criteria))
}

// BooksPage renders one page of previews. booksPage.Page is the number of pages revealed
// so far, so the ordinals continue from the previous page.
func BooksPage(booksPage model.BooksPage, booksPerPage int) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	if booksPage.Page <= 1 {
		sb.WriteString(fmt.Sprintf("Search results: %s (%d)\n\n", describeCriteria(booksPage.Criteria), booksPage.Total))
	}

	menuRows := make([]tele.Row, 0)

	for i, book := range booksPage.Books {
		if i%buttonsPerRow == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, buttonsPerRow))
		}

		ordinal := (booksPage.Page-1)*booksPerPage + i + 1
		sb.WriteString(fmt.Sprintf("%d) %s, %s\n\n", ordinal, book.Title, book.AuthorName))
		btn := markup.Data(strconv.Itoa(ordinal), tgCallback.ToBookDetails+book.ID)
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	if booksPage.HasNextPage {
		moreBtn := markup.Data(fmt.Sprintf("show more (%d)", booksPage.Remaining), tgCallback.LoadMore+booksPage.SearchID)
		menuRows = append(menuRows, markup.Row(moreBtn))
	}

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func BookDetails(book model.BookDetails) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(book.Title)
	sb.WriteString("\n")
	sb.WriteString(book.Subtitle())
	sb.WriteString("\n\n")

	if len(book.GenreNames) > 0 {
		sb.WriteString(strings.Join(book.GenreNames, ", "))
		sb.WriteString("\n\n")
	}

	if book.Description != "" {
		sb.WriteString(book.Description)
		sb.WriteString("\n\n")
	}

	if book.Image != "" {
		sb.WriteString(book.Image)
	}

	closeBtn := markup.Data("close", tgCallback.CloseDetails)
	markup.Inline(markup.Row(closeBtn))

	return strings.TrimRight(sb.String(), "\n"), markup
}

func describeCriteria(criteria model.SearchCriteria) string {
	if criteria.MatchesAll() {
		return "all books"
	}

	criteria = criteria.Normalize()
	parts := make([]string, 0, 3)
	if criteria.Title != "" {
		parts = append(parts, fmt.Sprintf("%q", criteria.Title))
	}
	if criteria.Genre != model.Any {
		parts = append(parts, "genre:"+criteria.Genre)
	}
	if criteria.Author != model.Any {
		parts = append(parts, "author:"+criteria.Author)
	}

	return strings.Join(parts, " ")
}
