package tgCallback

// Callback button prefixes
const (
	CloseDetails string = "close_details"

	// prefixes
	ToBookDetails string = "to_book_details:"
	LoadMore      string = "load_more:"
)
