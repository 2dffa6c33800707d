package telegram

const (
	internalErrMsg  string = "something went wrong..."
	bookNotFound    string = "this book is not in the catalog"
	requestTooOld   string = "this search was replaced by a newer one, send a new query:"
	noMoreBooks     string = "all results are already shown"
	sessionNotFound string = "your session has expired, send a new query:"
	genresTitle     string = "Genres"
	authorsTitle    string = "Authors"
)
