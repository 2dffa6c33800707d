package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"book_catalog/internal/metrics"
	"book_catalog/internal/model"
	"book_catalog/internal/service"
	"book_catalog/utils"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

const adapterName = "http"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CatalogService interface {
	Search(ctx context.Context, sessionID string, criteria model.SearchCriteria) (model.BooksPage, error)
	LoadMore(ctx context.Context, sessionID string, searchID string) (model.BooksPage, error)
	SelectBook(ctx context.Context, sessionID string, bookID string) (model.BookDetails, error)
	ActiveBook(ctx context.Context, sessionID string) (model.BookDetails, error)
	CloseDetails(ctx context.Context, sessionID string) error
	Reset(ctx context.Context, sessionID string) error
	Genres() []model.Option
	Authors() []model.Option
}

type Handler struct {
	catalogService CatalogService
}

type errorResponse struct {
	Error string `json:"error"`
}

type bookResponse struct {
	model.BookDetails
	Subtitle string `json:"subtitle"`
}

func NewHandler(catalogService CatalogService) *Handler {
	return &Handler{catalogService: catalogService}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/search", h.search)
	mux.HandleFunc("POST /api/search/{searchID}/more", h.loadMore)
	mux.HandleFunc("GET /api/books/active", h.activeBook)
	mux.HandleFunc("DELETE /api/books/active", h.closeDetails)
	mux.HandleFunc("DELETE /api/session", h.reset)
	mux.HandleFunc("GET /api/books/{id}", h.selectBook)
	mux.HandleFunc("GET /api/genres", h.genres)
	mux.HandleFunc("GET /api/authors", h.authors)
	mux.Handle("GET /metrics", promhttp.Handler())

	return RequestLogger(SessionID(Metrics(mux)))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	op := "Handler.search"
	ctx := r.Context()

	criteria := model.SearchCriteria{}
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("bad search body", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed search criteria"})
		return
	}

	metrics.SearchesTotal.WithLabelValues(adapterName).Inc()

	booksPage, err := h.catalogService.Search(ctx, sessionFromCtx(ctx), criteria)
	if err != nil {
		writeError(ctx, w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, booksPage)
}

func (h *Handler) loadMore(w http.ResponseWriter, r *http.Request) {
	op := "Handler.loadMore"
	ctx := r.Context()

	booksPage, err := h.catalogService.LoadMore(ctx, sessionFromCtx(ctx), r.PathValue("searchID"))
	if err != nil {
		writeError(ctx, w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, booksPage)
}

func (h *Handler) selectBook(w http.ResponseWriter, r *http.Request) {
	op := "Handler.selectBook"
	ctx := r.Context()

	book, err := h.catalogService.SelectBook(ctx, sessionFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			metrics.LookupsTotal.WithLabelValues(adapterName, "not_found").Inc()
		}
		writeError(ctx, w, op, err)
		return
	}
	metrics.LookupsTotal.WithLabelValues(adapterName, "found").Inc()

	writeJSON(w, http.StatusOK, bookResponse{BookDetails: book, Subtitle: book.Subtitle()})
}

func (h *Handler) activeBook(w http.ResponseWriter, r *http.Request) {
	op := "Handler.activeBook"
	ctx := r.Context()

	book, err := h.catalogService.ActiveBook(ctx, sessionFromCtx(ctx))
	if err != nil {
		writeError(ctx, w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, bookResponse{BookDetails: book, Subtitle: book.Subtitle()})
}

func (h *Handler) closeDetails(w http.ResponseWriter, r *http.Request) {
	op := "Handler.closeDetails"
	ctx := r.Context()

	if err := h.catalogService.CloseDetails(ctx, sessionFromCtx(ctx)); err != nil {
		writeError(ctx, w, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	op := "Handler.reset"
	ctx := r.Context()

	if err := h.catalogService.Reset(ctx, sessionFromCtx(ctx)); err != nil {
		writeError(ctx, w, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) genres(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogService.Genres())
}

func (h *Handler) authors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogService.Authors())
}

func writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrStaleSearch):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoMorePages):
		writeJSON(w, http.StatusGone, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("can't encode response", slog.String("err", err.Error()))
	}
}
