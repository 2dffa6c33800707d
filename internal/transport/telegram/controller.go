package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"book_catalog/config"
	"book_catalog/internal/converter/telebotConverter"
	"book_catalog/internal/metrics"
	"book_catalog/internal/model"
	"book_catalog/internal/model/tg/tgCallback"
	"book_catalog/internal/service"
	"book_catalog/utils"
)

const adapterName = "telegram"

type CatalogService interface {
	Search(ctx context.Context, sessionID string, criteria model.SearchCriteria) (model.BooksPage, error)
	LoadMore(ctx context.Context, sessionID string, searchID string) (model.BooksPage, error)
	SelectBook(ctx context.Context, sessionID string, bookID string) (model.BookDetails, error)
	CloseDetails(ctx context.Context, sessionID string) error
	Reset(ctx context.Context, sessionID string) error
	Genres() []model.Option
	Authors() []model.Option
}

type Controller struct {
	cfg            *config.Config
	catalogService CatalogService
}

func NewController(cfg *config.Config, catalogService CatalogService) *Controller {
	return &Controller{
		cfg:            cfg,
		catalogService: catalogService,
	}
}

func sessionID(c tele.Context) string {
	return strconv.FormatInt(c.Chat().ID, 10)
}

func callbackPayload(c tele.Context, prefix string) string {
	return strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", prefix))
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

// Start greets the user and drops whatever search was in progress.
func (ctrl *Controller) Start(c tele.Context) error {
	op := "Controller.Start"
	ctx := utils.CreateCtxWithRqID(c)

	if err := ctrl.catalogService.Reset(ctx, sessionID(c)); err != nil {
		slog.Error("got error from catalogService.Reset", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	}

	return c.Reply(telebotConverter.StartResponse())
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply(telebotConverter.HelpResponse())
}

func (ctrl *Controller) Genres(c tele.Context) error {
	return c.Send(telebotConverter.OptionsList(genresTitle, ctrl.catalogService.Genres()))
}

func (ctrl *Controller) Authors(c tele.Context) error {
	return c.Send(telebotConverter.OptionsList(authorsTitle, ctrl.catalogService.Authors()))
}

func (ctrl *Controller) ProcessQuery(c tele.Context) error {
	op := "Controller.ProcessQuery"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	criteria := ParseQuery(c.Message().Text)
	metrics.SearchesTotal.WithLabelValues(adapterName).Inc()

	booksPage, err := ctrl.catalogService.Search(ctx, sessionID(c), criteria)
	if err != nil {
		slog.Error("got error from catalogService.Search", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if booksPage.IsEmpty() {
		slog.Info("books not found", slog.String("rqID", rqID), slog.String("op", op), slog.Any("criteria", criteria))
		return c.Send(telebotConverter.BooksNotFound(booksPage.Criteria))
	}

	return c.Send(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) ProcessLoadMore(c tele.Context) error {
	op := "Controller.ProcessLoadMore"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	searchID := callbackPayload(c, tgCallback.LoadMore)

	booksPage, err := ctrl.catalogService.LoadMore(ctx, sessionID(c), searchID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaleSearch):
			return ctrl.sendAutoDeleteMsg(c, requestTooOld)
		case errors.Is(err, service.ErrNoMorePages):
			return ctrl.sendAutoDeleteMsg(c, noMoreBooks)
		case errors.Is(err, service.ErrNotFound):
			return ctrl.sendAutoDeleteMsg(c, sessionNotFound)
		}
		slog.Error("got error from catalogService.LoadMore", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	// the button moves to the newest page
	if err = c.Edit(c.Message().Text, &tele.ReplyMarkup{InlineKeyboard: withoutLoadMore(c.Message().ReplyMarkup)}); err != nil {
		slog.Warn("can't remove load more button", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return c.Send(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) ProcessToBookDetails(c tele.Context) error {
	op := "Controller.ProcessToBookDetails"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	bookID := callbackPayload(c, tgCallback.ToBookDetails)

	book, err := ctrl.catalogService.SelectBook(ctx, sessionID(c), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			metrics.LookupsTotal.WithLabelValues(adapterName, "not_found").Inc()
			return ctrl.sendAutoDeleteMsg(c, bookNotFound)
		}
		slog.Error("got error from catalogService.SelectBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}
	metrics.LookupsTotal.WithLabelValues(adapterName, "found").Inc()

	return c.Send(telebotConverter.BookDetails(book))
}

func (ctrl *Controller) ProcessCloseDetails(c tele.Context) error {
	op := "Controller.ProcessCloseDetails"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := ctrl.catalogService.CloseDetails(ctx, sessionID(c)); err != nil {
		slog.Error("got error from catalogService.CloseDetails", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Delete()
}

func withoutLoadMore(markup *tele.ReplyMarkup) [][]tele.InlineButton {
	if markup == nil {
		return nil
	}

	rows := make([][]tele.InlineButton, 0, len(markup.InlineKeyboard))
	for _, row := range markup.InlineKeyboard {
		if len(row) == 1 && isLoadMore(row[0]) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func isLoadMore(btn tele.InlineButton) bool {
	return strings.HasPrefix(strings.TrimPrefix(btn.Data, "\f"), tgCallback.LoadMore)
}
