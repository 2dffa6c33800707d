package tgbot

import (
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"

	"book_catalog/config"
	"book_catalog/internal/model/tg/tgCallback"
	"book_catalog/internal/transport/telegram"
	customMW "book_catalog/internal/transport/telegram/middleware"
)

type TGBot struct {
	bot  *tele.Bot
	ctrl *telegram.Controller
}

func New(cfg *config.Config, ctrl *telegram.Controller) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/genres", b.ctrl.Genres)
	b.bot.Handle("/authors", b.ctrl.Authors)

	// text
	b.bot.Handle(tele.OnText, b.ctrl.ProcessQuery)

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.CloseDetails:
			return b.ctrl.ProcessCloseDetails(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.LoadMore):
			return b.ctrl.ProcessLoadMore(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBookDetails):
			return b.ctrl.ProcessToBookDetails(c)
		default:
			return c.Send("unknown callback")
		}
	})
}
