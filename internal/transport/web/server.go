package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"book_catalog/config"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg *config.Config, handler *Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", slog.String("err", err.Error()))
		}
	}()
	slog.Info("http server started!", slog.String("addr", s.srv.Addr))
}

func (s *Server) Stop(ctx context.Context) {
	slog.Info("start stopping http server")
	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown failed", slog.String("err", err.Error()))
	}
	slog.Info("http server stopped")
}
