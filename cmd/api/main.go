package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"feedapi/cmd/app"
	"feedapi/internal/auth"
	"feedapi/internal/config"
	handlers "feedapi/internal/handler"
	"feedapi/internal/middleware"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logger.Error("JWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	db, _, services := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, services, cfg)
	authRequired := middleware.Auth(auth.NewTokenCodec(cfg.JWTSecretKey, cfg.TokenDuration))

	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	r.Handle("/status", authRequired(http.HandlerFunc(handler.GetStatus))).Methods(http.MethodGet)
	r.Handle("/status", authRequired(http.HandlerFunc(handler.UpdateStatus))).Methods(http.MethodPatch)

	r.HandleFunc("/feed/posts", handler.GetPosts).Methods(http.MethodGet)
	r.Handle("/feed/post", authRequired(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	r.HandleFunc("/feed/post/{postId}", handler.GetPost).Methods(http.MethodGet)
	r.Handle("/feed/post/{postId}", authRequired(http.HandlerFunc(handler.UpdatePost))).Methods(http.MethodPut)
	r.Handle("/feed/post/{postId}", authRequired(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)

	// CORS wraps the router itself so preflight requests never hit a 405.
	handlerChain := middleware.Chain(r, middleware.Logging, middleware.CORS)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server listening", "addr", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
