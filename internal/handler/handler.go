package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"feedapi/internal/config"
	"feedapi/internal/database"
	"feedapi/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	FeedService service.FeedService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(db *database.DB, services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		FeedService: services.Feed,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		writeError(w, "Database unavailable.", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
