package cms_webhook

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
)

// HeaderSecret заголовок с общим секретом вебхука
const HeaderSecret = "X-Webhook-Secret"

const (
	msgUnauthorized = "некорректный секрет вебхука"
)

type Handler struct {
	service SettingsService
	secret  string
	logger  Logger
}

// NewHandler создает обработчик вебхука публикации настроек в CMS
// Пустой secret отклоняет все запросы
func NewHandler(service SettingsService, secret string, logger Logger) *Handler {
	return &Handler{
		service: service,
		secret:  secret,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/cms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	got := r.Header.Get(HeaderSecret)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		h.logger.Warn("POST /webhooks/cms - Invalid webhook secret from %s", r.RemoteAddr)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Invalidate(r.Context()); err != nil {
		h.logger.Error("POST /webhooks/cms - Failed to invalidate settings cache: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhooks/cms - Settings cache invalidated")
	handlers.RespondNoContent(w)
}
