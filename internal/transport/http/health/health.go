package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/restaurant-inventory/platform/logger"
)

const readyTimeout = 2 * time.Second

// PingFunc reports whether a backing store answers.
type PingFunc func(ctx context.Context) error

type handler struct {
	ping PingFunc
}

func NewHealthHandler(ping PingFunc) *handler {
	return &handler{ping: ping}
}

// Live answers as long as the process serves HTTP.
func (h *handler) Live(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusOK, "SERVING")
}

// Ready also checks the store.
func (h *handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			logger.Warn(r.Context(), "readiness ping", logger.ErrorF(err))
			write(w, r, http.StatusServiceUnavailable, "NOT_SERVING")
			return
		}
	}
	write(w, r, http.StatusOK, "SERVING")
}

func write(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
