package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-humble/restaurant-inventory/platform/logger"
)

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.InitWithCore(core)
	t.Cleanup(logger.SetNopLogger)

	h := chimw.RequestID(RequestFields(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cost-per-unit", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, zap.ErrorLevel, e.Level)
	fields := e.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/cost-per-unit", fields["path"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
