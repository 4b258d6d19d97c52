package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/logger"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of an empty body.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(restaurantv1.Error{
			Code:    status,
			Message: fmt.Sprintf("encode response: %v", err),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Error(ctx, "write response", logger.ErrorF(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeJSON(ctx, w, status, restaurantv1.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrPurchaseOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrTotalCostOverflow):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", model.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s, got %q",
			strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", model.ErrValidation, strings.Join(msgs, "; "))
}
