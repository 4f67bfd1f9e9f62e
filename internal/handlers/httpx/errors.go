package httpx

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
	"go.uber.org/zap"
)

var statuses = []struct {
	err  error
	code int
}{
	{domain.ErrValidation, http.StatusUnprocessableEntity},
	{domain.ErrSelfAcceptance, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrLoginTaken, http.StatusConflict},
	{domain.ErrStaleState, http.StatusConflict},
	{domain.ErrImmutableState, http.StatusConflict},
	{domain.ErrAlreadyResolved, http.StatusConflict},
	{domain.ErrAlreadyInactive, http.StatusConflict},
	{domain.ErrAlreadyAccepted, http.StatusConflict},
	{domain.ErrPlatformFrozen, http.StatusServiceUnavailable},
}

// Status maps a domain error to its HTTP status code.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}

// RespondError writes err as a JSON error body. Unmapped errors are logged and
// answered with a generic message.
func RespondError(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
