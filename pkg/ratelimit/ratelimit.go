package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/loadermarket/pkg/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

const (
	defaultLimit  = 100
	defaultPeriod = time.Minute
)

// Middleware limits requests per client IP using an in-memory store. The key
// is the peer address of the connection; forwarding headers are ignored.
func Middleware(limit int64, period time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = defaultLimit
	}
	if period <= 0 {
		period = defaultPeriod
	}
	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: period,
		Limit:  limit,
	}, limiter.WithTrustForwardHeader(false))
	return newMiddleware(instance)
}

func newMiddleware(instance *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lctx, err := instance.Get(r.Context(), instance.GetIPKey(r))
			if err != nil {
				zap.L().Error("rate limiter failed", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
