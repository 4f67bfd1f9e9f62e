package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// Actor returns the caller placed into the context by the auth middleware.
func Actor(r *http.Request) (domain.Actor, bool) {
	userID, role, ok := auth.FromContext(r.Context())
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: userID, Role: domain.Role(role)}, true
}

// IDParam parses a positive integer path parameter.
func IDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// DecodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func DecodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// LimitParam reads the optional "limit" query value; zero means the service default.
func LimitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
