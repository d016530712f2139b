package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"rentable-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal stores the authenticated user id on the request context.
func WithPrincipal(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, principalKey, id)
}

// PrincipalFromContext returns the user id placed by the auth middleware.
func PrincipalFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(principalKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func pathInt32(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, name, raw)
	}
	return int32(n), nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID, got %q", domain.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func errInvalidParam(name string) error {
	return fmt.Errorf("%w: malformed %s", domain.ErrInvalidInput, name)
}
