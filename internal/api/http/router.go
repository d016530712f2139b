package http

import (
	"net/http"

	"rentable-backend/internal/security"
	"rentable-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Services bundles what the HTTP surface dispatches to.
type Services struct {
	Users        service.UserService
	Categories   service.CategoryService
	Equipment    service.EquipmentService
	Reservations service.ReservationService
	Reviews      service.ReviewService
}

type RouterOptions struct {
	// LoginPerMinute caps register/token attempts per client IP. Zero disables the limit.
	LoginPerMinute int
}

// WithCORS lets browser clients on origins call h. With no origins h is returned as is.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(h)
}

// NewRouter wires every route. Middleware order: recovery, access log, auth.
func NewRouter(svcs Services, tm security.TokenManager, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Use(RecoveryMiddleware, LoggingMiddleware, NewAuthMiddleware(tm).Handler)

	var limiter *RateLimiter
	if opts.LoginPerMinute > 0 {
		limiter = NewRateLimiter(opts.LoginPerMinute, opts.LoginPerMinute)
	}

	NewUserHandler(svcs.Users).Register(r, limiter)
	NewCategoryHandler(svcs.Categories).Register(r)
	NewEquipmentHandler(svcs.Equipment).Register(r)
	NewReservationHandler(svcs.Reservations).Register(r)
	NewReviewHandler(svcs.Reviews).Register(r)
	return r
}
