package http

import (
	"net/http"

	"rentable-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register mounts the user routes. The credential endpoints sit behind limiter
// when one is given.
func (h *UserHandler) Register(r *mux.Router, limiter *RateLimiter) {
	register := http.Handler(http.HandlerFunc(h.Signup))
	token := http.Handler(http.HandlerFunc(h.Token))
	if limiter != nil {
		register = limiter.Handler(register)
		token = limiter.Handler(token)
	}
	r.Handle("/users/register", register).Methods(http.MethodPost)
	r.Handle("/users/token", token).Methods(http.MethodPost)
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/users/email/{email}", h.GetByEmail).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.Get).Methods(http.MethodGet)
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	u, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	token, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUserByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
