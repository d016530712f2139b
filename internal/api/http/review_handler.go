package http

import (
	"net/http"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) Register(r *mux.Router) {
	r.HandleFunc("/equipment-reviews", h.ListEquipmentReviews).Methods(http.MethodGet)
	r.HandleFunc("/equipment-reviews", h.CreateEquipmentReview).Methods(http.MethodPost)
	r.HandleFunc("/equipment-reviews/equipment/{id:[0-9]+}", h.ListByEquipment).Methods(http.MethodGet)
	r.HandleFunc("/equipment-reviews/reviewer/{id}", h.ListByReviewer).Methods(http.MethodGet)
	r.HandleFunc("/equipment-reviews/average/{id:[0-9]+}", h.AverageEquipmentRating).Methods(http.MethodGet)
	r.HandleFunc("/equipment-reviews/{id:[0-9]+}", h.GetEquipmentReview).Methods(http.MethodGet)
	r.HandleFunc("/equipment-reviews/{id:[0-9]+}", h.DeleteEquipmentReview).Methods(http.MethodDelete)

	r.HandleFunc("/user-reviews", h.ListUserReviews).Methods(http.MethodGet)
	r.HandleFunc("/user-reviews", h.CreateUserReview).Methods(http.MethodPost)
	r.HandleFunc("/user-reviews/sent/{id}", h.ListSent).Methods(http.MethodGet)
	r.HandleFunc("/user-reviews/received/{id}", h.ListReceived).Methods(http.MethodGet)
	r.HandleFunc("/user-reviews/average/{id}", h.AverageUserRating).Methods(http.MethodGet)
	r.HandleFunc("/user-reviews/{id:[0-9]+}", h.GetUserReview).Methods(http.MethodGet)
	r.HandleFunc("/user-reviews/{id:[0-9]+}", h.DeleteUserReview).Methods(http.MethodDelete)
}

func (h *ReviewHandler) CreateEquipmentReview(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	var req equipmentReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rv := &domain.EquipmentReview{EquipmentID: req.EquipmentID, Rating: req.Rating, Comment: req.Comment}
	if err := h.svc.CreateEquipmentReview(r.Context(), principal, rv); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) GetEquipmentReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.svc.GetEquipmentReview(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *ReviewHandler) ListEquipmentReviews(w http.ResponseWriter, r *http.Request) {
	respondList[domain.EquipmentReview](w)(h.svc.ListEquipmentReviews(r.Context()))
}

func (h *ReviewHandler) ListByEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.EquipmentReview](w)(h.svc.ListEquipmentReviewsByEquipment(r.Context(), id))
}

func (h *ReviewHandler) ListByReviewer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.EquipmentReview](w)(h.svc.ListEquipmentReviewsByReviewer(r.Context(), id))
}

func (h *ReviewHandler) DeleteEquipmentReview(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteEquipmentReview(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) AverageEquipmentRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	avg, err := h.svc.AverageEquipmentRating(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, averageResponse{Average: avg})
}

func (h *ReviewHandler) CreateUserReview(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	var req userReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rv := &domain.UserReview{ReviewedUserID: req.ReviewedUserID, Rating: req.Rating, Comment: req.Comment}
	if err := h.svc.CreateUserReview(r.Context(), principal, rv); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) GetUserReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.svc.GetUserReview(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *ReviewHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	respondList[domain.UserReview](w)(h.svc.ListUserReviews(r.Context()))
}

func (h *ReviewHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.UserReview](w)(h.svc.ListSentUserReviews(r.Context(), id))
}

func (h *ReviewHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.UserReview](w)(h.svc.ListReceivedUserReviews(r.Context(), id))
}

func (h *ReviewHandler) DeleteUserReview(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteUserReview(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) AverageUserRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	avg, err := h.svc.AverageUserRating(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, averageResponse{Average: avg})
}
