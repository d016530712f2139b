package http

import (
	"net/http"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

func (h *EquipmentHandler) Register(r *mux.Router) {
	r.HandleFunc("/equipment", h.List).Methods(http.MethodGet)
	r.HandleFunc("/equipment", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/equipment/category/{id}", h.ListByCategory).Methods(http.MethodGet)
	r.HandleFunc("/equipment/subcategory/{id}", h.ListBySubcategory).Methods(http.MethodGet)
	r.HandleFunc("/equipment/owner/{id}", h.ListByOwner).Methods(http.MethodGet)
	r.HandleFunc("/equipment/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/equipment/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/equipment/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e := req.toDomain(0)
	if err := h.svc.CreateEquipment(r.Context(), principal, e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	e, err := h.svc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	respondList[domain.Equipment](w)(h.svc.ListEquipment(r.Context()))
}

func (h *EquipmentHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.Equipment](w)(h.svc.ListEquipmentByCategory(r.Context(), id))
}

func (h *EquipmentHandler) ListBySubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.Equipment](w)(h.svc.ListEquipmentBySubcategory(r.Context(), id))
}

func (h *EquipmentHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	respondList[domain.Equipment](w)(h.svc.ListEquipmentByOwner(r.Context(), owner))
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e, err := h.svc.UpdateEquipment(r.Context(), principal, req.toDomain(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteEquipment(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
