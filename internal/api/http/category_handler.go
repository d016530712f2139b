package http

import (
	"net/http"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/service"

	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	r.HandleFunc("/categories/{id:[0-9]+}", h.GetCategory).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id:[0-9]+}", h.UpdateCategory).Methods(http.MethodPut)
	r.HandleFunc("/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)

	r.HandleFunc("/subcategories", h.ListSubcategories).Methods(http.MethodGet)
	r.HandleFunc("/subcategories", h.CreateSubcategory).Methods(http.MethodPost)
	r.HandleFunc("/subcategories/category/{id:[0-9]+}", h.ListSubcategoriesByCategory).Methods(http.MethodGet)
	r.HandleFunc("/subcategories/{id:[0-9]+}", h.GetSubcategory).Methods(http.MethodGet)
	r.HandleFunc("/subcategories/{id:[0-9]+}", h.UpdateSubcategory).Methods(http.MethodPut)
	r.HandleFunc("/subcategories/{id:[0-9]+}", h.DeleteSubcategory).Methods(http.MethodDelete)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c := &domain.Category{Name: req.Name, Description: req.Description}
	if err := h.svc.CreateCategory(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c := &domain.Category{ID: id, Name: req.Name, Description: req.Description}
	if err := h.svc.UpdateCategory(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sc := &domain.Subcategory{Name: req.Name, Description: req.Description, CategoryID: req.CategoryID}
	if err := h.svc.CreateSubcategory(r.Context(), sc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (h *CategoryHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	sc, err := h.svc.GetSubcategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *CategoryHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListSubcategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CategoryHandler) ListSubcategoriesByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := h.svc.ListSubcategoriesByCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sc := &domain.Subcategory{ID: id, Name: req.Name, Description: req.Description, CategoryID: req.CategoryID}
	if err := h.svc.UpdateSubcategory(r.Context(), sc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteSubcategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
