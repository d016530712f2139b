package http

import (
	"net/http"
	"strconv"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/service"
	"rentable-backend/internal/utils"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) Register(r *mux.Router) {
	r.HandleFunc("/reservations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/reservations/quote", h.Quote).Methods(http.MethodPost)
	r.HandleFunc("/reservations/most-rented/{limit}", h.MostRented).Methods(http.MethodGet)
	r.HandleFunc("/reservations/user/{id}", h.listBy(domain.ReservationFilterUser)).Methods(http.MethodGet)
	r.HandleFunc("/reservations/equipment/{id}", h.listBy(domain.ReservationFilterEquipment)).Methods(http.MethodGet)
	r.HandleFunc("/reservations/category/{id}", h.listBy(domain.ReservationFilterCategory)).Methods(http.MethodGet)
	r.HandleFunc("/reservations/subcategory/{id}", h.listBy(domain.ReservationFilterSubcategory)).Methods(http.MethodGet)
	r.HandleFunc("/reservations/status/{status}", h.listBy(domain.ReservationFilterStatus)).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id:[0-9]+}", h.Update).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/reservations/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

// Quote prices a prospective reservation without storing it.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in, err := req.toInput(true)
	if err != nil {
		writeError(w, err)
		return
	}
	days, err := utils.InclusiveDays(in.StartDate, in.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	total, err := h.svc.CalculateTotalPrice(r.Context(), in.EquipmentID, in.StartDate, in.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		EquipmentID: in.EquipmentID,
		StartDate:   utils.FormatDate(in.StartDate),
		EndDate:     utils.FormatDate(in.EndDate),
		Days:        days,
		TotalPrice:  total,
	})
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in, err := req.toInput(true)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.CreateReservation(r.Context(), principal, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapReservation(res))
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReservation(res))
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeReservations(w, r, domain.ReservationFilter{Kind: domain.ReservationFilterAll})
}

func (h *ReservationHandler) listBy(kind domain.ReservationFilterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ReservationFilter{Kind: kind}
		var err error
		switch kind {
		case domain.ReservationFilterUser:
			filter.UserID, err = pathUUID(r, "id")
		case domain.ReservationFilterStatus:
			filter.Status, err = domain.ParseReservationStatus(mux.Vars(r)["status"])
		default:
			filter.ID, err = pathInt32(r, "id")
		}
		if err != nil {
			writeError(w, err)
			return
		}
		h.writeReservations(w, r, filter)
	}
}

func (h *ReservationHandler) writeReservations(w http.ResponseWriter, r *http.Request, filter domain.ReservationFilter) {
	list, err := h.svc.ListReservations(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReservations(list))
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in, err := req.toInput(false)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.UpdateReservation(r.Context(), principal, id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReservation(res))
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.DeleteReservation(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReservationHandler) MostRented(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(mux.Vars(r)["limit"])
	if err != nil {
		writeError(w, errInvalidParam("limit"))
		return
	}
	counts, err := h.svc.MostRentedEquipment(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
