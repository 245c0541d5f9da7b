package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/repository"
	"wheelshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	reservations service.ReservationService
	notes        service.NotificationService
	vehicles     repository.VehicleRepository
}

func NewReservationHandler(reservations service.ReservationService, notes service.NotificationService, vehicles repository.VehicleRepository) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		notes:        notes,
		vehicles:     vehicles,
	}
}

// RegisterRoutes wires all reservation endpoints onto the router.
func (h *ReservationHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/reservations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/reservations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{id:[0-9]+}/cancel", h.Cancel).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id:[0-9]+}/confirm", RequireOperator(h.Confirm)).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id:[0-9]+}/cancel/confirm", RequireOperator(h.ConfirmCancellation)).Methods(http.MethodPost)
	r.HandleFunc("/admin/reservations/{id:[0-9]+}/cancel", RequireOperator(h.AdminCancel)).Methods(http.MethodPost)
	r.HandleFunc("/vehicles", h.ListVehicles).Methods(http.MethodGet)
	r.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id:[0-9]+}/read", h.MarkNotificationRead).Methods(http.MethodPost)
}

type reservationRequest struct {
	VehicleID int32     `json:"vehicle_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Comment   string    `json:"comment"`
}

type pageResponse struct {
	Items    interface{} `json:"items"`
	Total    int32       `json:"total"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
}

func pathID(r *http.Request) int32 {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return int32(id)
}

func pageParams(r *http.Request) (int32, int32) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return int32(page), int32(pageSize)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rv, err := h.reservations.CreateReservation(r.Context(), claims.ClientID, req.VehicleID, req.StartAt, req.EndAt, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rv, err := h.reservations.UpdateReservation(r.Context(), claims.ClientID, pathID(r), req.StartAt, req.EndAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	rv, err := h.reservations.GetReservation(r.Context(), claims.ClientID, pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	page, pageSize := pageParams(r)

	filter := repository.ReservationFilter{
		State: domain.ReservationState(r.URL.Query().Get("state")),
	}
	if claims.IsOperator() {
		// Operators may list any client's reservations.
		if cid, _ := strconv.Atoi(r.URL.Query().Get("client_id")); cid > 0 {
			filter.ClientID = int32(cid)
		}
		if vid, _ := strconv.Atoi(r.URL.Query().Get("vehicle_id")); vid > 0 {
			filter.VehicleID = int32(vid)
		}
	} else {
		filter.ClientID = claims.ClientID
	}

	reservations, total, err := h.reservations.ListReservations(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: reservations, Total: total, Page: page, PageSize: pageSize})
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if err := h.reservations.CancelReservation(r.Context(), claims.ClientID, pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	rv, err := h.reservations.ConfirmReservation(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *ReservationHandler) ConfirmCancellation(w http.ResponseWriter, r *http.Request) {
	if err := h.reservations.ConfirmCancellation(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) AdminCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.reservations.AdminCancelReservation(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	vehicles, total, err := h.vehicles.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: vehicles, Total: total, Page: page, PageSize: pageSize})
}

func (h *ReservationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	page, pageSize := pageParams(r)
	notes, total, err := h.notes.GetNotifications(r.Context(), claims.ClientID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: notes, Total: total, Page: page, PageSize: pageSize})
}

func (h *ReservationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if err := h.notes.MarkAsRead(r.Context(), claims.ClientID, pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
