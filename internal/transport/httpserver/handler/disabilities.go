package handler

import (
	"errors"
	"net/http"

	disabilitydomain "vims-go/internal/domain/disability"
	"github.com/go-chi/chi/v5"
)

type registerDisabilityRequest struct {
	PersonID         string  `json:"person_id"`
	Description      string  `json:"description"`
	DisabilityTypeID *string `json:"disability_type_id"`
}

type disabilityResponse struct {
	ID               string  `json:"id"`
	PersonID         string  `json:"person_id"`
	Description      string  `json:"description"`
	DisabilityTypeID *string `json:"disability_type_id,omitempty"`
}

func toDisabilityResponse(d *disabilitydomain.Disability) disabilityResponse {
	return disabilityResponse{
		ID:               d.ID,
		PersonID:         d.PersonID,
		Description:      d.Description,
		DisabilityTypeID: d.DisabilityTypeID,
	}
}

func (h *Handlers) ListDisabilities(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")

	var (
		disabilities []disabilitydomain.Disability
		err          error
	)
	if personID != "" {
		disabilities, err = h.Disabilities.ListByPerson(r.Context(), personID)
	} else {
		disabilities, err = h.Disabilities.List(r.Context())
	}
	if err != nil {
		h.log.InternalError("disabilities.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	responses := make([]disabilityResponse, 0, len(disabilities))
	for i := range disabilities {
		responses = append(responses, toDisabilityResponse(&disabilities[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) RegisterDisability(w http.ResponseWriter, r *http.Request) {
	var req registerDisabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	d, err := h.Disabilities.Register(r.Context(), disabilitydomain.RegisterInput{
		PersonID:         req.PersonID,
		Description:      req.Description,
		DisabilityTypeID: req.DisabilityTypeID,
	})
	if err != nil {
		if errors.Is(err, disabilitydomain.ErrPersonNotFound) {
			h.log.BusinessError("disabilities.register: person not found", err, "person_id", req.PersonID)
			writeError(w, http.StatusUnprocessableEntity, "person_not_found", "person not found")
			return
		}
		h.log.InternalError("disabilities.register: register failed", err, "person_id", req.PersonID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toDisabilityResponse(d))
}

func (h *Handlers) RemoveDisability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Disabilities.Remove(r.Context(), id); err != nil {
		if errors.Is(err, disabilitydomain.ErrDisabilityNotFound) {
			h.log.BusinessError("disabilities.remove: not found", err, "disability_id", id)
			writeError(w, http.StatusNotFound, "disability_not_found", "disability record not found")
			return
		}
		h.log.InternalError("disabilities.remove: remove failed", err, "disability_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
