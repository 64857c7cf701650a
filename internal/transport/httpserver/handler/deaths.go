package handler

import (
	"errors"
	"net/http"

	deathdomain "vims-go/internal/domain/death"
	"github.com/go-chi/chi/v5"
)

type registerDeathRequest struct {
	PersonID    string  `json:"person_id"`
	DeathDate   string  `json:"death_date"`
	DeathPlace  string  `json:"death_place"`
	Complainant string  `json:"complainant"`
	Remark      string  `json:"remark"`
	DeathTypeID *string `json:"death_type_id"`
}

type deathResponse struct {
	ID          string  `json:"id"`
	PersonID    string  `json:"person_id"`
	DeathDate   string  `json:"death_date"`
	DeathPlace  string  `json:"death_place"`
	Complainant string  `json:"complainant"`
	Remark      string  `json:"remark"`
	DeathTypeID *string `json:"death_type_id,omitempty"`
}

func toDeathResponse(d *deathdomain.Death) deathResponse {
	return deathResponse{
		ID:          d.ID,
		PersonID:    d.PersonID,
		DeathDate:   d.DeathDate.Format(dateLayout),
		DeathPlace:  d.DeathPlace,
		Complainant: d.Complainant,
		Remark:      d.Remark,
		DeathTypeID: d.DeathTypeID,
	}
}

func (h *Handlers) ListDeaths(w http.ResponseWriter, r *http.Request) {
	deaths, err := h.Deaths.List(r.Context())
	if err != nil {
		h.log.InternalError("deaths.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	responses := make([]deathResponse, 0, len(deaths))
	for i := range deaths {
		responses = append(responses, toDeathResponse(&deaths[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) RegisterDeath(w http.ResponseWriter, r *http.Request) {
	var req registerDeathRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	deathDate, err := parseDateParam(req.DeathDate)
	if err != nil || deathDate == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid death_date")
		return
	}

	d, err := h.Deaths.Register(r.Context(), deathdomain.RegisterInput{
		PersonID:    req.PersonID,
		DeathDate:   *deathDate,
		DeathPlace:  req.DeathPlace,
		Complainant: req.Complainant,
		Remark:      req.Remark,
		DeathTypeID: req.DeathTypeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deathdomain.ErrPersonNotFound):
			h.log.BusinessError("deaths.register: person not found", err, "person_id", req.PersonID)
			writeError(w, http.StatusUnprocessableEntity, "person_not_found", "person not found")
		case errors.Is(err, deathdomain.ErrAlreadyRegistered):
			h.log.BusinessError("deaths.register: already registered", err, "person_id", req.PersonID)
			writeError(w, http.StatusConflict, "death_already_registered", "person is already registered as deceased")
		default:
			h.log.InternalError("deaths.register: register failed", err, "person_id", req.PersonID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toDeathResponse(d))
}

func (h *Handlers) DeregisterDeath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Deaths.Deregister(r.Context(), id); err != nil {
		if errors.Is(err, deathdomain.ErrDeathNotFound) {
			h.log.BusinessError("deaths.deregister: not found", err, "death_id", id)
			writeError(w, http.StatusNotFound, "death_not_found", "death record not found")
			return
		}
		h.log.InternalError("deaths.deregister: deregister failed", err, "death_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
