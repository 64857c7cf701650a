package handler

import (
	"errors"
	"net/http"

	householddomain "vims-go/internal/domain/household"
	"github.com/go-chi/chi/v5"
)

type householdRequest struct {
	HouseholdNo        string  `json:"household_no"`
	HouseNo            string  `json:"house_no"`
	StateRegionID      *string `json:"state_region_id"`
	DistrictID         *string `json:"district_id"`
	TownshipID         *string `json:"township_id"`
	WardVillageTractID *string `json:"ward_village_tract_id"`
	VillageID          *string `json:"village_id"`
}

type householdResponse struct {
	ID                 string  `json:"id"`
	HouseholdNo        string  `json:"household_no"`
	HouseNo            string  `json:"house_no"`
	StateRegionID      *string `json:"state_region_id,omitempty"`
	DistrictID         *string `json:"district_id,omitempty"`
	TownshipID         *string `json:"township_id,omitempty"`
	WardVillageTractID *string `json:"ward_village_tract_id,omitempty"`
	VillageID          *string `json:"village_id,omitempty"`
}

func toHouseholdResponse(h *householddomain.Household) householdResponse {
	return householdResponse{
		ID:                 h.ID,
		HouseholdNo:        h.HouseholdNo,
		HouseNo:            h.HouseNo,
		StateRegionID:      h.StateRegionID,
		DistrictID:         h.DistrictID,
		TownshipID:         h.TownshipID,
		WardVillageTractID: h.WardVillageTractID,
		VillageID:          h.VillageID,
	}
}

func (h *Handlers) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid offset")
		return
	}

	households, err := h.Households.List(r.Context(), householddomain.ListFilter{
		HouseholdNo: query.Get("household_no"),
		VillageID:   query.Get("village_id"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		h.log.InternalError("households.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	responses := make([]householdResponse, 0, len(households))
	for i := range households {
		responses = append(responses, toHouseholdResponse(&households[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) GetHousehold(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	household, err := h.Households.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("households.get: not found", err, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("households.get: get failed", err, "household_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toHouseholdResponse(household))
}

func (h *Handlers) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	household, err := h.Households.Create(r.Context(), householddomain.CreateInput{
		HouseholdNo:        req.HouseholdNo,
		HouseNo:            req.HouseNo,
		StateRegionID:      req.StateRegionID,
		DistrictID:         req.DistrictID,
		TownshipID:         req.TownshipID,
		WardVillageTractID: req.WardVillageTractID,
		VillageID:          req.VillageID,
	})
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNoTaken) {
			h.log.BusinessError("households.create: number taken", err, "household_no", req.HouseholdNo)
			writeError(w, http.StatusConflict, "household_no_taken", "household number already registered")
			return
		}
		h.log.InternalError("households.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toHouseholdResponse(household))
}

func (h *Handlers) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	household, err := h.Households.Update(r.Context(), householddomain.UpdateInput{
		ID:                 id,
		HouseholdNo:        req.HouseholdNo,
		HouseNo:            req.HouseNo,
		StateRegionID:      req.StateRegionID,
		DistrictID:         req.DistrictID,
		TownshipID:         req.TownshipID,
		WardVillageTractID: req.WardVillageTractID,
		VillageID:          req.VillageID,
	})
	if err != nil {
		switch {
		case errors.Is(err, householddomain.ErrHouseholdNotFound):
			h.log.BusinessError("households.update: not found", err, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
		case errors.Is(err, householddomain.ErrHouseholdNoTaken):
			h.log.BusinessError("households.update: number taken", err, "household_id", id)
			writeError(w, http.StatusConflict, "household_no_taken", "household number already registered")
		default:
			h.log.InternalError("households.update: update failed", err, "household_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toHouseholdResponse(household))
}

func (h *Handlers) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Households.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, householddomain.ErrHouseholdNotFound):
			h.log.BusinessError("households.delete: not found", err, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
		case errors.Is(err, householddomain.ErrHouseholdInUse):
			h.log.BusinessError("households.delete: household occupied", err, "household_id", id)
			writeError(w, http.StatusConflict, "household_in_use", "household still has registered persons")
		default:
			h.log.InternalError("households.delete: delete failed", err, "household_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
