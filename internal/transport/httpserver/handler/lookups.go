package handler

import (
	"errors"
	"net/http"

	lookupdomain "vims-go/internal/domain/lookup"
	"github.com/go-chi/chi/v5"
)

type addLookupRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type lookupResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

func toLookupResponse(e *lookupdomain.Entry) lookupResponse {
	return lookupResponse{ID: e.ID, Name: e.Name, ParentID: e.ParentID}
}

func (h *Handlers) ListLookup(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	entries, err := h.Lookups.List(r.Context(), table)
	if err != nil {
		if errors.Is(err, lookupdomain.ErrUnknownTable) {
			h.log.BusinessError("lookups.list: unknown table", err, "table", table)
			writeError(w, http.StatusNotFound, "unknown_lookup_table", "unknown lookup table")
			return
		}
		h.log.InternalError("lookups.list: list failed", err, "table", table)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	responses := make([]lookupResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toLookupResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) AddLookup(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	var req addLookupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	entry, err := h.Lookups.Add(r.Context(), table, req.Name, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, lookupdomain.ErrUnknownTable):
			h.log.BusinessError("lookups.add: unknown table", err, "table", table)
			writeError(w, http.StatusNotFound, "unknown_lookup_table", "unknown lookup table")
		case errors.Is(err, lookupdomain.ErrNameTaken):
			h.log.BusinessError("lookups.add: name taken", err, "table", table, "name", req.Name)
			writeError(w, http.StatusConflict, "lookup_name_taken", "an entry with that name already exists")
		default:
			h.log.InternalError("lookups.add: add failed", err, "table", table)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toLookupResponse(entry))
}
