package handler

import (
	"fmt"
	"net/http"

	reportdomain "vims-go/internal/domain/report"
)

func (h *Handlers) VillageSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, reportdomain.DimensionGeneral, "reports.villages")
}

func (h *Handlers) DeathSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, reportdomain.DimensionDeaths, "reports.deaths")
}

func (h *Handlers) DisabilitySummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, reportdomain.DimensionDisabilities, "reports.disabilities")
}

func (h *Handlers) summary(w http.ResponseWriter, r *http.Request, dim reportdomain.Dimension, op string) {
	crit, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	rows, err := h.Reports.Summary(r.Context(), crit, dim)
	if err != nil {
		h.log.InternalError(op+": summary failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GenderChart(w http.ResponseWriter, r *http.Request) {
	crit, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	chart, err := h.Reports.GenderChart(r.Context(), crit)
	if err != nil {
		h.log.InternalError("reports.charts.gender: chart failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chart)
}

func (h *Handlers) PopulationChart(w http.ResponseWriter, r *http.Request) {
	crit, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	chart, err := h.Reports.PopulationChart(r.Context(), crit)
	if err != nil {
		h.log.InternalError("reports.charts.population: chart failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chart)
}

func (h *Handlers) ExportPersonsCSV(w http.ResponseWriter, r *http.Request) {
	crit, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filename := fmt.Sprintf("persons-%s.csv", h.Reports.AsOf(crit).Format(dateLayout))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.Reports.ExportCSV(r.Context(), w, crit); err != nil {
		// Headers may already be written; log and abort the stream.
		h.log.InternalError("exports.persons: export failed", err)
	}
}
