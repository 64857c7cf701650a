package handler

import (
	"errors"
	"net/http"
	"time"

	persondomain "vims-go/internal/domain/person"
	"github.com/go-chi/chi/v5"
)

type personRequest struct {
	Name           string  `json:"name"`
	NationalID     string  `json:"national_id"`
	Gender         string  `json:"gender"`
	BirthDate      string  `json:"birth_date"`
	FatherName     string  `json:"father_name"`
	MotherName     string  `json:"mother_name"`
	Residency      string  `json:"residency"`
	Remark         string  `json:"remark"`
	HouseholdID    string  `json:"household_id"`
	OccupationID   *string `json:"occupation_id"`
	EducationID    *string `json:"education_id"`
	EthnicityID    *string `json:"ethnicity_id"`
	NationalityID  *string `json:"nationality_id"`
	ReligionID     *string `json:"religion_id"`
	RelationshipID *string `json:"relationship_id"`
}

type personResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NationalID     string  `json:"national_id"`
	Gender         string  `json:"gender"`
	BirthDate      string  `json:"birth_date,omitempty"`
	FatherName     string  `json:"father_name"`
	MotherName     string  `json:"mother_name"`
	Residency      string  `json:"residency"`
	Remark         string  `json:"remark"`
	Deceased       bool    `json:"deceased"`
	Disabled       bool    `json:"disabled"`
	HouseholdID    string  `json:"household_id"`
	OccupationID   *string `json:"occupation_id,omitempty"`
	EducationID    *string `json:"education_id,omitempty"`
	EthnicityID    *string `json:"ethnicity_id,omitempty"`
	NationalityID  *string `json:"nationality_id,omitempty"`
	ReligionID     *string `json:"religion_id,omitempty"`
	RelationshipID *string `json:"relationship_id,omitempty"`
}

func toPersonResponse(p *persondomain.Person) personResponse {
	resp := personResponse{
		ID:             p.ID,
		Name:           p.Name,
		NationalID:     p.NationalID,
		Gender:         p.Gender,
		FatherName:     p.FatherName,
		MotherName:     p.MotherName,
		Residency:      p.Residency,
		Remark:         p.Remark,
		Deceased:       p.Deceased,
		Disabled:       p.Disabled,
		HouseholdID:    p.HouseholdID,
		OccupationID:   p.OccupationID,
		EducationID:    p.EducationID,
		EthnicityID:    p.EthnicityID,
		NationalityID:  p.NationalityID,
		ReligionID:     p.ReligionID,
		RelationshipID: p.RelationshipID,
	}
	if p.BirthDate != nil {
		resp.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return resp
}

func (h *Handlers) ListPersons(w http.ResponseWriter, r *http.Request) {
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
	deceased, err := parseOptionalBool(query.Get("deceased"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid deceased flag")
		return
	}
	disabled, err := parseOptionalBool(query.Get("disabled"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid disabled flag")
		return
	}

	persons, err := h.Persons.List(r.Context(), persondomain.ListFilter{
		Search:      query.Get("search"),
		HouseholdID: query.Get("household_id"),
		Gender:      query.Get("gender"),
		Deceased:    deceased,
		Disabled:    disabled,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		h.log.InternalError("persons.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	responses := make([]personResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, toPersonResponse(&persons[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.Persons.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, persondomain.ErrPersonNotFound) {
			h.log.BusinessError("persons.get: not found", err, "person_id", id)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
			return
		}
		h.log.InternalError("persons.get: get failed", err, "person_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

func (h *Handlers) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input, err := toCreateInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	p, err := h.Persons.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, persondomain.ErrHouseholdNotFound) {
			h.log.BusinessError("persons.create: household not found", err, "household_id", req.HouseholdID)
			writeError(w, http.StatusUnprocessableEntity, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("persons.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPersonResponse(p))
}

func (h *Handlers) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req personRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	createInput, err := toCreateInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	p, err := h.Persons.Update(r.Context(), persondomain.UpdateInput{
		ID:             id,
		Name:           createInput.Name,
		NationalID:     createInput.NationalID,
		Gender:         createInput.Gender,
		BirthDate:      createInput.BirthDate,
		FatherName:     createInput.FatherName,
		MotherName:     createInput.MotherName,
		Residency:      createInput.Residency,
		Remark:         createInput.Remark,
		HouseholdID:    createInput.HouseholdID,
		OccupationID:   createInput.OccupationID,
		EducationID:    createInput.EducationID,
		EthnicityID:    createInput.EthnicityID,
		NationalityID:  createInput.NationalityID,
		ReligionID:     createInput.ReligionID,
		RelationshipID: createInput.RelationshipID,
	})
	if err != nil {
		switch {
		case errors.Is(err, persondomain.ErrPersonNotFound):
			h.log.BusinessError("persons.update: not found", err, "person_id", id)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
		case errors.Is(err, persondomain.ErrHouseholdNotFound):
			h.log.BusinessError("persons.update: household not found", err, "person_id", id)
			writeError(w, http.StatusUnprocessableEntity, "household_not_found", "household not found")
		default:
			h.log.InternalError("persons.update: update failed", err, "person_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

func (h *Handlers) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Persons.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persondomain.ErrPersonNotFound) {
			h.log.BusinessError("persons.delete: not found", err, "person_id", id)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
			return
		}
		h.log.InternalError("persons.delete: delete failed", err, "person_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCreateInput(req personRequest) (persondomain.CreateInput, error) {
	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := parseDateParam(req.BirthDate)
		if err != nil {
			return persondomain.CreateInput{}, errors.New("invalid birth_date")
		}
		birthDate = parsed
	}

	return persondomain.CreateInput{
		Name:           req.Name,
		NationalID:     req.NationalID,
		Gender:         req.Gender,
		BirthDate:      birthDate,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		Residency:      req.Residency,
		Remark:         req.Remark,
		HouseholdID:    req.HouseholdID,
		OccupationID:   req.OccupationID,
		EducationID:    req.EducationID,
		EthnicityID:    req.EthnicityID,
		NationalityID:  req.NationalityID,
		ReligionID:     req.ReligionID,
		RelationshipID: req.RelationshipID,
	}, nil
}
