package handler

import (
	"net/http"

	deathdomain "vims-go/internal/domain/death"
	disabilitydomain "vims-go/internal/domain/disability"
	householddomain "vims-go/internal/domain/household"
	lookupdomain "vims-go/internal/domain/lookup"
	persondomain "vims-go/internal/domain/person"
	reportdomain "vims-go/internal/domain/report"
	"vims-go/pkg/logger"
)

type Handlers struct {
	Persons      *persondomain.Service
	Households   *householddomain.Service
	Lookups      *lookupdomain.Service
	Deaths       *deathdomain.Service
	Disabilities *disabilitydomain.Service
	Reports      *reportdomain.Service

	log logger.Logger
}

func New(
	log logger.Logger,
	persons *persondomain.Service,
	households *householddomain.Service,
	lookups *lookupdomain.Service,
	deaths *deathdomain.Service,
	disabilities *disabilitydomain.Service,
	reports *reportdomain.Service,
) *Handlers {
	return &Handlers{
		Persons:      persons,
		Households:   households,
		Lookups:      lookups,
		Deaths:       deaths,
		Disabilities: disabilities,
		Reports:      reports,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
