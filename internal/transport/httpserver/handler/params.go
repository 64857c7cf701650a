package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	reportdomain "vims-go/internal/domain/report"
)

const dateLayout = "2006-01-02"

func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func parseOptionalInt(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return nil, fmt.Errorf("invalid int")
	}
	return &parsed, nil
}

func parseOptionalBool(value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid bool")
	}
	return &parsed, nil
}

// parseCriteria maps the shared filter query params onto report criteria.
// Absent params leave their dimension unconstrained.
func parseCriteria(query url.Values) (reportdomain.Criteria, error) {
	crit := reportdomain.Criteria{
		Search:           strings.TrimSpace(query.Get("search")),
		Gender:           strings.TrimSpace(query.Get("gender")),
		HouseholdNo:      strings.TrimSpace(query.Get("household_no")),
		StateRegion:      strings.TrimSpace(query.Get("state_region")),
		District:         strings.TrimSpace(query.Get("district")),
		Township:         strings.TrimSpace(query.Get("township")),
		WardVillageTract: strings.TrimSpace(query.Get("ward_village_tract")),
		Village:          strings.TrimSpace(query.Get("village")),
	}

	if raw := query.Get("residencies"); raw != "" {
		crit.Residencies = parseCSV(raw)
	}
	if raw := query.Get("death_types"); raw != "" {
		crit.DeathTypes = parseCSV(raw)
	}
	if raw := query.Get("disability_types"); raw != "" {
		crit.DisabilityTypes = parseCSV(raw)
	}

	deceased, err := parseOptionalBool(query.Get("deceased"))
	if err != nil {
		return reportdomain.Criteria{}, fmt.Errorf("deceased: %w", err)
	}
	crit.Deceased = deceased

	disabled, err := parseOptionalBool(query.Get("disabled"))
	if err != nil {
		return reportdomain.Criteria{}, fmt.Errorf("disabled: %w", err)
	}
	crit.Disabled = disabled

	minAge, err := parseOptionalInt(query.Get("min_age"))
	if err != nil {
		return reportdomain.Criteria{}, fmt.Errorf("min_age: %w", err)
	}
	maxAge, err := parseOptionalInt(query.Get("max_age"))
	if err != nil {
		return reportdomain.Criteria{}, fmt.Errorf("max_age: %w", err)
	}
	crit.Age = reportdomain.AgeRange{Min: minAge, Max: maxAge}

	asOf, err := parseDateParam(query.Get("as_of"))
	if err != nil {
		return reportdomain.Criteria{}, fmt.Errorf("as_of: %w", err)
	}
	if asOf != nil {
		crit.AsOf = *asOf
	}

	return crit, nil
}
