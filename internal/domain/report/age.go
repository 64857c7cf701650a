package report

import "time"

// AgeUnknown is returned when an age cannot be computed (missing or invalid
// birth date). It is excluded from average-age tallies and fails any bounded
// age filter.
const AgeUnknown = -1

// Age computes whole years between birth and asOf, calendar-aware: the year
// difference is decremented when the (month, day) of asOf precedes the
// birthday. Returns AgeUnknown for a zero birth date or a birth after asOf.
func Age(birth, asOf time.Time) int {
	if birth.IsZero() || asOf.IsZero() {
		return AgeUnknown
	}

	years := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() || (asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return AgeUnknown
	}
	return years
}

// AgeAt evaluates the record's age as of the given date. A deceased person's
// age is frozen at the death date when it precedes asOf (age at death).
func (r Record) AgeAt(asOf time.Time) int {
	if r.BirthDate == nil {
		return AgeUnknown
	}
	if r.Deceased && r.DeathDate != nil && r.DeathDate.Before(asOf) {
		asOf = *r.DeathDate
	}
	return Age(*r.BirthDate, asOf)
}
