package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestAgeAroundBirthday(t *testing.T) {
	birth := date(2000, time.June, 15)

	assert.Equal(t, 23, Age(birth, date(2024, time.June, 14)))
	assert.Equal(t, 24, Age(birth, date(2024, time.June, 15)))
	assert.Equal(t, 24, Age(birth, date(2024, time.June, 16)))
}

func TestAgeEarlierMonth(t *testing.T) {
	birth := date(1990, time.December, 1)
	assert.Equal(t, 29, Age(birth, date(2020, time.January, 10)))
}

func TestAgeUnknownInputs(t *testing.T) {
	assert.Equal(t, AgeUnknown, Age(time.Time{}, date(2024, time.January, 1)))
	assert.Equal(t, AgeUnknown, Age(date(2030, time.January, 1), date(2024, time.January, 1)))
}

func TestRecordAgeAtMissingBirthDate(t *testing.T) {
	assert.Equal(t, AgeUnknown, Record{}.AgeAt(date(2024, time.January, 1)))
}

func TestRecordAgeAtDeathFreezesAge(t *testing.T) {
	r := Record{
		BirthDate: datePtr(1950, time.March, 1),
		Deceased:  true,
		DeathDate: datePtr(2020, time.March, 2),
	}

	// Age at death, not age at viewing time.
	assert.Equal(t, 70, r.AgeAt(date(2024, time.June, 1)))
}
