package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectAllOptionalFieldsMissing(t *testing.T) {
	row := Project(Record{}, date(2024, time.January, 1))

	require.Len(t, row, len(Columns))
	for i, col := range Columns {
		switch col {
		case "deceased", "disabled":
			assert.Equal(t, "no", row[i], col)
		default:
			assert.Equal(t, "", row[i], col)
		}
	}
}

func TestProjectFullRecord(t *testing.T) {
	r := Record{
		Name:            "Aung Myint",
		NationalID:      "12/ABC(N)123456",
		Gender:          "male",
		BirthDate:       datePtr(1990, time.May, 20),
		FatherName:      "U Hla",
		Residency:       "resident",
		Deceased:        true,
		DeathDate:       datePtr(2023, time.February, 10),
		DeathType:       "illness",
		Disabled:        true,
		DisabilityTypes: []string{"visual", "hearing"},
		Household: &HouseholdInfo{
			HouseholdNo: "H-001",
			HouseNo:     "12",
			Village:     "Kan Gyi",
		},
	}

	row := Project(r, date(2024, time.July, 1))
	byCol := make(map[string]string, len(Columns))
	for i, col := range Columns {
		byCol[col] = row[i]
	}

	assert.Equal(t, "Aung Myint", byCol["name"])
	assert.Equal(t, "1990-05-20", byCol["birth_date"])
	// Deceased: age frozen at the death date.
	assert.Equal(t, "32", byCol["age"])
	assert.Equal(t, "H-001", byCol["household_no"])
	assert.Equal(t, "Kan Gyi", byCol["village"])
	assert.Equal(t, "yes", byCol["deceased"])
	assert.Equal(t, "2023-02-10", byCol["death_date"])
	assert.Equal(t, "visual; hearing", byCol["disability_types"])
}

func TestWriteCSVGolden(t *testing.T) {
	records := []Record{
		{
			Name:      "Thida",
			Gender:    "female",
			BirthDate: datePtr(2000, time.June, 15),
			Household: &HouseholdInfo{HouseholdNo: "H-002", Village: "Ywar Thit"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, date(2024, time.June, 16)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(Columns, ","), lines[0])
	assert.Contains(t, lines[1], "Thida")
	assert.Contains(t, lines[1], ",24,")
	assert.Contains(t, lines[1], "Ywar Thit")
}
