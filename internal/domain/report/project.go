package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Columns is the export column order. Golden-file tests and downstream
// spreadsheets depend on it; append only.
var Columns = []string{
	"name",
	"national_id",
	"gender",
	"birth_date",
	"age",
	"father_name",
	"mother_name",
	"household_no",
	"house_no",
	"state_region",
	"district",
	"township",
	"ward_village_tract",
	"village",
	"residency",
	"occupation",
	"education",
	"ethnicity",
	"nationality",
	"religion",
	"relationship",
	"deceased",
	"death_date",
	"death_type",
	"death_place",
	"disabled",
	"disability_types",
	"remark",
}

// Project flattens one record into Columns order. Missing values become
// empty strings; it never panics on absent nested fields.
func Project(r Record, asOf time.Time) []string {
	var h HouseholdInfo
	if r.Household != nil {
		h = *r.Household
	}

	age := ""
	if a := r.AgeAt(asOf); a != AgeUnknown {
		age = strconv.Itoa(a)
	}

	return []string{
		r.Name,
		r.NationalID,
		r.Gender,
		formatDate(r.BirthDate),
		age,
		r.FatherName,
		r.MotherName,
		h.HouseholdNo,
		h.HouseNo,
		h.StateRegion,
		h.District,
		h.Township,
		h.WardVillageTract,
		h.Village,
		r.Residency,
		r.Occupation,
		r.Education,
		r.Ethnicity,
		r.Nationality,
		r.Religion,
		r.Relationship,
		formatBool(r.Deceased),
		formatDate(r.DeathDate),
		r.DeathType,
		r.DeathPlace,
		formatBool(r.Disabled),
		strings.Join(r.DisabilityTypes, "; "),
		r.Remark,
	}
}

// Rows produces the header plus one projected row per record.
func Rows(records []Record, asOf time.Time) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Columns)
	for _, r := range records {
		rows = append(rows, Project(r, asOf))
	}
	return rows
}

// WriteCSV streams the projected rows to w.
func WriteCSV(w io.Writer, records []Record, asOf time.Time) error {
	writer := csv.NewWriter(w)
	for _, row := range Rows(records, asOf) {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
