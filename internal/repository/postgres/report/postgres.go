package report

import (
	"context"
	"time"

	reportdomain "vims-go/internal/domain/report"
	"gorm.io/gorm"
)

// PostgresRepository is the reference-data gateway: it performs the joins the
// hosted backend used to embed and hands the core flat records.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type recordRow struct {
	ID         string     `gorm:"column:id"`
	Name       string     `gorm:"column:name"`
	NationalID string     `gorm:"column:national_id"`
	Gender     string     `gorm:"column:gender"`
	BirthDate  *time.Time `gorm:"column:birth_date"`
	FatherName string     `gorm:"column:father_name"`
	MotherName string     `gorm:"column:mother_name"`
	Residency  string     `gorm:"column:residency"`
	Remark     string     `gorm:"column:remark"`
	Deceased   bool       `gorm:"column:deceased"`
	Disabled   bool       `gorm:"column:disabled"`

	Occupation   *string `gorm:"column:occupation"`
	Education    *string `gorm:"column:education"`
	Ethnicity    *string `gorm:"column:ethnicity"`
	Nationality  *string `gorm:"column:nationality"`
	Religion     *string `gorm:"column:religion"`
	Relationship *string `gorm:"column:relationship"`

	HouseholdID      *string `gorm:"column:household_id"`
	HouseholdNo      *string `gorm:"column:household_no"`
	HouseNo          *string `gorm:"column:house_no"`
	StateRegion      *string `gorm:"column:state_region"`
	District         *string `gorm:"column:district"`
	Township         *string `gorm:"column:township"`
	WardVillageTract *string `gorm:"column:ward_village_tract"`
	Village          *string `gorm:"column:village"`

	DeathDate   *time.Time `gorm:"column:death_date"`
	DeathPlace  *string    `gorm:"column:death_place"`
	Complainant *string    `gorm:"column:complainant"`
	DeathType   *string    `gorm:"column:death_type"`
}

type disabilityRow struct {
	PersonID       string  `gorm:"column:person_id"`
	DisabilityType *string `gorm:"column:disability_type"`
}

func (r *PostgresRepository) Records(ctx context.Context) ([]reportdomain.Record, error) {
	var rows []recordRow
	err := r.db.WithContext(ctx).
		Table("people").
		Select(`people.id, people.name, people.national_id, people.gender, people.birth_date,
			people.father_name, people.mother_name, people.residency, people.remark,
			people.deceased, people.disabled,
			occupations.name as occupation, educations.name as education,
			ethnicities.name as ethnicity, nationalities.name as nationality,
			religions.name as religion, relationships.name as relationship,
			households.id as household_id, households.household_no, households.house_no,
			state_regions.name as state_region, districts.name as district,
			townships.name as township, ward_village_tracts.name as ward_village_tract,
			villages.name as village,
			deaths.death_date, deaths.death_place, deaths.complainant,
			death_types.name as death_type`).
		Joins("left join households on households.id = people.household_id").
		Joins("left join occupations on occupations.id = people.occupation_id").
		Joins("left join educations on educations.id = people.education_id").
		Joins("left join ethnicities on ethnicities.id = people.ethnicity_id").
		Joins("left join nationalities on nationalities.id = people.nationality_id").
		Joins("left join religions on religions.id = people.religion_id").
		Joins("left join relationships on relationships.id = people.relationship_id").
		Joins("left join state_regions on state_regions.id = households.state_region_id").
		Joins("left join districts on districts.id = households.district_id").
		Joins("left join townships on townships.id = households.township_id").
		Joins("left join ward_village_tracts on ward_village_tracts.id = households.ward_village_tract_id").
		Joins("left join villages on villages.id = households.village_id").
		Joins("left join deaths on deaths.person_id = people.id").
		Joins("left join death_types on death_types.id = deaths.death_type_id").
		Order("households.household_no asc, people.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	disabilityTypes, err := r.disabilityTypesByPerson(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]reportdomain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRecord(row, disabilityTypes[row.ID]))
	}
	return records, nil
}

func (r *PostgresRepository) disabilityTypesByPerson(ctx context.Context) (map[string][]string, error) {
	var rows []disabilityRow
	err := r.db.WithContext(ctx).
		Table("disabilities").
		Select("disabilities.person_id, disability_types.name as disability_type").
		Joins("left join disability_types on disability_types.id = disabilities.disability_type_id").
		Order("disabilities.created_at asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byPerson := make(map[string][]string, len(rows))
	for _, row := range rows {
		if row.DisabilityType == nil || *row.DisabilityType == "" {
			continue
		}
		byPerson[row.PersonID] = append(byPerson[row.PersonID], *row.DisabilityType)
	}
	return byPerson, nil
}

func toRecord(row recordRow, disabilityTypes []string) reportdomain.Record {
	rec := reportdomain.Record{
		ID:              row.ID,
		Name:            row.Name,
		NationalID:      row.NationalID,
		Gender:          row.Gender,
		BirthDate:       row.BirthDate,
		FatherName:      row.FatherName,
		MotherName:      row.MotherName,
		Residency:       row.Residency,
		Remark:          row.Remark,
		Deceased:        row.Deceased,
		Disabled:        row.Disabled,
		Occupation:      deref(row.Occupation),
		Education:       deref(row.Education),
		Ethnicity:       deref(row.Ethnicity),
		Nationality:     deref(row.Nationality),
		Religion:        deref(row.Religion),
		Relationship:    deref(row.Relationship),
		DeathDate:       row.DeathDate,
		DeathPlace:      deref(row.DeathPlace),
		Complainant:     deref(row.Complainant),
		DeathType:       deref(row.DeathType),
		DisabilityTypes: disabilityTypes,
	}

	if row.HouseholdID != nil {
		rec.Household = &reportdomain.HouseholdInfo{
			HouseholdNo:      deref(row.HouseholdNo),
			HouseNo:          deref(row.HouseNo),
			StateRegion:      deref(row.StateRegion),
			District:         deref(row.District),
			Township:         deref(row.Township),
			WardVillageTract: deref(row.WardVillageTract),
			Village:          deref(row.Village),
		}
	}

	return rec
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
