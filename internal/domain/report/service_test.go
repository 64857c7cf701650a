package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	records []Record
	err     error
}

func (f *fakeGateway) Records(ctx context.Context) ([]Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

func newTestService(records []Record) *Service {
	svc := NewService(&fakeGateway{records: records}, testGenders)
	svc.now = func() time.Time { return date(2024, time.July, 1) }
	return svc
}

func TestServiceSummaryRanksByMembers(t *testing.T) {
	svc := newTestService([]Record{
		villager("a", "male", "H1", "Small", nil),
		villager("b", "male", "H2", "Big", nil),
		villager("c", "female", "H3", "Big", nil),
		villager("d", "female", "H2", "Big", nil),
	})

	rows, err := svc.Summary(context.Background(), Criteria{}, DimensionGeneral)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Big", rows[0].Group)
	assert.Equal(t, 3, rows[0].Members)
	assert.Equal(t, 2, rows[0].Households)
	assert.Nil(t, rows[0].Categories)
	assert.Equal(t, "Small", rows[1].Group)
}

func TestServiceDeathSummaryRestrictsToDeceased(t *testing.T) {
	alive := villager("alive", "male", "H1", "A", nil)
	dead := villager("dead", "female", "H2", "A", nil)
	dead.Deceased = true
	dead.DeathType = "illness"

	svc := newTestService([]Record{alive, dead})

	rows, err := svc.Summary(context.Background(), Criteria{}, DimensionDeaths)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 1, rows[0].Members)
	assert.Equal(t, map[string]int{"illness": 1}, rows[0].Categories)
}

func TestServiceGenderChart(t *testing.T) {
	svc := newTestService([]Record{
		villager("a", "male", "H1", "A", nil),
		villager("b", "female", "H1", "A", nil),
		villager("c", "female", "H2", "B", nil),
	})

	chart, err := svc.GenderChart(context.Background(), Criteria{})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, chart.Labels)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "male", chart.Series[0].Label)
	assert.Equal(t, []float64{1, 0}, chart.Series[0].Values)
	assert.Equal(t, []float64{1, 1}, chart.Series[1].Values)
}

func TestServiceExportCSV(t *testing.T) {
	svc := newTestService([]Record{
		villager("a", "male", "H1", "A", nil),
		villager("b", "female", "H2", "B", nil),
	})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf, Criteria{Village: "A"}))

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2, lines) // header + one matching record
}

func TestServicePropagatesGatewayError(t *testing.T) {
	svc := NewService(&fakeGateway{err: errors.New("gateway down")}, testGenders)

	_, err := svc.List(context.Background(), Criteria{})
	assert.Error(t, err)

	_, err = svc.Summary(context.Background(), Criteria{}, DimensionGeneral)
	assert.Error(t, err)
}
