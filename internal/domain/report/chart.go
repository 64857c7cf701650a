package report

// BarChart is the widget-agnostic payload for grouped bar charts.
type BarChart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Series is one named value sequence aligned with the chart labels.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// PieChart is the widget-agnostic payload for pie/ratio charts.
type PieChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// GenderBarChart builds a two-series bar chart of male/female counts per
// group, ordered by rank.
func (g *Grouped) GenderBarChart(by RankBy, maleLabel, femaleLabel string) BarChart {
	keys := g.Rank(by)
	male := make([]float64, 0, len(keys))
	female := make([]float64, 0, len(keys))
	for _, key := range keys {
		t := g.tallies[key]
		male = append(male, float64(t.Male))
		female = append(female, float64(t.Female))
	}
	return BarChart{
		Labels: keys,
		Series: []Series{
			{Label: maleLabel, Values: male},
			{Label: femaleLabel, Values: female},
		},
	}
}

// PopulationPie builds a pie chart of member counts per group, ordered by
// rank so slice order matches the summary table.
func (g *Grouped) PopulationPie(by RankBy) PieChart {
	keys := g.Rank(by)
	values := make([]float64, 0, len(keys))
	for _, key := range keys {
		values = append(values, float64(g.tallies[key].Members))
	}
	return PieChart{Labels: keys, Values: values}
}

// CategoryPie builds a pie chart of one group's category counts in
// first-seen order.
func (t *Tally) CategoryPie() PieChart {
	labels := t.CategoryKeys()
	values := make([]float64, 0, len(labels))
	for _, label := range labels {
		values = append(values, float64(t.categories[label]))
	}
	return PieChart{Labels: labels, Values: values}
}
