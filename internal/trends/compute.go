package trends

import "math"

// CategoryCount is one GROUP BY row from a distribution query. A nil
// category means the tag was absent on those questions.
type CategoryCount struct {
	Category *string
	Count    int
}

// DistributionRow is one ranked entry of a categorical breakdown.
type DistributionRow struct {
	Category   string
	Count      int
	Percentage float64
}

// Distribution turns GROUP BY rows (already ordered by count
// descending) into ranked rows with percentages. Absent categories
// take the given fallback label. Percentages are rounded to one
// decimal and are all 0 when the total is 0.
func Distribution(rows []CategoryCount, fallback string) []DistributionRow {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	out := make([]DistributionRow, 0, len(rows))
	for _, r := range rows {
		category := fallback
		if r.Category != nil && *r.Category != "" {
			category = *r.Category
		}
		pct := 0.0
		if total > 0 {
			pct = roundTo(float64(r.Count)/float64(total)*100, 1)
		}
		out = append(out, DistributionRow{Category: category, Count: r.Count, Percentage: pct})
	}
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
