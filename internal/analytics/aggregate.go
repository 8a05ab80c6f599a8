package analytics

import "math"

// DateRange is an inclusive [From, To] calendar-date range. The YYYY-MM-DD
// format makes lexicographic comparison equivalent to date comparison.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// KPIRollup is the derived KPI set for a property scope and date range.
// It is never persisted; it is recomputed on every query.
type KPIRollup struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	RevPar        float64 `json:"revPar"`
	AvgCancelRate float64 `json:"avgCancelRate"`
	DirectShare   float64 `json:"directShare"`
}

// FilterTrend returns the points whose date falls inside rng. A nil range
// includes every point. Filtering is a per-point predicate; it does not
// depend on the sequence being sorted.
func FilterTrend(trend []TrendPoint, rng *DateRange) []TrendPoint {
	if rng == nil {
		return trend
	}
	filtered := make([]TrendPoint, 0, len(trend))
	for _, p := range trend {
		if p.DateISO >= rng.From && p.DateISO <= rng.To {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TrendDateRange returns the first and last point's dates, used only as
// defaults for a date-range picker. Empty trend yields empty strings.
func TrendDateRange(trend []TrendPoint) (min, max string) {
	if len(trend) == 0 {
		return "", ""
	}
	return trend[0].DateISO, trend[len(trend)-1].DateISO
}

// ComputeKPIs recomputes the KPI rollup from the trend sequence, scoped to a
// property filter and an optional date range. When filtering yields no
// points, the pre-computed static snapshot for the filter is returned
// (falling back to the All Properties snapshot). Pure and deterministic.
func ComputeKPIs(trend []TrendPoint, filter PropertyFilter, rng *DateRange) KPIRollup {
	filtered := FilterTrend(trend, rng)
	snapshot := SnapshotStats(filter)

	if len(filtered) == 0 {
		return KPIRollup{
			TotalRevenue:  snapshot.TotalRevenue,
			RevPar:        snapshot.RevPar,
			AvgCancelRate: snapshot.AvgCancelRate,
			DirectShare:   snapshot.DirectShare,
		}
	}

	n := float64(len(filtered))
	var totalRevenue, revPar, cancelRate, directShare float64

	switch filter {
	case PropertyP001:
		for _, p := range filtered {
			totalRevenue += p.RevenueP001
			revPar += p.RevParP001
			cancelRate += p.CancelRateP001
			directShare += p.DirectShareP001
		}
	case PropertyP002:
		for _, p := range filtered {
			totalRevenue += p.RevenueP002
			revPar += p.RevParP002
			cancelRate += p.CancelRateP002
			directShare += p.DirectShareP002
		}
	default:
		for _, p := range filtered {
			totalRevenue += p.RevenueP001 + p.RevenueP002
			revPar += (p.RevParP001 + p.RevParP002) / 2
			cancelRate += (p.CancelRateP001 + p.CancelRateP002) / 2
			directShare += (p.DirectShareP001 + p.DirectShareP002) / 2
		}
	}

	revPar /= n
	if math.IsNaN(revPar) {
		revPar = snapshot.RevPar
	}

	return KPIRollup{
		TotalRevenue:  totalRevenue,
		RevPar:        revPar,
		AvgCancelRate: cancelRate / n,
		DirectShare:   directShare / n,
	}
}
