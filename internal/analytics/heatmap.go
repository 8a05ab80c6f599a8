package analytics

import (
	"cmp"
	"slices"
)

// HeatmapRow is one channel's mean cancellation percentage per rate plan,
// feeding the "Most Cancel Plan" heatmap.
type HeatmapRow struct {
	Channel string             `json:"channel"`
	Rates   map[string]float64 `json:"rates"` // rate plan -> cancel rate in percent
}

type rateAccum struct {
	sum   float64
	count int
}

// CancelRateMatrix aggregates row records into a channel × rate-plan matrix
// of mean cancellation percentages. Channels are sorted by name for stable
// rendering; rate plans keep their imported spelling.
func CancelRateMatrix(rows []TopProblem) []HeatmapRow {
	cells := make(map[string]map[string]*rateAccum)
	for _, r := range rows {
		if cells[r.Channel] == nil {
			cells[r.Channel] = make(map[string]*rateAccum)
		}
		acc := cells[r.Channel][r.RatePlan]
		if acc == nil {
			acc = &rateAccum{}
			cells[r.Channel][r.RatePlan] = acc
		}
		acc.sum += r.CancelRate * 100
		acc.count++
	}

	matrix := make([]HeatmapRow, 0, len(cells))
	for channel, plans := range cells {
		row := HeatmapRow{Channel: channel, Rates: make(map[string]float64, len(plans))}
		for plan, acc := range plans {
			row.Rates[plan] = acc.sum / float64(acc.count)
		}
		matrix = append(matrix, row)
	}

	slices.SortFunc(matrix, func(a, b HeatmapRow) int {
		return cmp.Compare(a.Channel, b.Channel)
	})
	return matrix
}

// ChannelScatter collapses row records into one scatter point per channel:
// total revenue, mean cancellation rate, and mean lead time over the rows
// that carry one.
func ChannelScatter(rows []TopProblem) []ScatterItem {
	type accum struct {
		revenue   float64
		cancelSum float64
		count     int
		leadSum   float64
		leadCount int
	}

	byChannel := make(map[string]*accum)
	for _, r := range rows {
		acc := byChannel[r.Channel]
		if acc == nil {
			acc = &accum{}
			byChannel[r.Channel] = acc
		}
		acc.revenue += r.Revenue
		acc.cancelSum += r.CancelRate
		acc.count++
		if r.LeadTime != nil {
			acc.leadSum += *r.LeadTime
			acc.leadCount++
		}
	}

	points := make([]ScatterItem, 0, len(byChannel))
	for channel, acc := range byChannel {
		p := ScatterItem{
			Name:       channel,
			Revenue:    acc.revenue,
			CancelRate: acc.cancelSum / float64(acc.count),
		}
		if acc.leadCount > 0 {
			p.LeadTime = acc.leadSum / float64(acc.leadCount)
		}
		points = append(points, p)
	}

	slices.SortFunc(points, func(a, b ScatterItem) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return points
}
