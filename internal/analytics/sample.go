package analytics

import (
	"math"
	"time"
)

// Bundled default dataset. Everything here is generated deterministically so
// that resets, tests and samplegen all agree on the exact same collection.

const sampleTrendWeeks = 20

var sampleTrendStart = time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC)

// SampleTrend generates the weekly trend series used as the default dataset.
func SampleTrend(weeks int) []TrendPoint {
	trend := make([]TrendPoint, 0, weeks)
	for i := 0; i < weeks; i++ {
		date := sampleTrendStart.AddDate(0, 0, i*7)
		fi := float64(i)

		baseRev := 40000 + math.Sin(fi/3)*20000
		trend = append(trend, TrendPoint{
			Date:            date.Format("Jan 2"),
			DateISO:         date.Format("2006-01-02"),
			RevenueP001:     baseRev + float64(i%5)*800,
			RevenueP002:     baseRev*0.7 + float64(i%5)*600,
			RevParP001:      2 + math.Sin(fi/3) + float64(i%10)*0.02,
			RevParP002:      1.5 + math.Sin(fi/3) + float64(i%10)*0.02,
			ADRP001:         120 + math.Cos(fi/4)*20 + float64(i%7)*2,
			ADRP002:         100 + math.Cos(fi/4)*15 + float64(i%7)*2,
			CancelRateP001:  0.12 + float64(i%5)*0.008,
			CancelRateP002:  0.16 + float64(i%5)*0.006,
			DirectShareP001: 0.32 + float64(i%4)*0.01,
			DirectShareP002: 0.30 + float64(i%4)*0.01,
		})
	}
	return trend
}

func leadTime(days float64) *float64 {
	return &days
}

// SampleTopProblems returns the default channel/rate-plan problem rows.
func SampleTopProblems() []TopProblem {
	return []TopProblem{
		{Channel: "Booking.com", RatePlan: "Package", Commission: 12621, Revenue: 57495, CancelRate: 0.160, LeadTime: leadTime(32), Property: "P001", Date: "2025-07-13"},
		{Channel: "Booking.com", RatePlan: "BAR", Commission: 46580, Revenue: 227421, CancelRate: 0.198, LeadTime: leadTime(32), Property: "P001", Date: "2025-07-20"},
		{Channel: "Booking.com", RatePlan: "Corporate", Commission: 16498, Revenue: 80551, CancelRate: 0.175, LeadTime: leadTime(30), Property: "P002", Date: "2025-08-03"},
		{Channel: "Booking.com", RatePlan: "NonRefundable", Commission: 27967, Revenue: 136544, CancelRate: 0.131, LeadTime: leadTime(28), Property: "P002", Date: "2025-08-17"},
		{Channel: "Corporate", RatePlan: "Package", Commission: 19382, Revenue: 94630, CancelRate: 0.211, LeadTime: leadTime(7), Property: "P001", Date: "2025-09-01"},
		{Channel: "Corporate", RatePlan: "BAR", Commission: 0, Revenue: 83520, CancelRate: 0.151, LeadTime: leadTime(8), Property: "All Properties", Date: "2025-09-14"},
		{Channel: "Direct - Web", RatePlan: "BAR", Commission: 0, Revenue: 325749, CancelRate: 0.132, LeadTime: leadTime(45), Property: "P001", Date: "2025-10-01"},
		{Channel: "Direct - Web", RatePlan: "NonRefundable", Commission: 0, Revenue: 154215, CancelRate: 0.070, LeadTime: leadTime(42), Property: "P002", Date: "2025-10-15"},
		{Channel: "Expedia", RatePlan: "BAR", Commission: 17531, Revenue: 92037, CancelRate: 0.219, LeadTime: leadTime(15), Property: "P001", Date: "2025-11-01"},
		{Channel: "Expedia", RatePlan: "NonRefundable", Commission: 10200, Revenue: 53550, CancelRate: 0.140, LeadTime: leadTime(18), Property: "P002", Date: "2025-11-17"},
	}
}

// SampleChannelMix returns the default channel mix, sorted by revenue.
func SampleChannelMix() []ChannelMixItem {
	return []ChannelMixItem{
		{Name: "Direct - Website", Revenue: 681178, Commission: 0, Color: "#2563eb"},
		{Name: "Booking.com", Revenue: 539146, Commission: 110427, Color: "#ea580c"},
		{Name: "Agoda", Revenue: 380034, Commission: 83422, Color: "#f59e0b"},
		{Name: "Corporate Contract", Revenue: 160000, Commission: 0, Color: "#dc2626"},
		{Name: "Expedia", Revenue: 140329, Commission: 40317, Color: "#ca8a04"},
		{Name: "Direct - Phone/Walk-in", Revenue: 120000, Commission: 0, Color: "#16a34a"},
	}
}

// SampleScatter returns the default lead-time vs cancellation scatter set.
func SampleScatter() []ScatterItem {
	return []ScatterItem{
		{Name: "Agoda", LeadTime: 21, CancelRate: 0.22, Revenue: 367329, Color: "#ea580c"},
		{Name: "Booking.com", LeadTime: 32, CancelRate: 0.18, Revenue: 527495, Color: "#2563eb"},
		{Name: "Expedia", LeadTime: 15, CancelRate: 0.25, Revenue: 140329, Color: "#16a34a"},
		{Name: "Direct", LeadTime: 45, CancelRate: 0.08, Revenue: 587411, Color: "#dc2626"},
		{Name: "Corporate", LeadTime: 7, CancelRate: 0.12, Revenue: 180000, Color: "#0ea5e9"},
		{Name: "Wholesale/Tour Operator", LeadTime: 60, CancelRate: 0.05, Revenue: 110000, Color: "#c026d3"},
	}
}

// SampleRatePlans returns the default rate-plan performance table.
func SampleRatePlans() []PerformanceMetric {
	return []PerformanceMetric{
		{Name: "P-LUXURY LEISURE RETREAT DT", Revenue: 314350000, Reservations: 8, RoomNights: 44, ALOS: 4.88, ADR: 7144318.18, LeadTime: 67.88},
		{Name: "P-Sleep Well Retreat - Spa Package ES", Revenue: 235050000, Reservations: 3, RoomNights: 35, ALOS: 11.67, ADR: 6715714.29, LeadTime: 91},
		{Name: "WEB MIN2N BB - 30", Revenue: 210105000, Reservations: 3, RoomNights: 16, ALOS: 4, ADR: 13131562.50, LeadTime: 65.67},
	}
}

// snapshotStats holds the pre-computed KPI snapshots the Aggregation Engine
// falls back to when date filtering yields no trend points.
var snapshotStats = map[PropertyFilter]GlobalStats{
	PropertyAll: {
		TotalRevenue:  2245981,
		AvgADR:        153.20,
		AvgCancelRate: 0.1528,
		DirectShare:   0.3281,
		RevPar:        57.29,
	},
	PropertyP001: {
		TotalRevenue:  1200000,
		AvgADR:        158,
		AvgCancelRate: 0.14,
		DirectShare:   0.35,
		RevPar:        58.2,
	},
	PropertyP002: {
		TotalRevenue:  1045981,
		AvgADR:        148,
		AvgCancelRate: 0.16,
		DirectShare:   0.31,
		RevPar:        56.1,
	},
}

// SnapshotStats returns the static KPI snapshot for a property filter,
// falling back to the All Properties snapshot for unknown filters.
func SnapshotStats(filter PropertyFilter) GlobalStats {
	if stats, ok := snapshotStats[filter]; ok {
		return stats
	}
	return snapshotStats[PropertyAll]
}

// SampleDocument assembles the complete bundled analytics database.
func SampleDocument() *Document {
	return &Document{
		RatePlans:   SampleRatePlans(),
		ChannelMix:  SampleChannelMix(),
		Trend:       SampleTrend(sampleTrendWeeks),
		TopProblems: SampleTopProblems(),
		Scatter:     SampleScatter(),
		GlobalStats: SnapshotStats(PropertyAll),
	}
}
