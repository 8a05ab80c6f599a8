package analytics

import (
	"reflect"
	"testing"
)

func twoPointTrend() []TrendPoint {
	return []TrendPoint{
		{
			DateISO:     "2025-07-13",
			RevenueP001: 100, RevenueP002: 60,
			RevParP001: 2.0, RevParP002: 1.0,
			CancelRateP001: 0.10, CancelRateP002: 0.20,
			DirectShareP001: 0.30, DirectShareP002: 0.40,
		},
		{
			DateISO:     "2025-07-20",
			RevenueP001: 200, RevenueP002: 40,
			RevParP001: 3.0, RevParP002: 2.0,
			CancelRateP001: 0.20, CancelRateP002: 0.30,
			DirectShareP001: 0.40, DirectShareP002: 0.50,
		},
	}
}

func TestComputeKPIsSingleProperty(t *testing.T) {
	got := ComputeKPIs(twoPointTrend(), PropertyP001, &DateRange{From: "2025-07-13", To: "2025-07-20"})

	if got.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %v, want 300", got.TotalRevenue)
	}
	if !almostEqual(got.RevPar, 2.5) {
		t.Errorf("RevPar = %v, want 2.5", got.RevPar)
	}
	if !almostEqual(got.AvgCancelRate, 0.15) {
		t.Errorf("AvgCancelRate = %v, want 0.15", got.AvgCancelRate)
	}
	if !almostEqual(got.DirectShare, 0.35) {
		t.Errorf("DirectShare = %v, want 0.35", got.DirectShare)
	}
}

func TestComputeKPIsAllProperties(t *testing.T) {
	got := ComputeKPIs(twoPointTrend(), PropertyAll, nil)

	// Revenue sums both properties; the means average the per-point averages.
	if got.TotalRevenue != 400 {
		t.Errorf("TotalRevenue = %v, want 400", got.TotalRevenue)
	}
	if !almostEqual(got.RevPar, 2.0) {
		t.Errorf("RevPar = %v, want 2.0", got.RevPar)
	}
	if !almostEqual(got.AvgCancelRate, 0.20) {
		t.Errorf("AvgCancelRate = %v, want 0.20", got.AvgCancelRate)
	}
	if !almostEqual(got.DirectShare, 0.40) {
		t.Errorf("DirectShare = %v, want 0.40", got.DirectShare)
	}
}

func TestComputeKPIsRangeFiltering(t *testing.T) {
	trend := twoPointTrend()

	// Inclusive on both bounds.
	narrow := ComputeKPIs(trend, PropertyP001, &DateRange{From: "2025-07-20", To: "2025-07-20"})
	if narrow.TotalRevenue != 200 {
		t.Errorf("TotalRevenue = %v, want 200 (second point only)", narrow.TotalRevenue)
	}
	if !almostEqual(narrow.RevPar, 3.0) {
		t.Errorf("RevPar = %v, want 3.0", narrow.RevPar)
	}
}

func TestComputeKPIsEmptyRangeFallsBackToSnapshot(t *testing.T) {
	trend := twoPointTrend()
	rng := &DateRange{From: "2030-01-01", To: "2030-12-31"}

	for _, filter := range []PropertyFilter{PropertyAll, PropertyP001, PropertyP002} {
		got := ComputeKPIs(trend, filter, rng)
		snap := SnapshotStats(filter)
		want := KPIRollup{
			TotalRevenue:  snap.TotalRevenue,
			RevPar:        snap.RevPar,
			AvgCancelRate: snap.AvgCancelRate,
			DirectShare:   snap.DirectShare,
		}
		if got != want {
			t.Errorf("filter %q: rollup = %+v, want snapshot %+v", filter, got, want)
		}
	}

	// Empty trend behaves the same as an empty filter result.
	got := ComputeKPIs(nil, PropertyP001, nil)
	if got.TotalRevenue != SnapshotStats(PropertyP001).TotalRevenue {
		t.Errorf("nil trend did not fall back to snapshot: %+v", got)
	}
}

func TestComputeKPIsDeterministic(t *testing.T) {
	trend := SampleTrend(20)
	rng := &DateRange{From: "2025-08-01", To: "2025-10-01"}

	first := ComputeKPIs(trend, PropertyP001, rng)
	for i := 0; i < 5; i++ {
		if got := ComputeKPIs(trend, PropertyP001, rng); got != first {
			t.Fatalf("call %d returned %+v, first call returned %+v", i, got, first)
		}
	}
}

func TestFilterTrend(t *testing.T) {
	trend := twoPointTrend()

	if got := FilterTrend(trend, nil); !reflect.DeepEqual(got, trend) {
		t.Errorf("nil range should include all points")
	}
	if got := FilterTrend(trend, &DateRange{From: "2025-07-14", To: "2025-07-19"}); len(got) != 0 {
		t.Errorf("expected no points in gap range, got %d", len(got))
	}

	// Filtering is order independent.
	reversed := []TrendPoint{trend[1], trend[0]}
	got := FilterTrend(reversed, &DateRange{From: "2025-07-13", To: "2025-07-13"})
	if len(got) != 1 || got[0].DateISO != "2025-07-13" {
		t.Errorf("filter over unsorted trend = %+v", got)
	}
}

func TestTrendDateRange(t *testing.T) {
	min, max := TrendDateRange(twoPointTrend())
	if min != "2025-07-13" || max != "2025-07-20" {
		t.Errorf("TrendDateRange() = %q, %q", min, max)
	}

	min, max = TrendDateRange(nil)
	if min != "" || max != "" {
		t.Errorf("empty trend should yield empty bounds, got %q, %q", min, max)
	}
}
