package analytics

import "testing"

func TestSampleTrendShape(t *testing.T) {
	trend := SampleTrend(20)
	if len(trend) != 20 {
		t.Fatalf("trend length = %d, want 20", len(trend))
	}
	if trend[0].DateISO != "2025-07-13" {
		t.Errorf("first point = %q, want 2025-07-13", trend[0].DateISO)
	}
	for i := 1; i < len(trend); i++ {
		if trend[i].DateISO <= trend[i-1].DateISO {
			t.Errorf("trend not ascending at %d: %q <= %q", i, trend[i].DateISO, trend[i-1].DateISO)
		}
	}
	for i, p := range trend {
		for _, rate := range []float64{p.CancelRateP001, p.CancelRateP002, p.DirectShareP001, p.DirectShareP002} {
			if rate < 0 || rate > 1 {
				t.Errorf("point %d has rate outside [0,1]: %+v", i, p)
			}
		}
	}
}

func TestSampleTrendDeterministic(t *testing.T) {
	a, b := SampleTrend(20), SampleTrend(20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample trend not deterministic at point %d", i)
		}
	}
}

func TestSampleTopProblemsValid(t *testing.T) {
	rows := SampleTopProblems()
	if len(rows) != 10 {
		t.Fatalf("sample rows = %d, want 10", len(rows))
	}
	for i, r := range rows {
		if r.Channel == "" || r.RatePlan == "" {
			t.Errorf("row %d missing identity: %+v", i, r)
		}
		if r.CancelRate < 0 || r.CancelRate > 1 {
			t.Errorf("row %d cancel rate out of range: %v", i, r.CancelRate)
		}
		if r.LeadTime == nil || r.Property == "" || r.Date == "" {
			t.Errorf("row %d should carry all optional fields: %+v", i, r)
		}
		if !isoDatePattern.MatchString(r.Date) {
			t.Errorf("row %d date %q not ISO formatted", i, r.Date)
		}
	}
}

func TestSnapshotStatsFallback(t *testing.T) {
	if SnapshotStats(PropertyP001).TotalRevenue != 1200000 {
		t.Errorf("P001 snapshot mismatch")
	}
	if SnapshotStats(PropertyFilter("P999")) != SnapshotStats(PropertyAll) {
		t.Errorf("unknown filter should fall back to All Properties snapshot")
	}
}

func TestSampleDocumentComplete(t *testing.T) {
	doc := SampleDocument()
	if len(doc.RatePlans) == 0 || len(doc.ChannelMix) == 0 || len(doc.Trend) == 0 ||
		len(doc.TopProblems) == 0 || len(doc.Scatter) == 0 {
		t.Fatalf("sample document has empty sections: %+v", doc)
	}
	if doc.GlobalStats != SnapshotStats(PropertyAll) {
		t.Errorf("global stats should match the All Properties snapshot")
	}
}
