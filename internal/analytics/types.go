package analytics

// PropertyFilter selects which property a query is scoped to.
type PropertyFilter string

const (
	PropertyAll  PropertyFilter = "All Properties"
	PropertyP001 PropertyFilter = "P001"
	PropertyP002 PropertyFilter = "P002"
)

// TopProblem is one observation of channel/rate-plan performance.
// LeadTime, Property and Date are optional; their presence is decided per
// import by the CSV header, not per row.
type TopProblem struct {
	Channel    string   `json:"channel"`
	RatePlan   string   `json:"ratePlan"`
	Commission float64  `json:"commission"`
	Revenue    float64  `json:"revenue"`
	CancelRate float64  `json:"cancelRate"` // normalized to [0, 1]
	LeadTime   *float64 `json:"leadTime,omitempty"`
	Property   string   `json:"property,omitempty"`
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD
}

// TrendPoint is one time-bucketed observation per property pair.
// DateISO drives range filtering; Date is the chart axis label.
type TrendPoint struct {
	Date            string  `json:"date"`
	DateISO         string  `json:"dateISO"`
	RevenueP001     float64 `json:"revenueP001"`
	RevenueP002     float64 `json:"revenueP002"`
	RevParP001      float64 `json:"revParP001"`
	RevParP002      float64 `json:"revParP002"`
	ADRP001         float64 `json:"adrP001"`
	ADRP002         float64 `json:"adrP002"`
	CancelRateP001  float64 `json:"cancelRateP001"`
	CancelRateP002  float64 `json:"cancelRateP002"`
	DirectShareP001 float64 `json:"directShareP001"`
	DirectShareP002 float64 `json:"directShareP002"`
}

// ChannelMixItem is the revenue/commission split for one distribution channel.
type ChannelMixItem struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
	Color      string  `json:"color"`
}

// ScatterItem feeds the lead-time vs cancellation scatter view.
type ScatterItem struct {
	Name       string  `json:"name"`
	LeadTime   float64 `json:"leadTime"`
	CancelRate float64 `json:"cancelRate"`
	Revenue    float64 `json:"revenue"`
	Color      string  `json:"color,omitempty"`
}

// PerformanceMetric is one rate plan's performance summary.
type PerformanceMetric struct {
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
	RoomNights   int     `json:"roomNights"`
	ALOS         float64 `json:"alos"`
	ADR          float64 `json:"adr"`
	LeadTime     float64 `json:"leadTime"`
	Cancelled    int     `json:"cancelled"`
	CancelRate   float64 `json:"cancelRate"`
}

// GlobalStats is a pre-computed KPI snapshot for a property scope.
type GlobalStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgADR        float64 `json:"avgADR"`
	AvgCancelRate float64 `json:"avgCancelRate"`
	DirectShare   float64 `json:"directShare"`
	RevPar        float64 `json:"revPar"`
}

// Document is the whole analytics database as persisted and served.
type Document struct {
	RatePlans   []PerformanceMetric `json:"ratePlans"`
	ChannelMix  []ChannelMixItem    `json:"channelMix"`
	Trend       []TrendPoint        `json:"trend"`
	TopProblems []TopProblem        `json:"topProblems"`
	Scatter     []ScatterItem       `json:"scatter"`
	GlobalStats GlobalStats         `json:"globalStats"`
}
