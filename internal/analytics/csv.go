package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The CSV dialect here is deliberately primitive: comma-delimited, no quoting
// or escaping, header line first. Channel exports from the PMS never quote
// fields, and accepting quoted input would silently change cell contents, so
// encoding/csv is not used.

const expectedHeader = "Channel, Rate Plan, Commission, Revenue, Cancel Rate"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatError reports malformed CSV input. Decoding either fully succeeds or
// fails with one FormatError; there is no partial output.
type FormatError struct {
	Message string
	// Line is the 1-based position in the original file (header = line 1),
	// or 0 when the error is not tied to a single line.
	Line int
}

func (e *FormatError) Error() string {
	return e.Message
}

// normalizeHeaderCell trims, lowercases and collapses internal whitespace.
func normalizeHeaderCell(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// DecodeCSV parses raw CSV text into row records.
//
// The first five header columns must, in order, contain the substrings
// "channel", "rate"+"plan", "commission", "revenue" and "cancel" — contains
// matching, so variants like "Cancel Rate (%)" are accepted. Optional columns
// are detected from the header: a 6th column containing "lead" enables lead
// time, and any column containing "property" or "date" enables those fields
// at the same index in each data row. Blank lines are skipped; row order is
// preserved.
func DecodeCSV(text string) ([]TopProblem, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, &FormatError{Message: "CSV must have at least a header and one row"}
	}

	headerLine := lines[0]
	cols := strings.Split(headerLine, ",")
	for i := range cols {
		cols[i] = normalizeHeaderCell(cols[i])
	}
	if len(cols) < 5 {
		return nil, &FormatError{Message: fmt.Sprintf(
			"invalid CSV header: expected columns like %q, got %d column(s)", expectedHeader, len(cols))}
	}

	ok := strings.Contains(cols[0], "channel") &&
		strings.Contains(cols[1], "rate") && strings.Contains(cols[1], "plan") &&
		strings.Contains(cols[2], "commission") &&
		strings.Contains(cols[3], "revenue") &&
		strings.Contains(cols[4], "cancel")
	if !ok {
		got := headerLine
		if len(got) > 80 {
			got = got[:80] + "…"
		}
		return nil, &FormatError{Message: fmt.Sprintf(
			"invalid CSV header: expected %q (order matters), got: %s", expectedHeader, got)}
	}

	hasLead := len(cols) > 5 && strings.Contains(cols[5], "lead")
	propIdx, dateIdx := -1, -1
	for i, c := range cols {
		if propIdx < 0 && strings.Contains(c, "property") {
			propIdx = i
		}
		if dateIdx < 0 && strings.Contains(c, "date") {
			dateIdx = i
		}
	}

	var rows []TopProblem
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 5 {
			lineNo := i + 2 // 1-based, header counted as line 1
			return nil, &FormatError{
				Line:    lineNo,
				Message: fmt.Sprintf("line %d is missing columns (need 5)", lineNo),
			}
		}

		row := TopProblem{
			Channel:    strings.TrimSpace(parts[0]),
			RatePlan:   strings.TrimSpace(parts[1]),
			Commission: ParseNumber(parts[2]),
			Revenue:    ParseNumber(parts[3]),
			CancelRate: ParsePercentOrFraction(parts[4]),
		}

		if hasLead && len(parts) > 5 {
			if cell := strings.TrimSpace(parts[5]); cell != "" {
				lead := ParseNumber(cell)
				if lead < 0 {
					lead = 0
				}
				row.LeadTime = &lead
			}
		}
		if propIdx >= 0 && propIdx < len(parts) {
			if cell := strings.TrimSpace(parts[propIdx]); cell != "" {
				row.Property = NormalizeProperty(cell)
			}
		}
		if dateIdx >= 0 && dateIdx < len(parts) {
			// Malformed dates are dropped, not rejected.
			if cell := strings.TrimSpace(parts[dateIdx]); isoDatePattern.MatchString(cell) {
				row.Date = cell
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// EncodeCSV is the inverse of DecodeCSV. Optional columns are emitted only
// when any row in the collection carries the field; rows missing a field that
// is present elsewhere get an empty cell.
func EncodeCSV(rows []TopProblem) string {
	hasLead, hasProp, hasDate := false, false, false
	for _, r := range rows {
		hasLead = hasLead || r.LeadTime != nil
		hasProp = hasProp || r.Property != ""
		hasDate = hasDate || r.Date != ""
	}

	var b strings.Builder
	b.WriteString("Channel,Rate Plan,Commission,Revenue,Cancel Rate")
	if hasLead {
		b.WriteString(",Lead Time")
	}
	if hasProp {
		b.WriteString(",Property")
	}
	if hasDate {
		b.WriteString(",Date")
	}

	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(r.Channel)
		b.WriteByte(',')
		b.WriteString(r.RatePlan)
		b.WriteByte(',')
		b.WriteString(formatNumber(r.Commission))
		b.WriteByte(',')
		b.WriteString(formatNumber(r.Revenue))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r.CancelRate*100, 'f', 2, 64))
		if hasLead {
			b.WriteByte(',')
			if r.LeadTime != nil {
				b.WriteString(formatNumber(*r.LeadTime))
			}
		}
		if hasProp {
			b.WriteByte(',')
			b.WriteString(r.Property)
		}
		if hasDate {
			b.WriteByte(',')
			b.WriteString(r.Date)
		}
	}

	return b.String()
}

// formatNumber renders a float with the shortest exact representation, so
// "12621" round-trips as "12621" rather than "12621.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
