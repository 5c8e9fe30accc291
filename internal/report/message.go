package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pbfscan/docketscan/internal/docket"
)

// tenthNeeded is the deposit share required to post Monetary bail under the
// ten-percent system.
const tenthNeeded = 10

// Message renders the daily bail-statistics summary for a batch of records.
// An empty batch yields an empty message.
func Message(records []*docket.Record) string {
	if len(records) == 0 {
		return ""
	}

	counts := map[string]int{}
	var cash []*docket.Record
	var minDate, maxDate time.Time
	for _, r := range records {
		bailType := ""
		if current, ok := r.CurrentBail(); ok {
			bailType = current.Type
			if !current.Date.IsZero() {
				if minDate.IsZero() || current.Date.Before(minDate) {
					minDate = current.Date
				}
				if current.Date.After(maxDate) {
					maxDate = current.Date
				}
			}
		}
		counts[bailType]++
		if bailType == "Monetary" {
			cash = append(cash, r)
		}
	}

	pct := func(n int) int { return n * 100 / len(records) }
	var sb strings.Builder

	fmt.Fprintf(&sb, "Philadelphia | %s\n", dateRange(minDate, maxDate))
	fmt.Fprintf(&sb, "Total # Cases Arraigned: %d\n\n", len(records))
	fmt.Fprintf(&sb, "Cash bail: %d%% (%d cases)\n", pct(counts["Monetary"]), counts["Monetary"])
	fmt.Fprintf(&sb, "ROR: %d%% (%d cases)\n", pct(counts["ROR"]), counts["ROR"])
	fmt.Fprintf(&sb, "Unsecured: %d%% (%d cases)\n", pct(counts["Unsecured"]), counts["Unsecured"])
	fmt.Fprintf(&sb, "Denied: %d%% (%d cases)\n", pct(counts["Denied"]), counts["Denied"])

	if len(cash) > 0 {
		posted := 0
		defenders := 0
		var amounts []float64
		for _, r := range cash {
			if r.BailStatus() == "Posted" {
				posted++
			}
			if strings.Contains(r.Attorney, "Defender Association") {
				defenders++
			}
			if current, ok := r.CurrentBail(); ok && current.Amount > 0 {
				amounts = append(amounts, current.Amount)
			}
		}
		fmt.Fprintf(&sb, "\nOf the %d cases where bail was set:\n", len(cash))
		fmt.Fprintf(&sb, "-%d were posted\n", posted)
		fmt.Fprintf(&sb, "-in %d%% (%d cases) a public defender was assigned due to indigence\n",
			defenders*100/len(cash), defenders)

		if len(amounts) > 0 {
			minAmt, maxAmt, total := amounts[0], amounts[0], 0.0
			for _, a := range amounts {
				if a < minAmt {
					minAmt = a
				}
				if a > maxAmt {
					maxAmt = a
				}
				total += a
			}
			mean := total / float64(len(amounts))
			fmt.Fprintf(&sb, "\nHighest cash bail: %s (%s needed to post bail)\n", dollars(maxAmt), dollars(maxAmt/tenthNeeded))
			fmt.Fprintf(&sb, "Lowest cash bail: %s (%s needed to post bail)\n", dollars(minAmt), dollars(minAmt/tenthNeeded))
			fmt.Fprintf(&sb, "Average bail issued: %s (%s needed to post bail)\n", dollars(mean), dollars(mean/tenthNeeded))
			fmt.Fprintf(&sb, "Total cash bail issued: %s (%s needed to post bail for all)\n", dollars(total), dollars(total/tenthNeeded))
		}
	}
	return sb.String()
}

func dateRange(minDate, maxDate time.Time) string {
	const layout = "January 02, 2006"
	if minDate.IsZero() {
		return "date unknown"
	}
	if minDate.Equal(maxDate) {
		return minDate.Format(layout)
	}
	return fmt.Sprintf("%s to %s", minDate.Format(layout), maxDate.Format(layout))
}

// dollars formats an amount with thousands separators, e.g. $1,250,000.
func dollars(v float64) string {
	n := int64(v + 0.5)
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}
