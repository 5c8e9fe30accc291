package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbfscan/docketscan/internal/bail"
	"github.com/pbfscan/docketscan/internal/docket"
)

func monetaryRecord(docketNo string, amount float64, date string) *docket.Record {
	parsed, _ := time.Parse("01/02/2006", date)
	r := &docket.Record{}
	r.DocketNumber = docketNo
	r.Bail = bail.Ledger{
		Actions: []bail.Action{{
			Action:     "Set",
			Date:       parsed,
			RawDate:    date,
			Type:       "Monetary",
			Percentage: 10,
			Amount:     amount,
		}},
	}
	return r
}

func TestWriteCSV(t *testing.T) {
	rec := monetaryRecord("MC-51-CR-0001234-2020", 50000, "06/01/2020")
	rec.Attorney = "Defender Association of Philadelphia"
	rec.Charges = []docket.Charge{
		{Description: "Simple Assault", Statute: "18 § 2701", OffenseDate: "05/30/2020", OffenseType: "M2"},
		{Description: "REAP", Statute: "18 § 2705", OffenseDate: "05/30/2020", OffenseType: "M2"},
	}
	rec.Bail.FirstPosted = &bail.PostedEvent{RawDate: "06/02/2020", Amount: 5000}
	rec.Magistrate = "Arraignment Court Magistrate Rainey"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*docket.Record{rec}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])

	row := rows[1]
	byColumn := map[string]string{}
	for i, name := range Header {
		byColumn[name] = row[i]
	}
	assert.Equal(t, "MC-51-CR-0001234-2020", byColumn["docket_no"])
	assert.Equal(t, "Simple Assault; REAP", byColumn["offenses"])
	assert.Equal(t, "18 § 2701; 18 § 2705", byColumn["statutes"])
	assert.Equal(t, "Monetary", byColumn["bail_type"])
	assert.Equal(t, "Posted", byColumn["bail_status"])
	assert.Equal(t, "50000.00", byColumn["bail_amount"])
	assert.Equal(t, "5000.00", byColumn["bail_paid"])
	assert.Equal(t, "06/01/2020", byColumn["bail_date"])
	assert.Equal(t, "Arraignment Court Magistrate Rainey", byColumn["magistrate"])
}

func TestWriteCSVEmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*docket.Record{{}}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[1], len(Header))
	for _, cell := range rows[1] {
		assert.Empty(t, cell)
	}
}

func TestMessage(t *testing.T) {
	posted := monetaryRecord("MC-51-CR-0000001-2020", 100000, "06/01/2020")
	posted.Attorney = "Defender Association of Philadelphia"
	posted.Bail.FirstPosted = &bail.PostedEvent{RawDate: "06/02/2020", Amount: 10000}

	unposted := monetaryRecord("MC-51-CR-0000002-2020", 50000, "06/02/2020")

	ror := &docket.Record{}
	ror.Bail = bail.Ledger{Actions: []bail.Action{{Action: "Set", Type: "ROR", RawDate: "06/01/2020"}}}

	denied := &docket.Record{}
	denied.Bail = bail.Ledger{Actions: []bail.Action{{Action: "Denied", Type: "Denied", RawDate: "06/01/2020"}}}

	msg := Message([]*docket.Record{posted, unposted, ror, denied})

	assert.Contains(t, msg, "Philadelphia | June 01, 2020 to June 02, 2020")
	assert.Contains(t, msg, "Total # Cases Arraigned: 4")
	assert.Contains(t, msg, "Cash bail: 50% (2 cases)")
	assert.Contains(t, msg, "ROR: 25% (1 cases)")
	assert.Contains(t, msg, "Denied: 25% (1 cases)")
	assert.Contains(t, msg, "Of the 2 cases where bail was set:")
	assert.Contains(t, msg, "-1 were posted")
	assert.Contains(t, msg, "a public defender was assigned due to indigence")
	assert.Contains(t, msg, "Highest cash bail: $100,000 ($10,000 needed to post bail)")
	assert.Contains(t, msg, "Lowest cash bail: $50,000 ($5,000 needed to post bail)")
	assert.Contains(t, msg, "Average bail issued: $75,000 ($7,500 needed to post bail)")
	assert.Contains(t, msg, "Total cash bail issued: $150,000 ($15,000 needed to post bail for all)")
}

func TestMessageEmptyBatch(t *testing.T) {
	assert.Empty(t, Message(nil))
}

func TestDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{1500, "$1,500"},
		{1250000, "$1,250,000"},
	}
	for _, tt := range tests {
		if got := dollars(tt.in); got != tt.want {
			t.Errorf("dollars(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateRange(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("01/02/2006", s)
		return d
	}

	if got := dateRange(day("06/01/2020"), day("06/01/2020")); got != "June 01, 2020" {
		t.Errorf("Single-day range = %q", got)
	}
	if got := dateRange(time.Time{}, time.Time{}); got != "date unknown" {
		t.Errorf("Zero range = %q", got)
	}
	if !strings.Contains(dateRange(day("06/01/2020"), day("06/03/2020")), "to") {
		t.Error("Multi-day range should join with 'to'")
	}
}
