package bail

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortsRowsByDate(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	ledger := p.Parse("MC-51-CR-0000001-2020", Columns{
		ActionText:  "Set Increased Decreased",
		Dates:       []string{"01/15/2020", "01/01/2020", "01/10/2020"},
		Types:       []string{"Monetary", "Monetary", "Monetary"},
		Percentages: []string{"10.00%", "10.00%", "10.00%"},
		Amounts:     []string{"$75,000.00", "$25,000.00", "$50,000.00"},
	})

	require.Len(t, ledger.Actions, 3)
	assert.Equal(t, "01/01/2020", ledger.Actions[0].RawDate)
	assert.Equal(t, "01/10/2020", ledger.Actions[1].RawDate)
	assert.Equal(t, "01/15/2020", ledger.Actions[2].RawDate)

	// Value columns follow the sorted row order.
	assert.Equal(t, "Increased", ledger.Actions[0].Action)
	assert.Equal(t, 25000.0, ledger.Actions[0].Amount)
	assert.Equal(t, 75000.0, ledger.Actions[2].Amount)
}

func TestParseActionCountMismatchDiscardsActions(t *testing.T) {
	var buf bytes.Buffer
	p := NewParser(log.New(&buf, "", 0))

	ledger := p.Parse("MC-51-CR-0000002-2020", Columns{
		ActionText:  "Set",
		Dates:       []string{"01/01/2020", "01/10/2020"},
		Types:       []string{"Monetary", "Monetary"},
		Percentages: []string{"10.00%", "10.00%"},
		Amounts:     []string{"$10,000.00", "$20,000.00"},
	})

	require.Len(t, ledger.Actions, 2)
	for _, a := range ledger.Actions {
		assert.Empty(t, a.Action)
	}
	assert.Contains(t, buf.String(), "disagrees")
}

func TestParseDeniedRowsConsumeNoValueSlots(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	// The denied row has no cells in the type, percentage, or amount
	// columns, so those lists are one short.
	ledger := p.Parse("MC-51-CR-0000003-2020", Columns{
		ActionText:  "Denied Set",
		Dates:       []string{"01/01/2020", "01/10/2020"},
		Types:       []string{"Monetary"},
		Percentages: []string{"10.00%"},
		Amounts:     []string{"$30,000.00"},
	})

	require.Len(t, ledger.Actions, 2)
	assert.Equal(t, "Denied", ledger.Actions[0].Type)
	assert.Equal(t, 0.0, ledger.Actions[0].Amount)
	assert.Equal(t, "Monetary", ledger.Actions[1].Type)
	assert.Equal(t, 30000.0, ledger.Actions[1].Amount)
	assert.Equal(t, 10.0, ledger.Actions[1].Percentage)
}

func TestParseFirstPosted(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	ledger := p.Parse("MC-51-CR-0000004-2020", Columns{
		ActionText:    "Set Decreased",
		Dates:         []string{"01/01/2020", "01/10/2020"},
		Types:         []string{"Monetary", "Monetary"},
		Percentages:   []string{"10.00%", "10.00%"},
		Amounts:       []string{"$10,000.00", "$5,000.00"},
		PostingStatus: []string{"Posted"},
		PostingDates:  []string{"01/15/2020"},
	})

	require.NotNil(t, ledger.FirstPosted)
	assert.Equal(t, "01/15/2020", ledger.FirstPosted.RawDate)
	// Priced against the entry in force before the posting date: 10% of the
	// decreased $5,000.
	assert.Equal(t, 500.0, ledger.FirstPosted.Amount)
}

func TestParsePostingWithoutPriorActionSkipped(t *testing.T) {
	var buf bytes.Buffer
	p := NewParser(log.New(&buf, "", 0))

	ledger := p.Parse("MC-51-CR-0000005-2020", Columns{
		ActionText:    "Set",
		Dates:         []string{"02/01/2020"},
		Types:         []string{"Monetary"},
		Percentages:   []string{"10.00%"},
		Amounts:       []string{"$10,000.00"},
		PostingStatus: []string{"Posted"},
		PostingDates:  []string{"01/15/2020"},
	})

	assert.Nil(t, ledger.FirstPosted)
	assert.Contains(t, buf.String(), "no prior bail action")
}

func TestParseNoPostingStatus(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	ledger := p.Parse("MC-51-CR-0000006-2020", Columns{
		ActionText:   "Set",
		Dates:        []string{"01/01/2020"},
		Types:        []string{"Monetary"},
		Percentages:  []string{"10.00%"},
		Amounts:      []string{"$10,000.00"},
		PostingDates: []string{"01/15/2020"},
	})

	assert.Nil(t, ledger.FirstPosted)
}

func TestParseEmptyColumns(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	ledger := p.Parse("MC-51-CR-0000007-2020", Columns{})
	assert.Empty(t, ledger.Actions)
	assert.Nil(t, ledger.FirstPosted)
}

func TestParseDuplicateEntriesWarnOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewParser(log.New(&buf, "", 0))

	ledger := p.Parse("MC-51-CR-0000008-2020", Columns{
		ActionText:  "Set Set",
		Dates:       []string{"01/01/2020", "01/05/2020"},
		Types:       []string{"ROR", "ROR"},
		Percentages: []string{"", ""},
		Amounts:     []string{"", ""},
	})

	require.Len(t, ledger.Actions, 2)
	assert.Contains(t, buf.String(), "duplicate")
}

func TestParseRORCarriesNoAmount(t *testing.T) {
	p := NewParser(log.New(&bytes.Buffer{}, "", 0))

	ledger := p.Parse("MC-51-CR-0000009-2020", Columns{
		ActionText:  "Set",
		Dates:       []string{"01/01/2020"},
		Types:       []string{"ROR"},
		Percentages: []string{""},
		Amounts:     []string{"$50,000.00"},
	})

	require.Len(t, ledger.Actions, 1)
	assert.Equal(t, 0.0, ledger.Actions[0].Amount)
	assert.Equal(t, 100.0, ledger.Actions[0].Percentage)
}

func TestSplitActions(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Set", []string{"Set"}},
		{"Set Increased Decreased", []string{"Set", "Increased", "Decreased"}},
		{"Denied Set", []string{"Denied", "Set"}},
		{"Revoked Reinstated", []string{"Revoked", "Reinstated"}},
		{"", nil},
		{"no keywords here", nil},
	}
	for _, tt := range tests {
		got := splitActions(tt.text)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("splitActions(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in       string
		bailType string
		want     float64
	}{
		{"10.00%", "Monetary", 10.0},
		{"", "Monetary", defaultMonetaryPercentage},
		{"garbage", "Monetary", defaultMonetaryPercentage},
		{"", "ROR", 100.0},
		{"150%", "Unsecured", 100.0},
		{"5", "Unsecured", 5.0},
	}
	for _, tt := range tests {
		if got := parsePercentage(tt.in, tt.bailType); got != tt.want {
			t.Errorf("parsePercentage(%q, %q) = %f, want %f", tt.in, tt.bailType, got, tt.want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$50,000.00", 50000.0},
		{"$1,250,000.00", 1250000.0},
		{"500", 500.0},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		if got := parseMoney(tt.in); got != tt.want {
			t.Errorf("parseMoney(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
