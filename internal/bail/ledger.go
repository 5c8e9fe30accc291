// Package bail turns independently extracted bail-table columns into a
// chronologically coherent ledger of bail actions.
package bail

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "01/02/2006"

// Action kinds recognized in the bail-action column.
const (
	ActionSet        = "Set"
	ActionDenied     = "Denied"
	ActionChanged    = "Changed"
	ActionIncreased  = "Increased"
	ActionDecreased  = "Decreased"
	ActionRevoked    = "Revoked"
	ActionReinstated = "Reinstated"
)

// Bail types that carry a dollar amount. Everything else (ROR, Denied, ...)
// has no amount concept and records 0.
var amountBearingTypes = map[string]bool{
	"Monetary":  true,
	"Unsecured": true,
	"Nominal":   true,
}

// defaultMonetaryPercentage is the deposit percentage assumed for Monetary
// bail when the column value does not parse. Philadelphia operates a 10%
// deposit system.
const defaultMonetaryPercentage = 10.0

// actionKeyword splits the action column text into one token per action.
// The column reads as a single run of text; keyword occurrences are the only
// reliable row delimiters.
var actionKeyword = regexp.MustCompile(`Denied|Deny|Set|Changed|Change|Increased|Increase|Decreased|Decrease|Revoked|Revoke|Reinstated|Reinstate`)

// Action is one row of the bail ledger.
type Action struct {
	Action     string
	Date       time.Time
	RawDate    string
	Type       string
	Percentage float64
	Amount     float64
}

// sameFields reports field-for-field equality ignoring the date.
func (a Action) sameFields(b Action) bool {
	return a.Action == b.Action && a.Type == b.Type && a.Percentage == b.Percentage && a.Amount == b.Amount
}

// PostedEvent records a bail posting: the date bail was posted and the
// deposit amount due under the ledger entry in force at that date.
type PostedEvent struct {
	Date    time.Time
	RawDate string
	Amount  float64
}

// Ledger is the parsed bail history of one docket, sorted by date ascending.
type Ledger struct {
	Actions     []Action
	FirstPosted *PostedEvent
}

// Columns are the five independently extracted bail-table column blocks plus
// the posting-status column. The lists are line-broken column reads whose
// lengths may disagree when a column read misfires; the parser reconciles
// them rather than trusting alignment.
type Columns struct {
	ActionText    string
	Dates         []string
	Types         []string
	Percentages   []string
	Amounts       []string
	PostingStatus []string
	PostingDates  []string
}

// Parser assembles Columns into a Ledger.
type Parser struct {
	logger *log.Logger
}

// NewParser returns a ledger parser. A nil logger means the process default.
func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// Parse builds the ledger for one docket. docketID is used only in warnings.
//
// The action column is split on the action keyword set. If the resulting
// count disagrees with the date count, every action field is left empty:
// a length mismatch means the column split failed, and partially aligned
// data is worse than none. Value columns are consumed in printed order with
// denied rows skipping their slots, rows are then sorted by date ascending
// (stable, so printed order breaks ties), and postings are resolved against
// the entry in force before each posting date.
func (p *Parser) Parse(docketID string, cols Columns) Ledger {
	n := len(cols.Dates)
	if n == 0 {
		return Ledger{}
	}

	actions := splitActions(cols.ActionText)
	if len(actions) != n {
		if cols.ActionText != "" {
			p.logger.Printf("warning: %s: bail action count %d disagrees with date count %d, discarding action parse", docketID, len(actions), n)
		}
		actions = make([]string, n)
	}

	rows := make([]Action, n)
	for i := 0; i < n; i++ {
		raw := strings.TrimSpace(cols.Dates[i])
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			p.logger.Printf("warning: %s: unparseable bail date %q", docketID, raw)
		}
		rows[i] = Action{Action: actions[i], Date: date, RawDate: raw}
	}

	// Value columns are consumed in printed order, before the date sort:
	// denied rows have no type, percentage, or amount cells in the source
	// table, so the column reads skip them; every denied row consumed so far
	// shifts the value-column index back by one.
	denied := 0
	for i := range rows {
		if isDenied(rows[i].Action) {
			rows[i].Type = "Denied"
			denied++
			continue
		}
		slot := i - denied
		rows[i].Type = listAt(cols.Types, slot)
		rows[i].Percentage = parsePercentage(listAt(cols.Percentages, slot), rows[i].Type)
		if amountBearingTypes[rows[i].Type] {
			rows[i].Amount = parseMoney(listAt(cols.Amounts, slot))
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	ledger := Ledger{Actions: rows}
	ledger.FirstPosted = p.resolveFirstPosted(docketID, rows, cols)

	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[i].sameFields(rows[j]) {
				p.logger.Printf("warning: %s: duplicate bail ledger entries at rows %d and %d", docketID, i+1, j+1)
			}
		}
	}
	return ledger
}

// resolveFirstPosted finds the earliest posting and prices it against the
// most recent ledger entry strictly before the posting date. A posting with
// no prior entry is a data error, reported and skipped rather than priced at
// some default.
func (p *Parser) resolveFirstPosted(docketID string, rows []Action, cols Columns) *PostedEvent {
	if !containsPosted(cols.PostingStatus) {
		return nil
	}
	var first *PostedEvent
	seen := make(map[string]bool)
	for _, raw := range cols.PostingDates {
		raw = strings.TrimSpace(raw)
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		posted, err := time.Parse(dateLayout, raw)
		if err != nil {
			p.logger.Printf("warning: %s: unparseable bail posting date %q", docketID, raw)
			continue
		}
		var prior *Action
		for i := range rows {
			if rows[i].Date.Before(posted) {
				prior = &rows[i]
			}
		}
		if prior == nil {
			p.logger.Printf("warning: %s: bail posted %s with no prior bail action", docketID, raw)
			continue
		}
		event := &PostedEvent{Date: posted, RawDate: raw, Amount: prior.Percentage / 100 * prior.Amount}
		if first == nil || event.Date.Before(first.Date) {
			first = event
		}
	}
	return first
}

// splitActions cuts the action column text into one token per keyword
// occurrence, each keeping its trailing text up to the next keyword.
func splitActions(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	locs := actionKeyword.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	actions := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		actions = append(actions, strings.TrimSpace(text[loc[0]:end]))
	}
	return actions
}

func isDenied(action string) bool {
	return strings.Contains(action, "Den")
}

func containsPosted(status []string) bool {
	for _, s := range status {
		if strings.Contains(s, "Posted") {
			return true
		}
	}
	return false
}

func listAt(list []string, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return strings.TrimSpace(list[i])
}

// parsePercentage reads a percentage cell. Monetary bail defaults to the
// deposit percentage when the cell does not parse; types with no percentage
// concept count as 100%.
func parsePercentage(s, bailType string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 || v > 100 {
		if bailType == "Monetary" {
			return defaultMonetaryPercentage
		}
		return 100.0
	}
	return v
}

// parseMoney reads a dollar cell like "$50,000.00".
func parseMoney(s string) float64 {
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// String renders an action for diagnostics.
func (a Action) String() string {
	return fmt.Sprintf("%s %s %s %.1f%% $%.2f", a.RawDate, a.Action, a.Type, a.Percentage, a.Amount)
}
