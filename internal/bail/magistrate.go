package bail

import "strings"

// NoMagistrateFound is the sentinel returned when no docket entry records a
// bail-setting decision.
const NoMagistrateFound = "No Magistrate Found"

// EntryRow is one reconstructed row of the docket-entries table: the filer
// name column and the adjacent entry-description column.
type EntryRow struct {
	Filer       string
	Description string
}

// Phrases in the entry description that mark a bail-setting decision.
var bailDecisionPhrases = []string{
	"Bail Set",
	"Bail Denied",
	"Order Denying Motion to Set Bail",
}

// ResolveMagistrate walks entry rows in chronological order (earliest first,
// as printed) and returns the filer of the first bail-setting decision.
// Rows mentioning "Posted" are posting events, not decisions, and are
// skipped even when they also mention bail being set. Later bail
// modifications never overwrite the first match.
func ResolveMagistrate(rows []EntryRow) string {
	for _, row := range rows {
		if strings.Contains(row.Description, "Posted") {
			continue
		}
		for _, phrase := range bailDecisionPhrases {
			if strings.Contains(row.Description, phrase) {
				if filer := strings.TrimSpace(row.Filer); filer != "" {
					return filer
				}
			}
		}
	}
	return NoMagistrateFound
}
