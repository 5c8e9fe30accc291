package docket

import "github.com/pbfscan/docketscan/internal/bail"

// Record is the assembled output for one docket document. The field set is
// fixed: failed extractions leave empty values, never missing ones, so the
// output schema is stable across documents. A Record is never mutated after
// assembly.
type Record struct {
	FlatFields

	// Geometry-extracted fields.
	Zip        string
	Charges    []Charge
	Bail       bail.Ledger
	Magistrate string

	// Merged from the companion court summary, keyed by docket number.
	Sex  string
	Race string

	// SourcePath is the file the record was extracted from.
	SourcePath string
}

// CurrentBail returns the ledger entry in force: the latest action by date.
func (r *Record) CurrentBail() (bail.Action, bool) {
	if len(r.Bail.Actions) == 0 {
		return bail.Action{}, false
	}
	return r.Bail.Actions[len(r.Bail.Actions)-1], true
}

// BailStatus summarizes the ledger for reporting: "Posted" when bail was
// posted, "Denied" when the entry in force is a denial, "Set" otherwise.
func (r *Record) BailStatus() string {
	if r.Bail.FirstPosted != nil {
		return "Posted"
	}
	current, ok := r.CurrentBail()
	if !ok {
		return ""
	}
	if current.Type == "Denied" {
		return "Denied"
	}
	return "Set"
}
