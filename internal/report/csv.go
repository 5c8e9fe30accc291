// Package report serializes batches of docket records: a CSV of one row per
// record and a human-readable daily summary message.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pbfscan/docketscan/internal/docket"
)

// Header is the fixed CSV column set. Every record writes every column;
// absent values are empty strings, so the schema is stable across batches.
var Header = []string{
	"docket_no",
	"dob",
	"zip",
	"sex",
	"race",
	"arrest_dt",
	"case_status",
	"arresting_officer",
	"attorney",
	"attorney_type",
	"prelim_hearing_dt",
	"prelim_hearing_time",
	"offenses",
	"statutes",
	"offense_dates",
	"offense_types",
	"bail_type",
	"bail_status",
	"bail_amount",
	"bail_paid",
	"bail_date",
	"magistrate",
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []*docket.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(r *docket.Record) []string {
	var descriptions, statutes, dates, types []string
	for _, c := range r.Charges {
		descriptions = append(descriptions, c.Description)
		statutes = append(statutes, c.Statute)
		dates = append(dates, c.OffenseDate)
		types = append(types, c.OffenseType)
	}

	var bailType, bailAmount, bailDate, bailPaid string
	if current, ok := r.CurrentBail(); ok {
		bailType = current.Type
		bailDate = current.RawDate
		if current.Amount != 0 {
			bailAmount = fmt.Sprintf("%.2f", current.Amount)
		}
	}
	if r.Bail.FirstPosted != nil {
		bailPaid = fmt.Sprintf("%.2f", r.Bail.FirstPosted.Amount)
	}

	return []string{
		r.DocketNumber,
		r.DOB,
		r.Zip,
		r.Sex,
		r.Race,
		r.ArrestDate,
		r.CaseStatus,
		r.ArrestingOfficer,
		r.Attorney,
		r.AttorneyType,
		r.PrelimHearingDate,
		r.PrelimHearingTime,
		strings.Join(descriptions, "; "),
		strings.Join(statutes, "; "),
		strings.Join(dates, "; "),
		strings.Join(types, "; "),
		bailType,
		r.BailStatus(),
		bailAmount,
		bailPaid,
		bailDate,
		r.Magistrate,
	}
}
