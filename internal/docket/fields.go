package docket

import (
	"regexp"
	"strings"
)

// Flat labeled fields are pulled by regex from named sections of the
// normalized text. Go's regexp has no lookaround, so the original
// conventions are expressed with capture groups instead.
var (
	docketNumberPattern = regexp.MustCompile(`MC-\d{2}-CR-\d{7}-\d{4}`)
	dobPattern          = regexp.MustCompile(`Date Of Birth:(.*?)City`)
	arrestDatePattern   = regexp.MustCompile(`Arrest Date:\s*(.*?\d{2}/\d{2}/\d{4})`)
	caseStatusPattern   = regexp.MustCompile(`Case Status:(.*?)Arrest`)
	officerPattern      = regexp.MustCompile(`Arresting Officer :(.*?)Complaint/Incident`)
	attorneyPattern     = regexp.MustCompile(`ATTORNEY INFORMATION\s*Name:\s*(.*?)(\d|Supreme)`)
	attorneyTypePattern = regexp.MustCompile(`(Public|Private|Court Appointed)`)
	prelimBlockPattern  = regexp.MustCompile(`Calendar Event Type\s*(.*?)Scheduled`)
	datePattern         = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	timePattern         = regexp.MustCompile(`(1[0-2]|0?[1-9]):[0-5][0-9] ?[AaPp][Mm]`)
)

// FlatFields is the regex-extractable half of a record.
type FlatFields struct {
	DocketNumber      string
	DOB               string
	ArrestDate        string
	CaseStatus        string
	ArrestingOfficer  string
	Attorney          string
	AttorneyType      string
	PrelimHearingDate string
	PrelimHearingTime string
}

// FieldWarning names a flat field that could not be extracted.
type FieldWarning struct {
	Field string
}

// ExtractFlatFields pulls the flat labeled fields from the normalized
// document text and its sections. Each field that fails stays empty and is
// reported as a warning; a flat-field miss never fails the record.
func ExtractFlatFields(text string, sections map[string]string) (FlatFields, []FieldWarning) {
	var ff FlatFields
	var warnings []FieldWarning

	miss := func(name string) {
		warnings = append(warnings, FieldWarning{Field: name})
	}

	if m := docketNumberPattern.FindString(text); m != "" {
		ff.DocketNumber = m
	} else {
		miss("docket_no")
	}
	if m := dobPattern.FindStringSubmatch(sections["defendant"]); m != nil {
		ff.DOB = strings.TrimSpace(m[1])
	} else {
		miss("dob")
	}
	if m := arrestDatePattern.FindStringSubmatch(sections["status"]); m != nil {
		ff.ArrestDate = strings.TrimSpace(m[1])
	} else {
		miss("arrest_dt")
	}
	if m := caseStatusPattern.FindStringSubmatch(sections["status"]); m != nil {
		ff.CaseStatus = strings.TrimSpace(m[1])
	} else {
		miss("case_status")
	}
	if m := officerPattern.FindStringSubmatch(sections["caseinfo"]); m != nil {
		ff.ArrestingOfficer = strings.TrimSpace(m[1])
	} else {
		miss("arresting_officer")
	}

	ff.Attorney, ff.AttorneyType = extractAttorney(sections["contactinfo"])
	if ff.Attorney == "" {
		miss("attorney")
	}

	ff.PrelimHearingDate, ff.PrelimHearingTime = extractPrelim(sections["calendar"])
	if ff.PrelimHearingDate == "" {
		miss("prelim_hearing_dt")
	}
	if ff.PrelimHearingTime == "" {
		miss("prelim_hearing_time")
	}

	return ff, warnings
}

// extractAttorney splits the contact-information attorney blob into a name
// and a representation type (Public, Private, Court Appointed).
func extractAttorney(contactinfo string) (name, attyType string) {
	m := attorneyPattern.FindStringSubmatch(contactinfo)
	if m == nil {
		return "", ""
	}
	blob := m[1]
	if t := attorneyTypePattern.FindString(blob); t != "" {
		attyType = t
		blob = strings.SplitN(blob, t, 2)[0]
	}
	return strings.TrimSpace(blob), attyType
}

// extractPrelim reads the first scheduled calendar event's date and time.
func extractPrelim(calendar string) (date, clock string) {
	m := prelimBlockPattern.FindStringSubmatch(calendar)
	if m == nil {
		return "", ""
	}
	date = datePattern.FindString(m[1])
	clock = timePattern.FindString(m[1])
	return date, clock
}
