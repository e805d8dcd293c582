package volby

import (
	"volby-scraper/internal/results"
)

// field names of every result record, in output order.
const (
	FieldCode       = "code"
	FieldLocation   = "location"
	FieldRegistered = "registered"
	FieldEnvelopes  = "envelopes"
	FieldValid      = "valid"
)

var FixedFields = []string{
	FieldCode,
	FieldLocation,
	FieldRegistered,
	FieldEnvelopes,
	FieldValid,
}

// Municipality is one row of a region page.
type Municipality struct {
	Code string
	Name string
	// absolute link to the municipality detail page
	Link string
}

type PartyVotes struct {
	Party string
	Votes string
}

// Result holds the statistics of one municipality. Counts are kept exactly as
// the site prints them, thousands separators included.
type Result struct {
	Code       string
	Location   string
	Registered string
	Envelopes  string
	Valid      string
	// parties in the order they appear on the municipality page
	Parties []PartyVotes
}

// Record flattens the result into an ordered record, fixed fields first.
func (r Result) Record() results.Record {
	rec := results.NewRecord()
	rec.Set(FieldCode, r.Code)
	rec.Set(FieldLocation, r.Location)
	rec.Set(FieldRegistered, r.Registered)
	rec.Set(FieldEnvelopes, r.Envelopes)
	rec.Set(FieldValid, r.Valid)
	for _, p := range r.Parties {
		rec.Set(p.Party, p.Votes)
	}
	return rec
}

func Records(list []Result) []results.Record {
	out := make([]results.Record, len(list))
	for i, r := range list {
		out[i] = r.Record()
	}
	return out
}
