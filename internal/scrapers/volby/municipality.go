package volby

import (
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_parse_municipality = "parse-municipality"
)

// headers attributes of the summary cells
const (
	headerRegistered = "sa2"
	headerEnvelopes  = "sa3"
	headerValid      = "sa6"
)

// vote count cells, the party list is split into two sub-tables
const voteSelector = `td[headers="t1sa2 t1sb3"], td[headers="t2sa2 t2sb3"]`

func summaryCell(doc *goquery.Document, header string) (string, error) {
	text, ok := htmlutil.SelectionText(doc.Find(`td[headers="` + header + `"]`))
	if !ok {
		return "", &MissingCellError{Header: header}
	}
	return text, nil
}

// ParseMunicipality reads the statistics of a municipality detail page.
//
// Each party is paired with the vote count found in its own table row, a party
// row without a vote count is skipped with a warning.
func ParseMunicipality(doc *goquery.Document, m Municipality, tel telemetry.API) (Result, error) {
	result := Result{
		Code:     m.Code,
		Location: m.Name,
	}

	var err error
	result.Registered, err = summaryCell(doc, headerRegistered)
	if err != nil {
		return Result{}, err
	}
	result.Envelopes, err = summaryCell(doc, headerEnvelopes)
	if err != nil {
		return Result{}, err
	}
	result.Valid, err = summaryCell(doc, headerValid)
	if err != nil {
		return Result{}, err
	}

	seen := map[string]bool{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		party, ok := htmlutil.SelectionText(row.ChildrenFiltered("td.overflow_name"))
		if !ok || party == "" {
			return
		}
		votes, ok := htmlutil.SelectionText(row.ChildrenFiltered(voteSelector))
		if !ok {
			tel.ReportWarning(report_parse_municipality, "party without vote count", m.Code, party)
			return
		}
		if seen[party] {
			tel.ReportWarning(report_parse_municipality, "duplicate party", m.Code, party)
			return
		}
		seen[party] = true

		result.Parties = append(result.Parties, PartyVotes{
			Party: party,
			Votes: votes,
		})
	})

	return result, nil
}
