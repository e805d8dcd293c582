package volby

import (
	"fmt"
	"strings"
	"volby-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// BaseLink returns the first five slash separated segments of `link`,
// for https://www.volby.cz/pls/ps2017nss/ps32?... that is
// https://www.volby.cz/pls/ps2017nss.
func BaseLink(link string) string {
	segments := strings.Split(link, "/")
	if len(segments) > 5 {
		segments = segments[:5]
	}
	return strings.Join(segments, "/")
}

// MunicipalityLink resolves the href of a region page row against the
// region page link.
func MunicipalityLink(regionLink, href string) string {
	return BaseLink(regionLink) + "/" + href
}

// ParseRegion lists the municipalities of a region page in page order.
// Only rows with both a "cislo" (code) cell and an "overflow_name" cell count.
func ParseRegion(doc *goquery.Document, regionLink string) ([]Municipality, error) {
	var out []Municipality
	var parseErr error

	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		codeCell := row.ChildrenFiltered("td.cislo").First()
		nameCell := row.ChildrenFiltered("td.overflow_name").First()
		if codeCell.Length() == 0 || nameCell.Length() == 0 {
			return true
		}

		code, _ := htmlutil.SelectionText(codeCell)
		name, _ := htmlutil.SelectionText(nameCell)

		href, ok := htmlutil.FirstHref(codeCell)
		if !ok {
			parseErr = fmt.Errorf("%w: %s (%s)", ErrMissingAnchor, code, name)
			return false
		}

		out = append(out, Municipality{
			Code: code,
			Name: name,
			Link: MunicipalityLink(regionLink, href),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}
