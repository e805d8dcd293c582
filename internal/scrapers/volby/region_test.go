package volby

import (
	"bytes"
	"testing"
	"volby-scraper/internal/scrapers/volby/volbytest"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const regionLink = "https://www.volby.cz/pls/ps2017nss/ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101"

func fixtureDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(volbytest.Fixture(t, name)))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestBaseLink(t *testing.T) {
	testCases := []struct {
		link     string
		expected string
	}{
		{link: regionLink, expected: "https://www.volby.cz/pls/ps2017nss"},
		{link: "https://www.volby.cz/pls/ps2017nss/ps32", expected: "https://www.volby.cz/pls/ps2017nss"},
		{link: "http://127.0.0.1:4000/pls/ps2017nss/ps32?x=1", expected: "http://127.0.0.1:4000/pls/ps2017nss"},
		{link: "https://www.volby.cz/pls", expected: "https://www.volby.cz/pls"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, BaseLink(test.link), test.link)
	}
}

func TestParseRegion(t *testing.T) {
	municipalities, err := ParseRegion(fixtureDoc(t, "region.html"), regionLink)
	require.NoError(t, err)

	expected := []Municipality{
		{
			Code: "529303",
			Name: "Benešov",
			Link: "https://www.volby.cz/pls/ps2017nss/ps311?xjazyk=CZ&xkraj=2&xobec=529303&xvyber=2101",
		},
		{
			Code: "532568",
			Name: "Bernartice",
			Link: "https://www.volby.cz/pls/ps2017nss/ps311?xjazyk=CZ&xkraj=2&xobec=532568&xvyber=2101",
		},
		{
			Code: "530743",
			Name: "Bílkovice",
			Link: "https://www.volby.cz/pls/ps2017nss/ps311?xjazyk=CZ&xkraj=2&xobec=530743&xvyber=2101",
		},
	}
	if diff := cmp.Diff(expected, municipalities); diff != "" {
		t.Fatalf("municipalities mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRegionEmpty(t *testing.T) {
	municipalities, err := ParseRegion(fixtureDoc(t, "region_empty.html"), regionLink)
	require.NoError(t, err)
	require.Empty(t, municipalities)
}

func TestParseRegionMissingAnchor(t *testing.T) {
	_, err := ParseRegion(fixtureDoc(t, "region_missing_anchor.html"), regionLink)
	require.ErrorIs(t, err, ErrMissingAnchor)
	require.Contains(t, err.Error(), "529303")
}
