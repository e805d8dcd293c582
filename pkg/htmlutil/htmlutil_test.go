package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Benešov", CleanText("\n  Benešov \t"))
	require.Equal(t, "Nová Ves", CleanText("Nová \n   Ves"))
	require.Equal(t, "1 234", CleanText(" 1 234\n"))
}

func TestSelectionText(t *testing.T) {
	doc := parse(t, `<table><tr><td class="cislo"><a href="x">529303</a></td></tr></table>`)

	text, ok := SelectionText(doc.Find("td.cislo"))
	require.True(t, ok)
	require.Equal(t, "529303", text)

	_, ok = SelectionText(doc.Find("td.missing"))
	require.False(t, ok)
}

func TestFirstHref(t *testing.T) {
	doc := parse(t, `<table><tr>
		<td class="cislo"><a href=" ps311?xobec=529303 ">529303</a></td>
		<td class="plain">nothing</td>
		<td class="empty"><a href="">x</a></td>
	</tr></table>`)

	href, ok := FirstHref(doc.Find("td.cislo"))
	require.True(t, ok)
	require.Equal(t, "ps311?xobec=529303", href)

	href, ok = FirstHref(doc.Find("td.cislo a"))
	require.True(t, ok)
	require.Equal(t, "ps311?xobec=529303", href)

	_, ok = FirstHref(doc.Find("td.plain"))
	require.False(t, ok)
	_, ok = FirstHref(doc.Find("td.empty"))
	require.False(t, ok)
}
