package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under `node` in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText trims surrounding whitespace and collapses runs of ASCII
// whitespace into one space. Non-breaking spaces used as thousands
// separators are left alone.
func CleanText(s string) string {
	s = strings.Trim(s, " \t\r\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// SelectionText returns the cleaned text of the first node in `sel`, ok is
// false when `sel` is empty.
func SelectionText(sel *goquery.Selection) (text string, ok bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return CleanText(GetText(sel.Get(0))), true
}

// FirstHref returns the href of the first anchor under (or at) `sel`.
func FirstHref(sel *goquery.Selection) (string, bool) {
	anchor := sel.Filter("a")
	if anchor.Length() == 0 {
		anchor = sel.Find("a[href]")
	}
	href, ok := anchor.First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", false
	}
	return strings.TrimSpace(href), true
}
