// Package volbytest serves recorded pages of the results site over httptest.
package volbytest

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"
)

//go:embed testdata/*.html
var testdata embed.FS

const RegionPath = "/pls/ps2017nss/ps32"

// Fixture returns the contents of testdata/<name>.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	contents, err := testdata.ReadFile(path.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return contents
}

// Site imitates www.volby.cz, region pages are served from RegionFixture and
// municipality pages from municipality_<xobec>.html.
type Site struct {
	Server *httptest.Server

	mutex         sync.Mutex
	regionFixture string
	status        map[string]int
	requests      []string
}

func NewSite(t testing.TB) *Site {
	s := &Site{
		regionFixture: "region.html",
		status:        map[string]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Server.Close)
	return s
}

// RegionLink is the link of the region page, in the same shape as the real one.
func (s *Site) RegionLink() string {
	return s.Server.URL + RegionPath + "?xjazyk=CZ&xkraj=2&xnumnuts=2101"
}

// LinkPrefix is what region links of this site start with.
func (s *Site) LinkPrefix() string {
	return s.Server.URL + RegionPath
}

func (s *Site) SetRegionFixture(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.regionFixture = name
}

// SetStatus makes requests whose path ends with `suffix` (ex. "ps32" or
// "xobec=529303") answer with `status`.
func (s *Site) SetStatus(suffix string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.status[suffix] = status
}

// Requests returns the request URIs received so far, in order.
func (s *Site) Requests() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Site) handle(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	s.requests = append(s.requests, r.URL.RequestURI())
	regionFixture := s.regionFixture
	for suffix, status := range s.status {
		if strings.HasSuffix(r.URL.Path, suffix) || strings.Contains(r.URL.RawQuery, suffix) {
			s.mutex.Unlock()
			http.Error(w, http.StatusText(status), status)
			return
		}
	}
	s.mutex.Unlock()

	var name string
	switch path.Base(r.URL.Path) {
	case "ps32":
		name = regionFixture
	case "ps311":
		name = "municipality_" + r.URL.Query().Get("xobec") + ".html"
	default:
		http.NotFound(w, r)
		return
	}

	contents, err := testdata.ReadFile(path.Join("testdata", name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(contents)
}
