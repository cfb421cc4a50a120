// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cratedig/cratedig/internal/services"
)

// MockCatalog is a counting test double for [services.CatalogFetcher].
//
// Fixtures are looked up by id; a fetch for an id with no fixture
// returns an error, which doubles as per-id failure injection. Calls
// records how many fetches each method performed.
type MockCatalog struct {
	Artists   map[string]*services.CatalogArtist
	Tracks    map[string]*services.CatalogTrack
	Playlists map[string]*services.CatalogPlaylist
	Related   map[string][]services.CatalogArtist
	Featured  []services.CatalogPlaylist
	Results   []services.SearchResult
	Calls     map[string]int
	Err       error // returned by every method when set
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		Artists:   map[string]*services.CatalogArtist{},
		Tracks:    map[string]*services.CatalogTrack{},
		Playlists: map[string]*services.CatalogPlaylist{},
		Related:   map[string][]services.CatalogArtist{},
		Calls:     map[string]int{},
	}
}

// TotalCalls sums the per-method fetch counters.
func (m *MockCatalog) TotalCalls() int {
	total := 0
	for _, n := range m.Calls {
		total += n
	}
	return total
}

func (m *MockCatalog) FetchArtist(ctx context.Context, id string) (*services.CatalogArtist, error) {
	m.Calls["FetchArtist"]++
	if m.Err != nil {
		return nil, m.Err
	}
	artist, ok := m.Artists[id]
	if !ok {
		return nil, fmt.Errorf("mock catalog: no artist %s", id)
	}
	return artist, nil
}

func (m *MockCatalog) FetchTrack(ctx context.Context, id string) (*services.CatalogTrack, error) {
	m.Calls["FetchTrack"]++
	if m.Err != nil {
		return nil, m.Err
	}
	track, ok := m.Tracks[id]
	if !ok {
		return nil, fmt.Errorf("mock catalog: no track %s", id)
	}
	return track, nil
}

func (m *MockCatalog) FetchPlaylist(ctx context.Context, id string) (*services.CatalogPlaylist, error) {
	m.Calls["FetchPlaylist"]++
	if m.Err != nil {
		return nil, m.Err
	}
	playlist, ok := m.Playlists[id]
	if !ok {
		return nil, fmt.Errorf("mock catalog: no playlist %s", id)
	}
	return playlist, nil
}

func (m *MockCatalog) FetchRelatedArtists(ctx context.Context, id string) ([]services.CatalogArtist, error) {
	m.Calls["FetchRelatedArtists"]++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Related[id], nil
}

func (m *MockCatalog) FetchFeaturedPlaylists(ctx context.Context) ([]services.CatalogPlaylist, error) {
	m.Calls["FetchFeaturedPlaylists"]++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Featured, nil
}

func (m *MockCatalog) Search(ctx context.Context, keyword, kind string) ([]services.SearchResult, error) {
	m.Calls["Search"]++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

func (m *MockCatalog) Name() string { return "mock-catalog" }

// MockSocial is a counting test double for [services.SocialFetcher].
type MockSocial struct {
	Statuses []services.SocialStatus
	Queries  []string // queries received, in order
	Calls    int
	Err      error
}

func (m *MockSocial) SearchPosts(ctx context.Context, query string, limit int) ([]services.SocialStatus, error) {
	m.Calls++
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && limit < len(m.Statuses) {
		return m.Statuses[:limit], nil
	}
	return m.Statuses, nil
}

func (m *MockSocial) Name() string { return "mock-social" }

var (
	_ services.CatalogFetcher = (*MockCatalog)(nil)
	_ services.SocialFetcher  = (*MockSocial)(nil)
)

// FWriter simulates a failing writer
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// RecordingRoundTripper captures the requests it serves.
type RecordingRoundTripper struct {
	Requests []*http.Request
	Response *http.Response
	Err      error
}

func (r *RecordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r.Requests = append(r.Requests, req)
	return r.Response, r.Err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
