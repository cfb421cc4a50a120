package services_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cratedig/cratedig/internal/services"
	"github.com/cratedig/cratedig/internal/shared"
	internaltesting "github.com/cratedig/cratedig/internal/testing"
)

// jsonResponse builds an [http.Response] with the given status and JSON body
func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// mockedSpotify returns a services.SpotifyService whose HTTP client replays the given response
func mockedSpotify(t *testing.T, resp *http.Response, err error) *services.SpotifyService {
	t.Helper()

	srv, nerr := services.NewSpotifyService("test_client_id", "test_client_secret", 1000)
	if nerr != nil {
		t.Fatalf("failed to create service: %v", nerr)
	}

	srv.SetHTTPClient(&http.Client{Transport: internaltesting.NewMockRoundTripper(resp, err)})
	return srv
}

func TestNewSpotifyService(t *testing.T) {
	t.Run("With Valid Credentials", func(t *testing.T) {
		srv, err := services.NewSpotifyService("test_client_id", "test_client_secret", 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if srv.Name() != "Spotify" {
			t.Errorf("expected service name 'Spotify', got %s", srv.Name())
		}
	})

	t.Run("Missing Client ID", func(t *testing.T) {
		if _, err := services.NewSpotifyService("", "secret", 5); !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("Missing Client Secret", func(t *testing.T) {
		if _, err := services.NewSpotifyService("id", "", 5); !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestSpotifyService(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Authentication", func(t *testing.T) {
		srv, err := services.NewSpotifyService("id", "secret", 5)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		if _, err := srv.FetchArtist(ctx, "A1"); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("FetchArtist", func(t *testing.T) {
		body := `{
			"id": "A1",
			"name": "Night Swimmers",
			"genres": ["art rock", "indie"],
			"followers": {"total": 1200},
			"popularity": 64,
			"external_urls": {"spotify": "https://open.spotify.com/artist/A1"}
		}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		artist, err := srv.FetchArtist(ctx, "A1")
		if err != nil {
			t.Fatalf("failed to fetch artist: %v", err)
		}

		if artist.ID != "A1" || artist.Name != "Night Swimmers" {
			t.Errorf("unexpected artist: %+v", artist)
		}
		if len(artist.Genres) != 2 || artist.Genres[0] != "art rock" {
			t.Errorf("unexpected genres: %v", artist.Genres)
		}
		if artist.Followers.Total != 1200 {
			t.Errorf("expected 1200 followers, got %d", artist.Followers.Total)
		}
		if artist.ExternalURLs.Spotify != "https://open.spotify.com/artist/A1" {
			t.Errorf("unexpected external url: %s", artist.ExternalURLs.Spotify)
		}
	})

	t.Run("FetchTrack", func(t *testing.T) {
		body := `{
			"id": "T1",
			"name": "Undertow",
			"duration_ms": 231000,
			"popularity": 71,
			"external_urls": {"spotify": "https://open.spotify.com/track/T1"},
			"artists": [{"id": "A1", "name": "Night Swimmers"}]
		}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		track, err := srv.FetchTrack(ctx, "T1")
		if err != nil {
			t.Fatalf("failed to fetch track: %v", err)
		}

		if track.DurationMS != 231000 {
			t.Errorf("expected duration 231000, got %d", track.DurationMS)
		}
		if len(track.Artists) != 1 || track.Artists[0].ID != "A1" {
			t.Errorf("unexpected artists: %+v", track.Artists)
		}
	})

	t.Run("FetchFeaturedPlaylists", func(t *testing.T) {
		body := `{
			"playlists": {
				"items": [
					{"id": "P1", "name": "Morning", "owner": {"id": "ed", "display_name": "Ed"}},
					{"id": "P2", "name": "Evening", "owner": {"id": "ed", "display_name": "Ed"}}
				]
			}
		}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		playlists, err := srv.FetchFeaturedPlaylists(ctx)
		if err != nil {
			t.Fatalf("failed to fetch featured playlists: %v", err)
		}

		if len(playlists) != 2 || playlists[0].ID != "P1" || playlists[1].ID != "P2" {
			t.Errorf("unexpected playlists: %+v", playlists)
		}
	})

	t.Run("FetchRelatedArtists", func(t *testing.T) {
		body := `{"artists": [{"id": "A2", "name": "Day Divers"}]}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		artists, err := srv.FetchRelatedArtists(ctx, "A1")
		if err != nil {
			t.Fatalf("failed to fetch related artists: %v", err)
		}

		if len(artists) != 1 || artists[0].ID != "A2" {
			t.Errorf("unexpected artists: %+v", artists)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		srv := mockedSpotify(t, jsonResponse(http.StatusNotFound, `{"error": {"status": 404}}`), nil)

		if _, err := srv.FetchArtist(ctx, "missing"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestSpotifySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Unknown Kind", func(t *testing.T) {
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, `{}`), nil)

		if _, err := srv.Search(ctx, "radiohead", "album"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("Artist Results", func(t *testing.T) {
		body := `{"artists": {"items": [{"id": "A1", "name": "Radiohead", "genres": ["art rock"]}]}}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		results, err := srv.Search(ctx, "radiohead", services.KindArtist)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].Kind != services.KindArtist || results[0].ID != "A1" || results[0].Detail != "art rock" {
			t.Errorf("unexpected result: %+v", results[0])
		}
	})

	t.Run("Track Results Include Artist Names", func(t *testing.T) {
		body := `{"tracks": {"items": [{"id": "T1", "name": "Karma Police", "artists": [{"id": "A1", "name": "Radiohead"}]}]}}`
		srv := mockedSpotify(t, jsonResponse(http.StatusOK, body), nil)

		results, err := srv.Search(ctx, "karma police", services.KindTrack)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if len(results) != 1 || results[0].Detail != "Radiohead" {
			t.Errorf("unexpected results: %+v", results)
		}
	})

	t.Run("Query Is Escaped", func(t *testing.T) {
		rt := &internaltesting.RecordingRoundTripper{Response: jsonResponse(http.StatusOK, `{}`)}
		srv, err := services.NewSpotifyService("id", "secret", 1000)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}
		srv.SetHTTPClient(&http.Client{Transport: rt})

		if _, err := srv.Search(ctx, "exit music (for a film)", services.KindTrack); err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if len(rt.Requests) != 1 {
			t.Fatalf("expected 1 request, got %d", len(rt.Requests))
		}
		raw := rt.Requests[0].URL.RawQuery
		if strings.Contains(raw, " ") || strings.Contains(raw, "(") {
			t.Errorf("query not escaped: %s", raw)
		}
	})
}
