// Spotify Web API implementation of [CatalogFetcher]
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cratedig/cratedig/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyService implements [CatalogFetcher] against the Spotify Web API.
// Uses the OAuth2 client-credentials flow; no user login is involved.
type SpotifyService struct {
	conf       *clientcredentials.Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSpotifyService creates a Spotify catalog client with the given
// application credentials and request rate (requests per second).
func NewSpotifyService(clientID, clientSecret string, rps float64) (*SpotifyService, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: spotify client_id", shared.ErrMissingCredentials)
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_secret", shared.ErrMissingCredentials)
	}
	if rps <= 0 {
		rps = 5
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyService{
		conf:    conf,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Authenticate builds the token-fetching HTTP client. Token refresh is
// handled by the oauth2 transport on every subsequent request.
func (s *SpotifyService) Authenticate(ctx context.Context) error {
	if s.httpClient != nil {
		return nil
	}
	s.httpClient = s.conf.Client(ctx)
	return nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs a rate-limited, authenticated GET against the Spotify API.
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, result any) error {
	if s.httpClient == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter interrupted: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spotifyBaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify API status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FetchArtist retrieves a single artist record by id.
func (s *SpotifyService) FetchArtist(ctx context.Context, id string) (*CatalogArtist, error) {
	var artist CatalogArtist
	if err := s.doRequest(ctx, fmt.Sprintf("/artists/%s", id), &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// FetchTrack retrieves a single track record by id.
func (s *SpotifyService) FetchTrack(ctx context.Context, id string) (*CatalogTrack, error) {
	var track CatalogTrack
	if err := s.doRequest(ctx, fmt.Sprintf("/tracks/%s", id), &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// FetchPlaylist retrieves a single playlist record by id.
func (s *SpotifyService) FetchPlaylist(ctx context.Context, id string) (*CatalogPlaylist, error) {
	var playlist CatalogPlaylist
	if err := s.doRequest(ctx, fmt.Sprintf("/playlists/%s", id), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// FetchRelatedArtists retrieves the artists related to the given artist id.
func (s *SpotifyService) FetchRelatedArtists(ctx context.Context, id string) ([]CatalogArtist, error) {
	var response struct {
		Artists []CatalogArtist `json:"artists"`
	}
	if err := s.doRequest(ctx, fmt.Sprintf("/artists/%s/related-artists", id), &response); err != nil {
		return nil, err
	}
	return response.Artists, nil
}

// FetchFeaturedPlaylists retrieves the catalog's current featured playlists.
func (s *SpotifyService) FetchFeaturedPlaylists(ctx context.Context) ([]CatalogPlaylist, error) {
	var response struct {
		Playlists struct {
			Items []CatalogPlaylist `json:"items"`
		} `json:"playlists"`
	}
	if err := s.doRequest(ctx, "/browse/featured-playlists", &response); err != nil {
		return nil, err
	}
	return response.Playlists.Items, nil
}

// Search runs a keyword search of the given kind.
func (s *SpotifyService) Search(ctx context.Context, keyword, kind string) ([]SearchResult, error) {
	switch kind {
	case KindArtist, KindTrack, KindPlaylist:
	default:
		return nil, fmt.Errorf("%w: unknown search kind %q", shared.ErrInvalidArgument, kind)
	}

	endpoint := fmt.Sprintf("/search?q=%s&type=%s", url.QueryEscape(keyword), kind)

	var response struct {
		Artists struct {
			Items []CatalogArtist `json:"items"`
		} `json:"artists"`
		Tracks struct {
			Items []CatalogTrack `json:"items"`
		} `json:"tracks"`
		Playlists struct {
			Items []CatalogPlaylist `json:"items"`
		} `json:"playlists"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	var results []SearchResult
	switch kind {
	case KindArtist:
		for _, item := range response.Artists.Items {
			results = append(results, SearchResult{
				Kind:   KindArtist,
				ID:     item.ID,
				Name:   item.Name,
				Detail: strings.Join(item.Genres, ", "),
			})
		}
	case KindTrack:
		for _, item := range response.Tracks.Items {
			names := make([]string, 0, len(item.Artists))
			for _, a := range item.Artists {
				names = append(names, a.Name)
			}
			results = append(results, SearchResult{
				Kind:   KindTrack,
				ID:     item.ID,
				Name:   item.Name,
				Detail: strings.Join(names, ", "),
			})
		}
	case KindPlaylist:
		for _, item := range response.Playlists.Items {
			results = append(results, SearchResult{
				Kind:   KindPlaylist,
				ID:     item.ID,
				Name:   item.Name,
				Detail: item.Owner.DisplayName,
			})
		}
	}

	return results, nil
}

var _ CatalogFetcher = (*SpotifyService)(nil)
