// Twitter v1.1 search implementation of [SocialFetcher]
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cratedig/cratedig/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	twitterTokenURL  = "https://api.twitter.com/oauth2/token"
	twitterBaseURL   = "https://api.twitter.com/1.1"
	defaultPostLimit = 100
)

// TwitterService implements [SocialFetcher] using app-only
// authentication: a bearer token supplied directly, or an api
// key/secret pair exchanged through the OAuth2 client-credentials flow.
type TwitterService struct {
	bearerToken string
	conf        *clientcredentials.Config
	httpClient  *http.Client
}

// NewTwitterService creates a Twitter search client. Either bearerToken
// or both apiKey and apiSecret must be provided.
func NewTwitterService(bearerToken, apiKey, apiSecret string) (*TwitterService, error) {
	if bearerToken == "" && (apiKey == "" || apiSecret == "") {
		return nil, fmt.Errorf("%w: twitter bearer_token or api_key/api_secret", shared.ErrMissingCredentials)
	}

	svc := &TwitterService{bearerToken: bearerToken}
	if bearerToken == "" {
		svc.conf = &clientcredentials.Config{
			ClientID:     apiKey,
			ClientSecret: apiSecret,
			TokenURL:     twitterTokenURL,
		}
	}

	return svc, nil
}

// Authenticate builds the bearer-authenticated HTTP client, exchanging
// the api key/secret for a token when no bearer token was configured.
func (s *TwitterService) Authenticate(ctx context.Context) error {
	if s.httpClient != nil {
		return nil
	}

	if s.bearerToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.bearerToken, TokenType: "Bearer"})
		s.httpClient = oauth2.NewClient(ctx, src)
		return nil
	}

	s.httpClient = s.conf.Client(ctx)
	return nil
}

func (s *TwitterService) Name() string {
	return "Twitter"
}

// SearchPosts retrieves up to limit posts matching the query. The limit
// is clamped to the API maximum of 100 and defaults to it when zero.
func (s *TwitterService) SearchPosts(ctx context.Context, query string, limit int) ([]SocialStatus, error) {
	if s.httpClient == nil {
		return nil, fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	if limit <= 0 || limit > defaultPostLimit {
		limit = defaultPostLimit
	}

	endpoint := fmt.Sprintf("%s/search/tweets.json?q=%s&count=%d", twitterBaseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: twitter API status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var response struct {
		Statuses []SocialStatus `json:"statuses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return response.Statuses, nil
}

var _ SocialFetcher = (*TwitterService)(nil)
