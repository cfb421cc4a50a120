package services

import "net/http"

// SetHTTPClient replaces the service's HTTP client; external test packages
// use it to inject mock transports.
func (s *SpotifyService) SetHTTPClient(c *http.Client) { s.httpClient = c }

// SetHTTPClient replaces the service's HTTP client; external test packages
// use it to inject mock transports.
func (s *TwitterService) SetHTTPClient(c *http.Client) { s.httpClient = c }
