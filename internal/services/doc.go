// Package services defines the capability interfaces for the remote
// collaborators the explorer consumes (a music catalog and a social
// search service), the provider-shaped records they return, and HTTP
// implementations for Spotify and Twitter.
//
// Both implementations authenticate with application credentials (no
// user login): Spotify via the OAuth2 client-credentials flow, Twitter
// via an app-only bearer token.
package services
