package net

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	maxIdleConns     = 10
	timeoutInSeconds = 60
)

var reqTransport = &http.Transport{
	MaxIdleConns:          maxIdleConns,
	IdleConnTimeout:       timeoutInSeconds * time.Second,
	ResponseHeaderTimeout: timeoutInSeconds * time.Second,
}

// GetHTTPClient returns a plain client with sane timeouts.
func GetHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   timeoutInSeconds * time.Second,
		Transport: reqTransport,
	}
}

// GetOAuthClient returns a client that sends the static bearer token on
// every request. An empty token falls back to the plain client.
func GetOAuthClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return GetHTTPClient()
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{
			TokenType:   "Bearer",
			AccessToken: token,
		},
	)
	return oauth2.NewClient(ctx, ts)
}
