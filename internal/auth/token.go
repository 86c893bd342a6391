package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	resty "github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	OAUTH_TOKEN_URL = "https://api.challonge.com/oauth/token"
	REQUEST_TIMEOUT = 30 * time.Second
)

// Options control how the Challonge credential is resolved. Zero-value fields
// fall back to the corresponding CHALLONGE_* environment variables.
type Options struct {
	EnvFile      string
	AccessToken  string
	ClientId     string
	ClientSecret string
	TokenUrl     string
}

// ResolveAccessToken returns the bearer credential for the pipeline, trying in
// order: the explicit token, CHALLONGE_ACCESS_TOKEN, an OAuth
// client-credentials exchange, and the legacy CHALLONGE_API_KEY. The env file
// (when present) is loaded first; the resolved token is returned to the caller
// and never written back into the process environment.
func ResolveAccessToken(opts Options) (string, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			logrus.Debugf("No env file loaded from %s: %v", opts.EnvFile, err)
		}
	}

	if opts.AccessToken != "" {
		return opts.AccessToken, nil
	}
	if token := os.Getenv("CHALLONGE_ACCESS_TOKEN"); token != "" {
		return token, nil
	}

	clientId := opts.ClientId
	if clientId == "" {
		clientId = os.Getenv("CHALLONGE_CLIENT_ID")
	}
	clientSecret := opts.ClientSecret
	if clientSecret == "" {
		clientSecret = os.Getenv("CHALLONGE_CLIENT_SECRET")
	}
	if clientId != "" && clientSecret != "" {
		tokenUrl := opts.TokenUrl
		if tokenUrl == "" {
			tokenUrl = OAUTH_TOKEN_URL
		}
		return RequestAccessToken(tokenUrl, clientId, clientSecret)
	}

	if apiKey := os.Getenv("CHALLONGE_API_KEY"); apiKey != "" {
		return apiKey, nil
	}

	return "", errors.New("challonge credentials are required: provide an access token or client credentials")
}

// RequestAccessToken exchanges OAuth client credentials for an access token.
func RequestAccessToken(tokenUrl, clientId, clientSecret string) (string, error) {
	httpClient := resty.New()
	httpClient.SetTimeout(REQUEST_TIMEOUT)

	resp, err := httpClient.R().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "ChallongeAnalisis/1.0").
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     clientId,
			"client_secret": clientSecret,
		}).
		Post(tokenUrl)

	if err != nil {
		return "", err
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("requesting OAuth token on url %s returned %d", tokenUrl, resp.StatusCode())
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", errors.New("OAuth token response missing access_token")
	}
	return payload.AccessToken, nil
}
