package ghapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// ClientConfig describes how outbound GitHub clients authenticate.
// Either Token or the three App fields must be set; App fields win.
type ClientConfig struct {
	Token string

	AppID          int64
	InstallationID int64
	PrivateKeyPath string

	// BaseURL points the client at a GitHub Enterprise host instead of
	// api.github.com. Empty means the public API.
	BaseURL string
}

// NewClient builds a go-github client from the given credentials.
//
// In token mode the Authorization header is sent as "token <credential>",
// matching GitHub's personal-access-token scheme. In App mode
// ghinstallation mints and refreshes installation tokens itself.
func NewClient(ctx context.Context, cfg ClientConfig) (*gogithub.Client, error) {
	var httpClient *http.Client
	if cfg.AppID != 0 {
		itr, err := ghinstallation.NewKeyFromFile(
			http.DefaultTransport,
			cfg.AppID,
			cfg.InstallationID,
			cfg.PrivateKeyPath,
		)
		if err != nil {
			return nil, fmt.Errorf("creating installation transport: %w", err)
		}
		httpClient = &http.Client{Transport: itr}
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "token",
		})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := gogithub.NewClient(httpClient)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("setting base URL: %w", err)
		}
	}
	return client, nil
}
