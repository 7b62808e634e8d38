package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// GitHubKeys resolves the public keys GitHub publishes for signing
// Copilot agent requests.
type GitHubKeys struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Entry
}

func NewGitHubKeys(baseURL string, timeout time.Duration, logger *logrus.Logger) *GitHubKeys {
	return &GitHubKeys{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.WithField("component", "github-keys"),
	}
}

type publicKeyList struct {
	PublicKeys []struct {
		Key           string `json:"key"`
		KeyIdentifier string `json:"key_identifier"`
		IsCurrent     bool   `json:"is_current"`
	} `json:"public_keys"`
}

// PublicKey fetches the Copilot signing keys and returns the PEM key
// matching the identifier. The caller token identifies us to GitHub.
func (g *GitHubKeys) PublicKey(ctx context.Context, token, keyID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/meta/public_keys/copilot_api", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("key service returned status %d", resp.StatusCode)
	}

	var keys publicKeyList
	if err := json.NewDecoder(resp.Body).Decode(&keys); err != nil {
		return "", fmt.Errorf("decode key list: %w", err)
	}

	for _, k := range keys.PublicKeys {
		if k.KeyIdentifier == keyID {
			return k.Key, nil
		}
	}
	g.logger.WithField("key_identifier", keyID).Warn("no signing key for identifier")
	return "", fmt.Errorf("no public key found for identifier %q", keyID)
}
