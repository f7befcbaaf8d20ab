package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/SHOSESHOSE/time-tracker/internal/config"
)

// tokenFilePath returns the path to the stored relay token file.
func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ttrack", "auth", "relay_tokens.json"), nil
}

// oauth2Config builds the oauth2.Config for the relay endpoint's device
// code flow from the relay auth settings.
func oauth2Config(auth config.AuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID: auth.ClientID,
		Scopes:   auth.Scopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: auth.DeviceAuthURL,
			TokenURL:      auth.TokenURL,
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// loadToken loads a previously saved token from disk.
func loadToken() (*oauth2.Token, error) {
	path, err := tokenFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("corrupt token file (delete %s to re-authenticate): %w", path, err)
	}
	return &tok, nil
}

// saveToken persists a token to disk.
func saveToken(tok *oauth2.Token) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving token file: %w", err)
	}
	return nil
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	// Best-effort save; ignore errors.
	_ = saveToken(tok)
	return tok, nil
}

// authClient returns an HTTP client that carries a bearer token for the
// configured relay endpoint. It loads saved tokens, refreshes them if
// needed, or initiates a new device code flow if no valid token is
// available.
func authClient(ctx context.Context, auth config.AuthConfig) (*http.Client, error) {
	cfg := oauth2Config(auth)

	tok, err := loadToken()
	if err != nil {
		// Corrupt token — warn and re-auth.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		tok = nil
	}

	if tok == nil || (!tok.Valid() && tok.RefreshToken == "") {
		// Device code flow.
		resp, err := cfg.DeviceAuth(ctx)
		if err != nil {
			return nil, fmt.Errorf("device auth request failed: %w", err)
		}

		fmt.Println()
		fmt.Println("To sign in, use a web browser to open the page:")
		fmt.Printf("  %s\n", resp.VerificationURI)
		fmt.Printf("Enter the code: %s\n", resp.UserCode)
		fmt.Println()

		tok, err = cfg.DeviceAccessToken(ctx, resp)
		if err != nil {
			return nil, fmt.Errorf("device authentication failed: %w", err)
		}
		if err := saveToken(tok); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
		}
	}

	ts := cfg.TokenSource(ctx, tok)
	return oauth2.NewClient(ctx, &savingTokenSource{ts: ts}), nil
}
