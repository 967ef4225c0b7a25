package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the Jira connection settings, stored in
// ~/.jira-cli/config.json. The file supports single-line // comments for
// documentation purposes; environment variables override file values.
type Config struct {
	// BaseURL is the Jira site root, e.g. "https://your-org.atlassian.net".
	BaseURL string `json:"base_url"`
	// Email is the account email for basic auth. Leave empty to send the
	// API token as a bearer token (personal access tokens).
	Email string `json:"email"`
	// APIToken is the Jira API token or personal access token.
	APIToken string `json:"api_token"`
	// AccountID is the default account used by show-work-log.
	// Set it with: jira configure-account-id
	AccountID string `json:"account_id"`
}

// Environment variable names recognized as overrides.
const (
	EnvBaseURL   = "JIRA_BASE_URI"
	EnvEmail     = "JIRA_USERNAME"
	EnvAPIToken  = "JIRA_API_TOKEN"
	EnvAccountID = "JIRA_ACCOUNT_ID"
)

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// jira-cli configuration – ~/.jira-cli/config.json
//
// Every value can also be supplied through the environment:
// JIRA_BASE_URI, JIRA_USERNAME, JIRA_API_TOKEN, JIRA_ACCOUNT_ID.
// Environment variables take precedence over this file.
{
  // Jira site root, e.g. "https://your-org.atlassian.net".
  "base_url": "",

  // Account email for basic auth. Leave empty to authenticate with the
  // api_token as a bearer token (personal access tokens).
  "email": "",

  // Jira API token (https://id.atlassian.com/manage-profile/security).
  "api_token": "",

  // Default accountId for show-work-log. Filled in by:
  //   jira configure-account-id
  "account_id": ""
}
`

// configFilePath returns the path to ~/.jira-cli/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".jira-cli", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.jira-cli/config.json, creating it with annotated defaults
// on first run, then applies environment overrides.
func Load() (Config, error) {
	var cfg Config

	path, err := configFilePath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays environment variables over file values.
func applyEnv(cfg Config) Config {
	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvEmail); ok {
		cfg.Email = v
	}
	if v, ok := os.LookupEnv(EnvAPIToken); ok {
		cfg.APIToken = v
	}
	if v, ok := os.LookupEnv(EnvAccountID); ok {
		cfg.AccountID = v
	}
	return cfg
}

// SaveAccountID persists the account id into the config file, keeping the
// other stored settings. Comments in the file are not preserved.
func SaveAccountID(accountID string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	var cfg Config
	if data, err := os.ReadFile(path); err == nil {
		// Best effort: a malformed file is replaced wholesale.
		_ = json.Unmarshal(stripLineComments(data), &cfg)
	}
	cfg.AccountID = accountID

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
