package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Veraticus/snacker/internal/cli"
	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/config"
	"github.com/Veraticus/snacker/internal/sheets"
	"github.com/spf13/cobra"
)

const sheetsTokenFile = "sheets-token.json"

func authCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(authSheetsCmd(a))

	return cmd
}

func authSheetsCmd(a *app) *cobra.Command {
	var (
		clientID     string
		clientSecret string
		listenAddr   string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This opens your browser to sign in with Google, then stores the refresh
token in your config file so 'snacker export sheets' can use it.`,
		Annotations: map[string]string{annotationStorage: storageNone},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clientID == "" {
				clientID = a.v.GetString("sheets.client_id")
			}
			if clientSecret == "" {
				clientSecret = a.v.GetString("sheets.client_secret")
			}
			if clientID == "" {
				clientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
			}
			if clientSecret == "" {
				clientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
			}
			if clientID == "" || clientSecret == "" {
				return common.NewUserError(
					"OAuth2 credentials not found. Set sheets.client_id and sheets.client_secret in your config or pass --client-id and --client-secret.",
					common.ErrMissingConfig)
			}

			tokenFile := filepath.Join(config.ExpandPath(config.DefaultConfigDir), sheetsTokenFile)
			slog.Info("Starting Google Sheets authentication", "token_file", tokenFile)

			token, err := sheets.AuthenticateOAuth2Interactive(cmd.Context(), sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    tokenFile,
				ListenAddr:   listenAddr,
				Timeout:      timeout,
			}, func(url string) {
				say(cmd, "Open this URL in your browser to continue:\n\n  %s\n", url)
				openBrowser(url)
			})
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			a.v.Set("sheets.client_id", clientID)
			a.v.Set("sheets.client_secret", clientSecret)
			a.v.Set("sheets.refresh_token", token.RefreshToken)
			if err := a.saveConfig(); err != nil {
				slog.Warn("Failed to update config file with refresh token", "error", err)
				say(cmd, "%s", cli.FormatWarning("Could not save the refresh token. Add this to your config.yaml:"))
				say(cmd, "sheets:\n  refresh_token: %q", token.RefreshToken)
				return nil
			}

			say(cmd, "%s", cli.FormatSuccess("Google Sheets is set up. Run 'snacker export sheets' to export a report."))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID (overrides config)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret (overrides config)")
	cmd.Flags().StringVar(&listenAddr, "listen", "localhost:8080", "address for the OAuth2 callback")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "how long to wait for the browser sign-in")

	return cmd
}

// saveConfig writes the current settings back to the config file in use.
func (a *app) saveConfig() error {
	configFile := a.v.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(config.ExpandPath(config.DefaultConfigDir), "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0750); err != nil {
		return err
	}
	return a.v.WriteConfigAs(configFile)
}

// openBrowser tries to open the URL in the default browser.
func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start() //nolint:gosec
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", url).Start() //nolint:gosec
	}
	if err != nil {
		slog.Debug("Failed to open browser", "error", err)
	}
}
