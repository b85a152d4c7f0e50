package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/spf13/cobra"
)

var errHubUnauthorized = errors.New("hub rejected the credentials")

type hubStatus struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

type hubStatusPayload struct {
	Value hubStatus `json:"value"`
}

func newHubCmd(app *app) *cobra.Command {
	hubCmd := &cobra.Command{
		Use:   "hub",
		Short: "Inspect the device farm hub",
	}

	hubCmd.AddCommand(newHubStatusCmd(app))

	return hubCmd
}

func newHubStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the hub accepts the configured credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.credentials.Get(cmd.Context())
			if err != nil {
				return err
			}

			baseURL := hubBaseURL(app)
			fetch := func(ctx context.Context) (hubStatus, error) {
				return fetchHubStatus(ctx, app.httpClient, baseURL, creds)
			}

			var status hubStatus
			if asJSON {
				status, err = fetch(cmd.Context())
			} else {
				var checked hubCheckedMsg
				checked, err = runHubCheck(cmd.Context(), cmd.ErrOrStderr(), hubHost(app), creds.Username, fetch)
				status = checked.status
				app.logger.Debug("hub answered", "latency", checked.latency)
			}
			if err != nil {
				if errors.Is(err, errHubUnauthorized) {
					return fmt.Errorf("%w, update them with `dfe creds set`", err)
				}
				return fmt.Errorf("check hub: %w", err)
			}
			app.logger.Debug("hub status", "ready", status.Ready, "message", status.Message)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			state := "ready"
			if !status.Ready {
				state = "not ready"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "hub %s: %s\n", state, strings.TrimSpace(status.Message))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// hubBaseURL accepts a bare host or a full URL in farm.hub_host.
func hubBaseURL(app *app) string {
	host := hubHost(app)
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/")
	}
	return "https://" + host
}

func fetchHubStatus(ctx context.Context, client *http.Client, baseURL string, creds application.Credentials) (hubStatus, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/wd/hub/status", nil)
	if err != nil {
		return hubStatus{}, fmt.Errorf("create request: %w", err)
	}
	request.SetBasicAuth(creds.Username, creds.AccessKey)
	request.Header.Set("User-Agent", "dfe/hub")

	response, err := client.Do(request)
	if err != nil {
		return hubStatus{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return hubStatus{}, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return hubStatus{}, fmt.Errorf("%w: status %d", errHubUnauthorized, response.StatusCode)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return hubStatus{}, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload hubStatusPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return hubStatus{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload.Value, nil
}
