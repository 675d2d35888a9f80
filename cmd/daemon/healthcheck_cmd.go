// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newHealthcheckCmd() *cobra.Command {
	var (
		mode    string
		host    string
		port    int
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check a running daemon (for container HEALTHCHECK)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/healthz"
			switch mode {
			case "ready":
				path = "/readyz"
			case "live":
			default:
				return usageError("invalid mode %q, use 'ready' or 'live'", mode)
			}

			url := fmt.Sprintf("http://%s:%d%s", host, port, path)
			client := http.Client{Timeout: timeout}
			resp, err := client.Get(url)
			if err != nil {
				return fmt.Errorf("healthcheck failed (network): %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("healthcheck failed (status): %s", resp.Status)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "healthcheck successful (%s)\n", mode)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "ready", "healthcheck mode: ready or live")
	cmd.Flags().StringVar(&host, "host", "localhost", "API host to check")
	cmd.Flags().IntVar(&port, "port", 8088, "API port to check")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "check timeout")
	return cmd
}
