// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ManuGH/vodmeta/internal/persistence/sqlite"
	"github.com/spf13/cobra"
)

var errCorruption = errors.New("integrity check failed")

func newStorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect the SQLite video store",
	}
	cmd.AddCommand(newStorageVerifyCmd())
	return cmd
}

func newStorageVerifyCmd() *cobra.Command {
	var (
		path string
		mode string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check database integrity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return usageError("--path is required")
			}
			mode = strings.ToLower(strings.TrimSpace(mode))
			if mode != sqlite.VerifyQuick && mode != sqlite.VerifyFull {
				return usageError("invalid mode %q, use 'quick' or 'full'", mode)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "verifying integrity of %s (mode: %s)\n", path, mode)
			issues, err := sqlite.VerifyIntegrity(path, mode)
			if err != nil {
				return fmt.Errorf("verification interrupted: %w", err)
			}
			if len(issues) > 0 {
				for _, issue := range issues {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", issue)
				}
				return fmt.Errorf("%w: %d issue(s) in %s", errCorruption, len(issues), path)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "integrity verified: ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "path to the SQLite database file")
	cmd.Flags().StringVar(&mode, "mode", "quick", "verification mode: quick or full")
	return cmd
}
