// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/daemon"
	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample videos into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			stores, err := daemon.OpenStoreStack(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = stores.Close() }()

			n, err := video.Seed(cmd.Context(), stores.Store)
			if err != nil {
				return err
			}
			if n == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "store already populated, nothing to seed")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d videos\n", n)
			return nil
		},
	}
}

func newVideosCmd(configPath *string) *cobra.Command {
	var (
		asJSON bool
		color  bool
	)
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Print every stored video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			stores, err := daemon.OpenStoreStack(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = stores.Close() }()

			svc, err := video.NewService(stores.Store)
			if err != nil {
				return err
			}
			videos, err := svc.GetAllVideos(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(videos)
			}
			printer := pp.New()
			printer.SetColoringEnabled(color)
			_, err = printer.Fprintln(out, videos)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON instead of a pretty dump")
	cmd.Flags().BoolVar(&color, "color", false, "colorize the pretty dump")
	return cmd
}
