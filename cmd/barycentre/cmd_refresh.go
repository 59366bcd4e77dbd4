package main

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/app"
	"barycentre-service/internal/codec"
	"barycentre-service/internal/config"
	"barycentre-service/internal/platform/logging"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRefreshCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Geocode every friend, compute the barycentre and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Keep stdout clean for the JSON result.
			logging.SetupWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("wiring services: %w", err)
			}
			defer a.Close()

			entries := root.registry().All()
			result := a.Refresher.Refresh(cmd.Context(), entries)

			res := dto.NewRefreshResponse(entries, result, dto.MapDefaults{
				Lat:  cfg.Map.DefaultLat,
				Lon:  cfg.Map.DefaultLon,
				Zoom: cfg.Map.DefaultZoom,
			})
			res.Token = codec.Encode(entries)
			res.Share = codec.ShareQuery(entries)

			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}
