package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/station"
)

func newStationsCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stations <keyword>",
		Short: "List stations matching a name or line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")

			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", limit)
			}

			matches := opts.Stations.Search(args[0], limit)

			if asJSON {
				enc := json.NewEncoder(out(cmd))
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(models.NewStationList(matches))
			}

			RenderStations(out(cmd), matches)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", station.DefaultSearchLimit, "Maximum number of stations to list")
	cmd.Flags().Bool("json", false, "Print the stations as JSON")

	return cmd
}
