package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate and catalog queries",
	}

	cmd.AddCommand(newStatsDashboardCmd())
	cmd.AddCommand(newStatsTopItemsCmd())
	cmd.AddCommand(newStatsPurchaseCountsCmd())
	cmd.AddCommand(newStatsResourcesCmd())

	return cmd
}

func newStatsDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregate dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Dashboard

			if err := client.Get("/api/v1/stats/dashboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsTopItemsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "top-items",
		Short: "Show the most purchased items",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/items/top-purchased"
			if top > 0 {
				path += "?top=" + strconv.Itoa(top)
			}

			var result []ItemPurchases
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Number of groups to return (default 5)")

	return cmd
}

func newStatsPurchaseCountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purchase-counts",
		Short: "Show per-player purchase counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PlayerPurchases

			if err := client.Get("/api/v1/players/purchase-counts", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Show the static resource catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Resource

			if err := client.Get("/api/v1/resources", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
