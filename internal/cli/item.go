package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Item catalog commands",
	}

	cmd.AddCommand(newItemListCmd())
	cmd.AddCommand(newItemGetCmd())
	cmd.AddCommand(newItemCreateCmd())
	cmd.AddCommand(newItemUpdateCmd())
	cmd.AddCommand(newItemDeleteCmd())
	cmd.AddCommand(newItemWeaponsCmd())
	cmd.AddCommand(newItemDiamondCmd())

	return cmd
}

func newItemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Item

			if err := client.Get("/api/v1/items", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newItemGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Item

			if err := client.Get("/api/v1/items/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newItemCreateCmd() *cobra.Command {
	var name, category, description string
	var xpCost int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new item",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":     name,
				"category": category,
				"xp_cost":  xpCost,
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			var result Item

			if err := client.Post("/api/v1/items", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&category, "category", "", "Item category (required)")
	cmd.Flags().IntVar(&xpCost, "xp-cost", 0, "Cost in experience points")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newItemUpdateCmd() *cobra.Command {
	var name, category, description string
	var xpCost int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an item; unset flags leave fields unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("category") {
				req["category"] = category
			}
			if cmd.Flags().Changed("xp-cost") {
				req["xp_cost"] = xpCost
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one of --name, --category, --xp-cost, --description is required")
			}

			var result Item
			if err := client.Put("/api/v1/items/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&category, "category", "", "Item category")
	cmd.Flags().IntVar(&xpCost, "xp-cost", 0, "Cost in experience points")
	cmd.Flags().StringVar(&description, "description", "", "Item description")

	return cmd
}

func newItemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/items/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Item deleted")
			return nil
		},
	}
}

func newItemWeaponsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weapons",
		Short: "List weapons costing over 100 XP, most expensive first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Item

			if err := client.Get("/api/v1/weapons/over-100xp", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newItemDiamondCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diamond",
		Short: "List 'kim cương' items under 500 XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Item

			if err := client.Get("/api/v1/items/kim-cuong-under-500xp", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
