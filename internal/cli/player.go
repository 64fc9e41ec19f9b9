package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerPasswordCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerAffordableCmd())
	cmd.AddCommand(newPlayerTransactionsCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, optionally filtered by mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if mode != "" {
				path = "/api/v1/players/by-mode?mode=" + url.QueryEscape(mode)
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Filter by game mode")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var name, mode, pass string
	var experience int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":       name,
				"mode":       mode,
				"experience": experience,
				"password":   pass,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode (required)")
	cmd.Flags().IntVar(&experience, "experience", 0, "Starting experience")
	cmd.Flags().StringVar(&pass, "pass", "", "Player password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var name, mode string
	var experience int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player; unset flags leave fields unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("mode") {
				req["mode"] = mode
			}
			if cmd.Flags().Changed("experience") {
				req["experience"] = experience
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one of --name, --mode, --experience is required")
			}

			var result Player
			if err := client.Put("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode")
	cmd.Flags().IntVar(&experience, "experience", 0, "Experience")

	return cmd
}

func newPlayerPasswordCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "password <id>",
		Short: "Change a player's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"new_password": pass}

			if err := client.Patch("/api/v1/players/"+args[0]+"/password", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Password updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&pass, "pass", "", "New password (required)")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player deleted")
			return nil
		},
	}
}

func newPlayerAffordableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "affordable <id>",
		Short: "List items a player can afford",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Item

			if err := client.Get("/api/v1/players/"+args[0]+"/affordable-items", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <id>",
		Short: "List a player's transactions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Transaction

			if err := client.Get("/api/v1/players/"+args[0]+"/transactions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
