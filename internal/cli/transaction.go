package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"txn"},
		Short:   "Transaction commands",
	}

	cmd.AddCommand(newTransactionListCmd())
	cmd.AddCommand(newTransactionGetCmd())
	cmd.AddCommand(newTransactionCreateCmd())
	cmd.AddCommand(newTransactionDeleteCmd())

	return cmd
}

func newTransactionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Transaction

			if err := client.Get("/api/v1/transactions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTransactionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Transaction

			if err := client.Get("/api/v1/transactions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTransactionCreateCmd() *cobra.Command {
	var playerID, itemID int64
	var kind, occurredAt string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id": playerID,
				"kind":      kind,
			}
			if cmd.Flags().Changed("item") {
				req["item_id"] = itemID
			}
			if occurredAt != "" {
				ts, err := time.Parse(time.RFC3339, occurredAt)
				if err != nil {
					return err
				}
				req["occurred_at"] = ts
			}
			var result Transaction

			if err := client.Post("/api/v1/transactions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&playerID, "player", 0, "Player id (required)")
	cmd.Flags().Int64Var(&itemID, "item", 0, "Item id (optional)")
	cmd.Flags().StringVar(&kind, "kind", "", "Transaction kind (required)")
	cmd.Flags().StringVar(&occurredAt, "occurred-at", "", "Timestamp in RFC3339; defaults to now")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func newTransactionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/transactions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Transaction deleted")
			return nil
		},
	}
}
