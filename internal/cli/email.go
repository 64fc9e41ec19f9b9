package cli

import (
	"github.com/spf13/cobra"
)

func newEmailCmd() *cobra.Command {
	var to, subject, body string

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send an email through the server (requires auth)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"to":      to,
				"subject": subject,
				"body":    body,
			}

			if err := client.Post("/api/v1/email/send", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Email sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line (required)")
	cmd.Flags().StringVar(&body, "body", "", "HTML body")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
