package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/pkg/sdk"
)

func newPreviewCommand(a *app) *cobra.Command {
	var expires int

	cmd := &cobra.Command{
		Use:   "preview <key>",
		Short: "Generate a signed preview URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			var u string
			if expires == sdk.DefaultExpirationSeconds {
				u, err = c.GenerateDefaultPreviewURL(cmd.Context(), args[0])
			} else {
				u, err = c.GeneratePreviewURL(cmd.Context(), args[0], expires)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().IntVar(&expires, "expires", sdk.DefaultExpirationSeconds, "validity in seconds")
	return cmd
}

func newBatchPreviewCommand(a *app) *cobra.Command {
	var expires int

	cmd := &cobra.Command{
		Use:   "batch-preview <key>...",
		Short: "Generate signed preview URLs for several keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			urls, err := c.BatchGeneratePreviewURLs(cmd.Context(), args, expires)
			if err != nil {
				return err
			}

			for i, u := range urls {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[i], u)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&expires, "expires", sdk.DefaultExpirationSeconds, "validity in seconds")
	return cmd
}

func newSetInlineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-inline <key>",
		Short: "Make browsers display the object instead of downloading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			msg, err := c.SetInlineContentDisposition(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
