package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/pkg/fileutil"
)

func newInfoCommand(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <key>",
		Short: "Show object metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			info, err := c.GetFileInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				body, err := sonic.ConfigStd.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(body))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Key:\t%s\n", info.Key)
			fmt.Fprintf(w, "Kind:\t%s\n", info.Kind())
			fmt.Fprintf(w, "Size:\t%s\n", fileutil.FormatFileSize(info.Size.Int64))
			fmt.Fprintf(w, "Content-Type:\t%s\n", info.ContentType.String)
			fmt.Fprintf(w, "Disposition:\t%s\n", info.ContentDisposition.String)
			fmt.Fprintf(w, "Modified:\t%s\n", info.LastModified.Format(a.cfg.Client.Locale))
			fmt.Fprintf(w, "ETag:\t%s\n", info.ETag.String)
			fmt.Fprintf(w, "URL:\t%s\n", info.URL.String)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}
