package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/pkg/fileutil"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <name>...",
		Short: "Classify file names or URLs by extension",
		Args:  cobra.MinimumNArgs(1),
		// Works offline; skips config loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				contentType := fileutil.ContentType(name)
				if contentType == "" {
					contentType = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, fileutil.Classify(name), contentType)
			}
			return nil
		},
	}
}
