package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/internal/utils/progressr"
	"github.com/beanbocchi/ossclient/pkg/fileutil"
)

func newDownloadCommand(a *app) *cobra.Command {
	var (
		output   string
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "download <key>",
		Short: "Download an object through a preview URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			dst := output
			if dst == "" {
				dst = path.Base(args[0])
			}

			f, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("create %s: %w", dst, err)
			}

			var w io.Writer = f
			stop := func() {}
			if progress {
				info, err := c.GetFileInfo(cmd.Context(), args[0])
				if err != nil {
					f.Close()
					os.Remove(dst)
					return err
				}
				pw := progressr.NewWriter(f, info.Size.Int64)
				w = pw

				ctx, cancel := context.WithCancel(cmd.Context())
				done := make(chan struct{})
				go func() {
					defer close(done)
					report(ctx, cmd.ErrOrStderr(), pw)
				}()
				stop = func() {
					cancel()
					<-done
					fmt.Fprintln(cmd.ErrOrStderr())
				}
			}

			res, err := c.Download(cmd.Context(), args[0], w)
			stop()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(dst)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tblake3:%s\n", dst, fileutil.FormatFileSize(res.Bytes), res.Hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default: base name of the key)")
	cmd.Flags().BoolVar(&progress, "progress", false, "report progress on stderr")
	return cmd
}

func report(ctx context.Context, out io.Writer, pw *progressr.Writer) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	show := func() {
		fmt.Fprintf(out, "\r%5.1f%%  %s", pw.Progress()*100, fileutil.FormatFileSize(pw.Written()))
	}
	for {
		select {
		case <-ctx.Done():
			show()
			return
		case <-ticker.C:
			show()
		}
	}
}
