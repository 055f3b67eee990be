package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/internal"
)

func newMockCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run a local fake of the OSS API",
		Long: `mock serves both API profiles over a directory on disk:
/v1/osss (enveloped), /api/oss (plain) and /files/* for signed URLs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := internal.NewMock(ctx, a.cfg.Mock)
			if err != nil {
				return err
			}
			return m.Serve(ctx, a.cfg.Mock.Addr)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8088", "listen address")
	flags.String("root", "./data", "directory holding the objects")
	flags.String("bucket", "demo-bucket", "bucket name used in public URLs")
	flags.String("endpoint", "oss-cn-hangzhou.aliyuncs.com", "endpoint used in public URLs")
	flags.String("secret", "local-dev-secret", "key for preview URL signatures")
	flags.String("public-url", "", "override the public URL base")
	flags.String("seed", "", "directory uploaded at startup")
	return cmd
}
