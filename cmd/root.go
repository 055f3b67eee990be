package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/config"
	"github.com/beanbocchi/ossclient/internal"
	"github.com/beanbocchi/ossclient/pkg/sdk"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

// client creates an SDK client from the loaded configuration.
func (a *app) client() (*sdk.Client, error) {
	return internal.NewClient(a.cfg, a.logger)
}

// NewRootCommand builds the ossctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ossctl",
		Short: "Client for the OSS preview API",
		Long: `ossctl lists objects, generates preview URLs and inspects metadata
through the OSS REST API. Both the enveloped /v1/osss API and the plain
/api/oss API are supported.`,
		Example: `  # List images under a prefix
  ossctl list --prefix images/ --limit 20

  # Signed URL valid for 10 minutes
  ossctl preview images/cat.png --expires 600

  # Talk to the plain API
  ossctl --profile plain --base-url http://localhost:8088/api/oss info docs/report.pdf

  # Run a local fake of the API
  ossctl mock --seed ./testdata`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = internal.SetupLogger(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.String("env", "development", "environment name")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("base-url", "", "API base URL (defaults per profile)")
	flags.String("profile", string(sdk.ProfileEnveloped), "API profile (enveloped, plain)")
	flags.Duration("timeout", sdk.DefaultTimeout, "per-attempt request timeout")
	flags.Int("retries", sdk.DefaultMaxRetries, "attempts per call")
	flags.Duration("retry-delay", sdk.DefaultRetryDelay, "base delay between attempts")
	flags.String("locale", "zh", "date locale (zh, en)")

	root.AddCommand(
		newListCommand(a),
		newPreviewCommand(a),
		newBatchPreviewCommand(a),
		newSetInlineCommand(a),
		newInfoCommand(a),
		newDownloadCommand(a),
		newClassifyCommand(),
		newMockCommand(a),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
