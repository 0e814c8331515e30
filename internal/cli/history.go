package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fsenergy/till/internal/admin"
	"github.com/fsenergy/till/internal/render"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Password string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past receipts (admin only)",
		Long: `List the receipt history.

History is read-only and gated behind the admin password. The listing
shows every finalized receipt in the order it was committed.

Examples:
  till history --password admin123
  till history --password admin123 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Password, "password", "", "admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	gate := admin.NewGate(cfg.AdminSecret)
	if err := gate.Authenticate(opts.Password); err != nil {
		// One generic message, regardless of cause.
		return NewExitError(ExitFailure, "authentication failed")
	}

	st, err := cfg.OpenStore()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history store", err)
	}
	defer st.Close()

	receipts, err := st.Load(context.Background())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load history", err)
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	f.VerboseLog("loaded %d receipt(s) from %s store", len(receipts), cfg.Store.Backend)

	if opts.Format == "json" {
		return f.Success(receipts)
	}

	render.HistoryList(cmd.OutOrStdout(), cfg.Business, receipts)
	return nil
}
