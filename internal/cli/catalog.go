package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsenergy/till/internal/render"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the product catalog",
		Long: `List the product catalog the register sells from.

The catalog is read-only; edit the catalog file to change it.

Examples:
  till catalog
  till catalog --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, cmd)
		},
	}

	return cmd
}

func runCatalog(opts *CatalogOptions, cmd *cobra.Command) error {
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load catalog", err)
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	f.VerboseLog("loaded %d product(s) from %s", cat.Len(), cfg.Catalog)

	if opts.Format == "json" {
		return f.Success(cat.Products())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-4s %-25s %s\n", "ID", "NAME", "PRICE")
	for _, p := range cat.Products() {
		fmt.Fprintf(w, "%-4d %-25.25s %s\n", p.ID, p.Name, render.Amount(cfg.Business.Currency, p.Price))
	}
	return nil
}
