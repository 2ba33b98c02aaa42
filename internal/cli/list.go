package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"appbar/internal/app"
	"appbar/internal/types"
)

type listOptions struct {
	inventoryOptions
	Query  string
	Output string
	Format string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed applications, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	addInventoryFlags(cmd, &opts.inventoryOptions)
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Case-insensitive substring filter")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the full inventory to this file")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.ExportFormatYAML), "Inventory file format (yaml or json)")
	_ = viper.BindPFlag("export_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := resolveInventory(cmd, opts.inventoryOptions)
	service := newAppService(cfg)
	session := service.NewSession()
	if _, err := session.Load(ctx, loadRequest(cfg)); err != nil {
		return err
	}

	printEntries(cmd.OutOrStdout(), session.Query(opts.Query))

	if opts.Output != "" {
		format := types.ExportFormat(resolveString(cmd, opts.Format, "export_format", "format"))
		if err := service.Export(app.ExportRequest{Path: opts.Output, Format: format}, session.Snapshot()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "inventory written: %s\n", opts.Output)
	}
	return nil
}

func printEntries(w io.Writer, entries []types.Entry) {
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\n", entry.DisplayName, entry.Location)
	}
}
