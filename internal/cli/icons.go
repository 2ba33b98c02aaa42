package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type iconsOptions struct {
	inventoryOptions
	Query   string
	Workers int
}

func newIconsCommand() *cobra.Command {
	opts := iconsOptions{}
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Load application icons and report their format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIcons(cmd.Context(), cmd, opts)
		},
	}
	addInventoryFlags(cmd, &opts.inventoryOptions)
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Case-insensitive substring filter")
	cmd.Flags().IntVar(&opts.Workers, "workers", defaultIconWorkers, "Concurrent icon loads")
	_ = viper.BindPFlag("icon_workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runIcons(ctx context.Context, cmd *cobra.Command, opts iconsOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := resolveInventory(cmd, opts.inventoryOptions)
	service := newAppService(cfg)
	session := service.NewSession()
	if _, err := session.Load(ctx, loadRequest(cfg)); err != nil {
		return err
	}
	workers := resolveInt(cmd, opts.Workers, "icon_workers", "workers")
	out := cmd.OutOrStdout()
	failed := 0
	for result := range service.IconLoader(workers).Load(ctx, session.Query(opts.Query)) {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "%s\terror: %s\n", result.Location, errorMessage(result.Err))
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%d bytes\n", result.Location, result.Icon.MIME, len(result.Icon.Data))
	}
	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d icons unavailable\n", failed)
	}
	return nil
}
