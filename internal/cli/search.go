package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const reloadCommand = ":reload"

type searchOptions struct {
	inventoryOptions
}

func newSearchCommand() *cobra.Command {
	opts := searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter applications interactively, one query per input line",
		Long: "Reads queries from standard input and prints the matching applications " +
			"after each line. An empty line lists everything; \"" + reloadCommand + "\" rescans the roots.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.Context(), cmd, opts)
		},
	}
	addInventoryFlags(cmd, &opts.inventoryOptions)
	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, opts searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := resolveInventory(cmd, opts.inventoryOptions)
	session := newAppService(cfg).NewSession()
	out := cmd.OutOrStdout()

	pending := session.LoadAsync(ctx, loadRequest(cfg))
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == reloadCommand {
			pending = session.LoadAsync(ctx, loadRequest(cfg))
			continue
		}
		if pending != nil {
			outcome := <-pending
			pending = nil
			if outcome.Err != nil {
				return outcome.Err
			}
		}
		entries := session.Query(line)
		fmt.Fprintf(out, "> %s (%d)\n", line, len(entries))
		printEntries(out, entries)
	}
	if pending != nil {
		if outcome := <-pending; outcome.Err != nil {
			return outcome.Err
		}
	}
	return scanner.Err()
}
