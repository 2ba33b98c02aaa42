package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"appbar/internal/app"
	"appbar/internal/types"
)

type openOptions struct {
	inventoryOptions
}

func newOpenCommand() *cobra.Command {
	opts := openOptions{}
	cmd := &cobra.Command{
		Use:   "open NAME|PATH",
		Short: "Launch one application from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd.Context(), cmd, opts, args[0])
		},
	}
	addInventoryFlags(cmd, &opts.inventoryOptions)
	return cmd
}

func runOpen(ctx context.Context, cmd *cobra.Command, opts openOptions, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := resolveInventory(cmd, opts.inventoryOptions)
	service := newAppService(cfg)
	session := service.NewSession()
	if _, err := session.Load(ctx, loadRequest(cfg)); err != nil {
		return err
	}
	entry, err := selectEntry(service, session, target)
	if err != nil {
		return err
	}
	if err := session.Open(ctx, entry); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "opened: %s\n", entry.DisplayName)
	return nil
}

// selectEntry finds exactly one entry for target. A path is matched by
// canonical location; anything else is matched by exact name first and by
// substring second.
func selectEntry(service app.Service, session *app.Session, target string) (types.Entry, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("application name or path is required")
	}
	if strings.ContainsRune(target, filepath.Separator) {
		location := target
		if service.FileSystem != nil {
			if canonical, err := service.FileSystem.Canonical(target); err == nil {
				location = canonical
			}
		}
		if entry, ok := session.Snapshot().Lookup(location); ok {
			return entry, nil
		}
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no application at " + target)
	}

	matches := session.Query(target)
	var exact []types.Entry
	for _, entry := range matches {
		if strings.EqualFold(entry.DisplayName, target) || strings.EqualFold(entry.FileName, target) {
			exact = append(exact, entry)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		matches = exact
	}
	switch len(matches) {
	case 0:
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no application matches " + target)
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, 0, len(matches))
		for _, entry := range matches {
			candidates = append(candidates, entry.Location)
		}
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%q matches %d applications: %s", target, len(matches), strings.Join(candidates, ", ")))
	}
}
