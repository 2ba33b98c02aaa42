package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"appbar/internal/app"
	"appbar/internal/types"
)

type inventoryOptions struct {
	Roots     []string
	Recursive bool
	Extension string
}

func addInventoryFlags(cmd *cobra.Command, opts *inventoryOptions) {
	cmd.Flags().StringSliceVar(&opts.Roots, "root", nil, "Directories to scan for applications")
	cmd.Flags().BoolVar(&opts.Recursive, "recursive", false, "Descend into subdirectories of each root")
	cmd.Flags().StringVar(&opts.Extension, "extension", types.DefaultBundleExtension, "Application bundle extension")
	_ = viper.BindPFlag("roots", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("extension", cmd.Flags().Lookup("extension"))
}

func resolveInventory(cmd *cobra.Command, opts inventoryOptions) types.InventoryConfig {
	return types.InventoryConfig{
		Roots:     resolveStrings(cmd, opts.Roots, "roots", "root"),
		Recursive: resolveBool(cmd, opts.Recursive, "recursive", "recursive"),
		Extension: resolveString(cmd, opts.Extension, "extension", "extension"),
	}
}

func newAppService(cfg types.InventoryConfig) app.Service {
	service := app.NewService()
	if cfg.Extension != "" {
		service.Extension = cfg.Extension
	}
	return service
}

func loadRequest(cfg types.InventoryConfig) app.LoadRequest {
	return app.LoadRequest{Roots: cfg.Roots, Recursive: cfg.Recursive}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
