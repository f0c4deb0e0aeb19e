package cmd

import (
	"encoding/json"
	"fmt"

	"quill/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command with subcommands.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect quill configuration",
		Long: `Inspect the quill section of _config.yml.

The section is loaded once per run and read-only; change values by
editing _config.yml or with "quill set".`,
	}

	cmd.AddCommand(newConfigGetCmd(provider))
	cmd.AddCommand(newConfigListCmd(provider))

	return cmd
}

// newConfigGetCmd creates the "config get" subcommand.
func newConfigGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Print the value of a quill configuration key. Fails if the key
is not present in the loaded section.

Examples:
  quill config get theme
  quill config get deploy_branch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, err := app.View.Get(key)
			if err != nil {
				return fmt.Errorf("%w: %s", err, key)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key":   key,
					"value": value,
				})
			}

			fmt.Fprintln(app.Out, value)
			return nil
		},
	}

	return cmd
}

// newConfigListCmd creates the "config list" subcommand.
func newConfigListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List the quill configuration in file order.

Examples:
  quill config list
  quill config list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			keys := app.View.Keys()

			if app.JSON {
				all := make(map[string]string, len(keys))
				for _, k := range keys {
					v, _ := app.View.Get(k)
					all[k] = v
				}
				return json.NewEncoder(app.Out).Encode(all)
			}

			if len(keys) == 0 {
				fmt.Fprintf(app.Out, "No %s section values set\n", config.SectionKey)
				return nil
			}

			fmt.Fprintln(app.Out, "Configuration:")
			for _, k := range keys {
				v, _ := app.View.Get(k)
				fmt.Fprintf(app.Out, "  %s = %s\n", k, v)
			}
			return nil
		},
	}

	return cmd
}
