package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and update server config files as typed options",
}

var configGetCmd = &cobra.Command{
	Use:   "get <server-id> <path>",
	Short: "Show the options of a config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <server-id> <path> <key=value...>",
	Short: "Change option values in a config file",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	options, err := api.GetConfigOptions(context.Background(), args[0], args[1])
	if err != nil {
		return wrapAPIError("failed to fetch config options", err)
	}

	for _, option := range options {
		cmd.Printf("%-24s = %v", option.Key, option.Value)
		if len(option.Options) > 0 {
			cmd.Printf("  (one of: %s)", strings.Join(option.Options, ", "))
		}
		cmd.Println()
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	values, err := parseKeyValues(args[2:])
	if err != nil {
		return err
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	updated, err := api.UpdateConfigOptions(context.Background(), args[0], args[1], values)
	if err != nil {
		return wrapAPIError("failed to update config options", err)
	}

	cmd.Printf("Updated %d option(s) in %s\n", len(values), args[1])
	for _, option := range updated {
		if _, changed := values[option.Key]; changed {
			cmd.Printf("%s = %v\n", option.Key, option.Value)
		}
	}
	return nil
}

// parseKeyValues turns key=value arguments into typed option values.
// Booleans and integers are coerced so the API receives proper JSON types.
func parseKeyValues(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, errors.NewUsageError(fmt.Sprintf("expected key=value, got %q", pair))
		}
		values[key] = coerceValue(raw)
	}
	return values, nil
}

func coerceValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
