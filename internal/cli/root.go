package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/exaroton/exaroton-go/internal/interfaces"
	"github.com/exaroton/exaroton-go/internal/state"
	"github.com/exaroton/exaroton-go/pkg/exaroton"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	profileName string
	rootCmd     = &cobra.Command{
		Use:   "exaroton",
		Short: "exaroton CLI - Manage Minecraft servers hosted on exaroton",
		Long: `The exaroton CLI talks to the exaroton hosting API. It covers account
information, server lifecycle (start/stop/restart), server options such as
RAM and MOTD, player lists, file access and credit pools.

Authentication uses an API token, taken from the EXAROTON_API_KEY
environment variable, the config file, or a stored credential profile
created with 'exaroton login'.`,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.exaroton/exaroton.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "credential profile to use")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in ~/.exaroton
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".exaroton"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("exaroton")
	}

	viper.SetEnvPrefix("EXAROTON")
	viper.AutomaticEnv() // read in environment variables that match
	_ = viper.BindEnv("api_key", "EXAROTON_API_KEY")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exarotonDir returns the CLI state directory (~/.exaroton), creating it if
// necessary
func exarotonDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewGenericError("failed to get home directory", err)
	}
	dir := filepath.Join(home, ".exaroton")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.NewGenericError("failed to create state directory", err)
	}
	return dir, nil
}

// openState initializes the SQLite state store. Callers own the returned
// manager and must Close it.
func openState() (*state.Manager, error) {
	dir, err := exarotonDir()
	if err != nil {
		return nil, err
	}

	manager := state.NewManager()
	if err := manager.Initialize(filepath.Join(dir, "state.db")); err != nil {
		return nil, err
	}
	return manager, nil
}

// resolveAPIKey returns the API token for the current invocation. The
// environment and config file win over stored profiles.
func resolveAPIKey() (string, error) {
	if key := viper.GetString("api_key"); key != "" {
		return key, nil
	}

	store, err := openState()
	if err != nil {
		return "", err
	}
	defer store.Close()

	profile, err := store.GetProfile(profileName)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", errors.NewProfileError(
			fmt.Sprintf("no API key found for profile %q; run 'exaroton login' or set EXAROTON_API_KEY", profileName))
	}
	return profile.APIKey, nil
}

// wrapAPIError maps SDK errors onto CLI exit codes.
func wrapAPIError(message string, err error) error {
	if exaroton.IsUnauthorized(err) {
		return errors.NewAuthError(message, err)
	}
	return errors.NewAPIError(message, err)
}

// newAPI builds the API client for the current invocation. Tests replace
// this to inject a fake.
var newAPI = func() (interfaces.API, error) {
	key, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	client, err := exaroton.NewClient(key)
	if err != nil {
		return nil, errors.NewAuthError("failed to create API client", err)
	}
	return client, nil
}
