package cli

import (
	"context"
	"fmt"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/exaroton/exaroton-go/pkg/exaroton"
	"github.com/spf13/cobra"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API token as a credential profile",
	Long: `Verifies an API token against the exaroton API and stores it in the
local state database under the selected profile (--profile, default
"default"). The token is prompted for interactively unless --token is
given.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential profile",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account the current API token belongs to",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token (prompted interactively if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := loginToken
	if token == "" {
		var err error
		token, err = promptAPIKey()
		if err != nil {
			return errors.NewGenericError("failed to read API token", err)
		}
	}

	// Verify the token before storing it
	client, err := exaroton.NewClient(token)
	if err != nil {
		return errors.NewAuthError("invalid API token", err)
	}

	account, err := client.GetAccount(context.Background())
	if err != nil {
		if exaroton.IsUnauthorized(err) {
			return errors.NewAuthError("the API rejected this token", err)
		}
		return errors.NewAPIError("failed to verify API token", err)
	}

	store, err := openState()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveProfile(profileName, token); err != nil {
		return err
	}

	cmd.Printf("Logged in as %s (profile %q)\n", account.Name, profileName)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := openState()
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := store.GetProfile(profileName)
	if err != nil {
		return err
	}
	if profile == nil {
		return errors.NewProfileError(fmt.Sprintf("profile %q does not exist", profileName))
	}

	if err := store.DeleteProfile(profileName); err != nil {
		return err
	}

	cmd.Printf("Removed profile %q\n", profileName)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	account, err := api.GetAccount(context.Background())
	if err != nil {
		return wrapAPIError("failed to fetch account", err)
	}

	cmd.Printf("Account:  %s\n", account.Name)
	cmd.Printf("Email:    %s\n", account.Email)
	cmd.Printf("Verified: %t\n", account.Verified)
	cmd.Printf("Credits:  %.2f\n", account.Credits)
	return nil
}
