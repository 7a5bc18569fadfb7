package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

var playerlistCmd = &cobra.Command{
	Use:   "playerlist",
	Short: "Manage server player lists (whitelist, ops, bans)",
}

var playerlistListCmd = &cobra.Command{
	Use:   "list <server-id>",
	Short: "Show the available player lists",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerlistList,
}

var playerlistShowCmd = &cobra.Command{
	Use:   "show <server-id> <list>",
	Short: "Show the entries of a player list",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlayerlistShow,
}

var playerlistAddCmd = &cobra.Command{
	Use:   "add <server-id> <list> <player...>",
	Short: "Add players to a list",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runPlayerlistAdd,
}

var playerlistRemoveCmd = &cobra.Command{
	Use:   "remove <server-id> <list> <player...>",
	Short: "Remove players from a list",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runPlayerlistRemove,
}

func init() {
	rootCmd.AddCommand(playerlistCmd)
	playerlistCmd.AddCommand(playerlistListCmd)
	playerlistCmd.AddCommand(playerlistShowCmd)
	playerlistCmd.AddCommand(playerlistAddCmd)
	playerlistCmd.AddCommand(playerlistRemoveCmd)
}

func runPlayerlistList(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	lists, err := api.GetPlayerLists(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to fetch player lists", err)
	}

	for _, list := range lists {
		cmd.Println(list)
	}
	return nil
}

func runPlayerlistShow(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	entries, err := api.GetPlayerList(context.Background(), args[0], args[1])
	if err != nil {
		return wrapAPIError("failed to fetch player list", err)
	}

	if len(entries) == 0 {
		cmd.Printf("List %q is empty.\n", args[1])
		return nil
	}
	for _, entry := range entries {
		cmd.Println(entry)
	}
	return nil
}

func runPlayerlistAdd(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	updated, err := api.AddPlayerListEntries(context.Background(), args[0], args[1], args[2:]...)
	if err != nil {
		return wrapAPIError("failed to add player list entries", err)
	}

	cmd.Printf("List %q now contains: %s\n", args[1], strings.Join(updated, ", "))
	return nil
}

func runPlayerlistRemove(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	updated, err := api.RemovePlayerListEntries(context.Background(), args[0], args[1], args[2:]...)
	if err != nil {
		return wrapAPIError("failed to remove player list entries", err)
	}

	if len(updated) == 0 {
		cmd.Printf("List %q is now empty.\n", args[1])
		return nil
	}
	cmd.Printf("List %q now contains: %s\n", args[1], strings.Join(updated, ", "))
	return nil
}
