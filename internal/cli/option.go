package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/spf13/cobra"
)

var ramCmd = &cobra.Command{
	Use:   "ram",
	Short: "Get or set the server RAM",
}

var ramGetCmd = &cobra.Command{
	Use:   "get <server-id>",
	Short: "Show the configured RAM in GB",
	Args:  cobra.ExactArgs(1),
	RunE:  runRAMGet,
}

var ramSetCmd = &cobra.Command{
	Use:   "set <server-id> <gigabytes>",
	Short: "Change the RAM (server must be offline)",
	Args:  cobra.ExactArgs(2),
	RunE:  runRAMSet,
}

var motdCmd = &cobra.Command{
	Use:   "motd",
	Short: "Get or set the server list message",
}

var motdGetCmd = &cobra.Command{
	Use:   "get <server-id>",
	Short: "Show the MOTD",
	Args:  cobra.ExactArgs(1),
	RunE:  runMOTDGet,
}

var motdSetCmd = &cobra.Command{
	Use:   "set <server-id> <motd>",
	Short: "Change the MOTD",
	Args:  cobra.ExactArgs(2),
	RunE:  runMOTDSet,
}

func init() {
	serverCmd.AddCommand(ramCmd)
	ramCmd.AddCommand(ramGetCmd)
	ramCmd.AddCommand(ramSetCmd)

	serverCmd.AddCommand(motdCmd)
	motdCmd.AddCommand(motdGetCmd)
	motdCmd.AddCommand(motdSetCmd)
}

func runRAMGet(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	ram, err := api.GetServerRAM(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to fetch RAM option", err)
	}

	cmd.Printf("%d GB\n", ram)
	return nil
}

func runRAMSet(cmd *cobra.Command, args []string) error {
	gigabytes, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewUsageError(fmt.Sprintf("RAM must be a whole number of gigabytes, got %q", args[1]))
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	ram, err := api.SetServerRAM(context.Background(), args[0], gigabytes)
	if err != nil {
		return wrapAPIError("failed to set RAM option", err)
	}

	cmd.Printf("RAM set to %d GB\n", ram)
	return nil
}

func runMOTDGet(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	motd, err := api.GetServerMOTD(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to fetch MOTD option", err)
	}

	cmd.Println(motd)
	return nil
}

func runMOTDSet(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	motd, err := api.SetServerMOTD(context.Background(), args[0], args[1])
	if err != nil {
		return wrapAPIError("failed to set MOTD option", err)
	}

	cmd.Printf("MOTD set to: %s\n", motd)
	return nil
}
