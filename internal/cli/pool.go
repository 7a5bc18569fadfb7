package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect credit pools",
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all credit pools of your account",
	RunE:  runPoolList,
}

var poolShowCmd = &cobra.Command{
	Use:   "show <pool-id>",
	Short: "Show a credit pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoolShow,
}

var poolMembersCmd = &cobra.Command{
	Use:   "members <pool-id>",
	Short: "List the members of a credit pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoolMembers,
}

var poolServersCmd = &cobra.Command{
	Use:   "servers <pool-id>",
	Short: "List the servers paid from a credit pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoolServers,
}

func init() {
	rootCmd.AddCommand(poolCmd)
	poolCmd.AddCommand(poolListCmd)
	poolCmd.AddCommand(poolShowCmd)
	poolCmd.AddCommand(poolMembersCmd)
	poolCmd.AddCommand(poolServersCmd)
}

func runPoolList(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	pools, err := api.GetCreditPools(context.Background())
	if err != nil {
		return wrapAPIError("failed to list credit pools", err)
	}

	if len(pools) == 0 {
		cmd.Println("No credit pools found.")
		return nil
	}
	for _, pool := range pools {
		cmd.Printf("%-28s  %-20s  %.2f credits\n", pool.ID, pool.Name, pool.Credits)
	}
	return nil
}

func runPoolShow(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	pool, err := api.GetCreditPool(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to fetch credit pool", err)
	}

	cmd.Printf("ID:          %s\n", pool.ID)
	cmd.Printf("Name:        %s\n", pool.Name)
	cmd.Printf("Credits:     %.2f\n", pool.Credits)
	cmd.Printf("Servers:     %d\n", pool.Servers)
	cmd.Printf("Members:     %d\n", pool.Members)
	cmd.Printf("Own share:   %.2f%%\n", pool.OwnShare*100)
	cmd.Printf("Own credits: %.2f\n", pool.OwnCredits)
	return nil
}

func runPoolMembers(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	members, err := api.GetCreditPoolMembers(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to list pool members", err)
	}

	for _, member := range members {
		owner := ""
		if member.IsOwner {
			owner = "  (owner)"
		}
		cmd.Printf("%-20s  share %.2f%%  %.2f credits%s\n", member.Name, member.Share*100, member.Credits, owner)
	}
	return nil
}

func runPoolServers(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	servers, err := api.GetCreditPoolServers(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to list pool servers", err)
	}

	for _, server := range servers {
		cmd.Printf("%-28s  %-10s  %s\n", server.ID, server.Status, server.Name)
	}
	return nil
}
