package cli

import (
	"context"
	"time"

	"github.com/exaroton/exaroton-go/internal/interfaces"
	"github.com/exaroton/exaroton-go/pkg/exaroton"
	"github.com/spf13/cobra"
)

// serverCacheMaxAge is how long a cached server list is served before the
// API is asked again.
const serverCacheMaxAge = time.Minute

var serversRefresh bool

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List all servers of your account",
	RunE:  runServers,
}

func init() {
	serversCmd.Flags().BoolVar(&serversRefresh, "refresh", false, "bypass the local cache")

	rootCmd.AddCommand(serversCmd)
}

func runServers(cmd *cobra.Command, args []string) error {
	store, storeErr := openState()
	if storeErr == nil {
		defer store.Close()
	}

	if !serversRefresh && storeErr == nil {
		cached, err := store.CachedServers(serverCacheMaxAge)
		if err == nil && len(cached) > 0 {
			for _, server := range cached {
				cmd.Printf("%-28s  %-10s  %s  [%s]\n", server.ID, server.Status, server.Name, server.Address)
			}
			cmd.Println("(cached; use --refresh to query the API)")
			return nil
		}
	}

	api, err := newAPI()
	if err != nil {
		return err
	}

	servers, err := api.GetServers(context.Background())
	if err != nil {
		return wrapAPIError("failed to list servers", err)
	}

	for _, server := range servers {
		cmd.Printf("%-28s  %-10s  %s  [%s]\n", server.ID, server.Status, server.Name, server.Address)
	}
	if len(servers) == 0 {
		cmd.Println("No servers found.")
	}

	if storeErr == nil {
		if err := store.CacheServers(toCachedServers(servers)); err != nil {
			cmd.PrintErrf("Warning: failed to update server cache: %v\n", err)
		}
	}

	return nil
}

func toCachedServers(servers []*exaroton.Server) []interfaces.CachedServer {
	cached := make([]interfaces.CachedServer, 0, len(servers))
	for _, server := range servers {
		cached = append(cached, interfaces.CachedServer{
			ID:      server.ID,
			Name:    server.Name,
			Address: server.Address,
			Status:  server.Status.String(),
			MOTD:    server.MOTD,
		})
	}
	return cached
}
