package cli

import (
	"context"
	"strings"

	"github.com/exaroton/exaroton-go/pkg/exaroton"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage a single server",
	Long:  `Inspect a server, control its lifecycle and run console commands.`,
}

var serverShowCmd = &cobra.Command{
	Use:   "show <server-id>",
	Short: "Show the current state of a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runServerShow,
}

var startOwnCredits bool

var serverStartCmd = &cobra.Command{
	Use:   "start <server-id>",
	Short: "Start a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runServerStart,
}

var serverStopCmd = &cobra.Command{
	Use:   "stop <server-id>",
	Short: "Stop a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runServerStop,
}

var serverRestartCmd = &cobra.Command{
	Use:   "restart <server-id>",
	Short: "Restart a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runServerRestart,
}

var serverCommandCmd = &cobra.Command{
	Use:   "command <server-id> <command...>",
	Short: "Run a console command on a server",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runServerCommand,
}

var logsShare bool

var serverLogsCmd = &cobra.Command{
	Use:   "logs <server-id>",
	Short: "Print the server log",
	Args:  cobra.ExactArgs(1),
	RunE:  runServerLogs,
}

func init() {
	serverStartCmd.Flags().BoolVar(&startOwnCredits, "own-credits", false, "pay with your own credits instead of the server's credit pool")
	serverLogsCmd.Flags().BoolVar(&logsShare, "share", false, "upload the log to mclo.gs and print the share link")

	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverShowCmd)
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)
	serverCmd.AddCommand(serverRestartCmd)
	serverCmd.AddCommand(serverCommandCmd)
	serverCmd.AddCommand(serverLogsCmd)
}

func runServerShow(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	server, err := api.GetServer(context.Background(), args[0])
	if err != nil {
		return wrapAPIError("failed to fetch server", err)
	}

	printServer(cmd, server)
	return nil
}

func runServerStart(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if startOwnCredits {
		err = api.StartServerWithOwnCredits(ctx, args[0])
	} else {
		err = api.StartServer(ctx, args[0])
	}
	if err != nil {
		return wrapAPIError("failed to start server", err)
	}

	cmd.Printf("Server %s is starting\n", args[0])
	return nil
}

func runServerStop(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	if err := api.StopServer(context.Background(), args[0]); err != nil {
		return wrapAPIError("failed to stop server", err)
	}

	cmd.Printf("Server %s is stopping\n", args[0])
	return nil
}

func runServerRestart(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	if err := api.RestartServer(context.Background(), args[0]); err != nil {
		return wrapAPIError("failed to restart server", err)
	}

	cmd.Printf("Server %s is restarting\n", args[0])
	return nil
}

func runServerCommand(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	command := strings.Join(args[1:], " ")
	if err := api.ExecuteServerCommand(context.Background(), args[0], command); err != nil {
		return wrapAPIError("failed to execute command", err)
	}

	cmd.Printf("Executed: %s\n", command)
	return nil
}

func runServerLogs(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if logsShare {
		share, err := api.ShareServerLogs(ctx, args[0])
		if err != nil {
			return wrapAPIError("failed to share server log", err)
		}
		cmd.Printf("Log uploaded: %s\n", share.URL)
		cmd.Printf("Raw:          %s\n", share.Raw)
		return nil
	}

	logs, err := api.GetServerLogs(ctx, args[0])
	if err != nil {
		return wrapAPIError("failed to fetch server log", err)
	}

	cmd.Print(logs.Content)
	if logs.Content != "" && !strings.HasSuffix(logs.Content, "\n") {
		cmd.Println()
	}
	return nil
}

func printServer(cmd *cobra.Command, server *exaroton.Server) {
	cmd.Printf("ID:      %s\n", server.ID)
	cmd.Printf("Name:    %s\n", server.Name)
	cmd.Printf("Address: %s\n", server.Address)
	cmd.Printf("Status:  %s\n", server.Status)
	cmd.Printf("MOTD:    %s\n", server.MOTD)
	cmd.Printf("Players: %d/%d\n", server.Players.Count, server.Players.Max)
	if server.Software != nil {
		cmd.Printf("Software: %s %s\n", server.Software.Name, server.Software.Version)
	}
	if len(server.Players.List) > 0 {
		cmd.Printf("Online:  %s\n", strings.Join(server.Players.List, ", "))
	}
}
