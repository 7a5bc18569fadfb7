package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/spf13/cobra"
)

// historyPrimeLimit caps how many stored commands seed a new session's
// readline history.
const historyPrimeLimit = 50

// lineReader is the readline surface the console loop needs. Tests replace
// newLineReader to script a session.
type lineReader interface {
	Readline() (string, error)
	SaveHistory(content string) error
	Close() error
}

var newLineReader = func(cfg *readline.Config) (lineReader, error) {
	return readline.NewEx(cfg)
}

var consoleCmd = &cobra.Command{
	Use:   "console <server-id>",
	Short: "Open an interactive console session on a server",
	Long: `Opens a readline-based prompt that sends every line as a console
command to the server. The server must be online. Type 'exit' or press
Ctrl+D to leave the session.`,
	Args: cobra.ExactArgs(1),
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	serverID := args[0]

	api, err := newAPI()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Show where we are connected before entering the loop
	server, err := api.GetServer(ctx, serverID)
	if err != nil {
		return wrapAPIError("failed to fetch server", err)
	}
	if !server.IsOnline() {
		return errors.NewAPIError("server is not online; start it first", nil)
	}

	// Command history is best-effort: a broken state store must not block
	// the session
	store, storeErr := openState()
	if storeErr == nil {
		defer store.Close()
	}

	historyFile := filepath.Join(".", ".exaroton_console_history")
	if dir, err := exarotonDir(); err == nil {
		historyFile = filepath.Join(dir, "console_history")
	}

	rl, err := newLineReader(&readline.Config{
		Prompt:          server.Name + "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.NewGenericError("failed to initialize readline", err)
	}
	defer rl.Close()

	// Seed the session history with this server's recorded commands, oldest
	// first so the most recent one is a single arrow-up away
	if storeErr == nil {
		if lines, err := store.CommandHistory(serverID, historyPrimeLimit); err == nil {
			for _, line := range lines {
				_ = rl.SaveHistory(line)
			}
		}
	}

	cmd.Printf("Connected to %s (%s)\n", server.Name, server.Address)
	cmd.Println("Type your commands and press Enter. Type 'exit' or press Ctrl+D to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}
		if command == "exit" {
			break
		}

		if err := api.ExecuteServerCommand(ctx, serverID, command); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			continue
		}

		if storeErr == nil {
			if err := store.RecordCommand(serverID, command); err != nil {
				cmd.PrintErrf("Warning: failed to record command: %v\n", err)
			}
		}
	}

	cmd.Println("Session closed.")
	return nil
}
