package interfaces

import (
	"context"

	"github.com/exaroton/exaroton-go/pkg/exaroton"
)

// API is the part of the exaroton client the CLI commands depend on.
// Commands hold this interface instead of the concrete client so tests can
// substitute a fake.
type API interface {
	GetAccount(ctx context.Context) (*exaroton.Account, error)

	GetServers(ctx context.Context) ([]*exaroton.Server, error)
	GetServer(ctx context.Context, serverID string) (*exaroton.Server, error)
	GetServerLogs(ctx context.Context, serverID string) (*exaroton.Logs, error)
	ShareServerLogs(ctx context.Context, serverID string) (*exaroton.LogShare, error)
	GetServerRAM(ctx context.Context, serverID string) (int, error)
	SetServerRAM(ctx context.Context, serverID string, gigabytes int) (int, error)
	GetServerMOTD(ctx context.Context, serverID string) (string, error)
	SetServerMOTD(ctx context.Context, serverID, motd string) (string, error)
	StartServer(ctx context.Context, serverID string) error
	StartServerWithOwnCredits(ctx context.Context, serverID string) error
	StopServer(ctx context.Context, serverID string) error
	RestartServer(ctx context.Context, serverID string) error
	ExecuteServerCommand(ctx context.Context, serverID, command string) error

	GetPlayerLists(ctx context.Context, serverID string) ([]string, error)
	GetPlayerList(ctx context.Context, serverID, list string) ([]string, error)
	AddPlayerListEntries(ctx context.Context, serverID, list string, entries ...string) ([]string, error)
	RemovePlayerListEntries(ctx context.Context, serverID, list string, entries ...string) ([]string, error)

	GetFileInfo(ctx context.Context, serverID, path string) (*exaroton.FileInfo, error)
	ReadFile(ctx context.Context, serverID, path string) ([]byte, error)
	WriteFile(ctx context.Context, serverID, path string, data []byte) error
	DeleteFile(ctx context.Context, serverID, path string) error
	GetConfigOptions(ctx context.Context, serverID, path string) ([]exaroton.ConfigOption, error)
	UpdateConfigOptions(ctx context.Context, serverID, path string, values map[string]any) ([]exaroton.ConfigOption, error)

	GetCreditPools(ctx context.Context) ([]*exaroton.CreditPool, error)
	GetCreditPool(ctx context.Context, poolID string) (*exaroton.CreditPool, error)
	GetCreditPoolMembers(ctx context.Context, poolID string) ([]exaroton.CreditPoolMember, error)
	GetCreditPoolServers(ctx context.Context, poolID string) ([]*exaroton.Server, error)
}
