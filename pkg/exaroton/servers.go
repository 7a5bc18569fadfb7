package exaroton

import (
	"context"
	"fmt"
)

// RAM limits enforced by the service, mirrored client-side to fail fast.
const (
	MinRAM = 1
	MaxRAM = 16
)

// GetServers lists all servers the account has access to.
func (c *Client) GetServers(ctx context.Context) ([]*Server, error) {
	var servers []*Server
	if err := c.get(ctx, serversEndpoint, &servers); err != nil {
		return nil, err
	}
	for _, server := range servers {
		server.client = c
	}
	return servers, nil
}

// GetServer fetches a single server by its ID.
func (c *Client) GetServer(ctx context.Context, serverID string) (*Server, error) {
	var server Server
	if err := c.get(ctx, serverPath(serverEndpoint, serverID), &server); err != nil {
		return nil, err
	}
	server.client = c
	return &server, nil
}

// GetServerLogs fetches the current server log. Logs are only available while
// the server is not offline; the API returns an empty content otherwise.
func (c *Client) GetServerLogs(ctx context.Context, serverID string) (*Logs, error) {
	var logs Logs
	if err := c.get(ctx, serverPath(serverLogsEndpoint, serverID), &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}

// ShareServerLogs uploads the current server log to the mclo.gs paste service
// and returns the share links.
func (c *Client) ShareServerLogs(ctx context.Context, serverID string) (*LogShare, error) {
	var share LogShare
	if err := c.get(ctx, serverPath(serverLogShareEndpoint, serverID), &share); err != nil {
		return nil, err
	}
	return &share, nil
}

// GetServerRAM fetches the configured server memory in gigabytes.
func (c *Client) GetServerRAM(ctx context.Context, serverID string) (int, error) {
	var ram RAM
	if err := c.get(ctx, serverPath(serverRAMEndpoint, serverID), &ram); err != nil {
		return 0, err
	}
	return ram.RAM, nil
}

// SetServerRAM changes the server memory. The server must be offline.
func (c *Client) SetServerRAM(ctx context.Context, serverID string, gigabytes int) (int, error) {
	if gigabytes < MinRAM || gigabytes > MaxRAM {
		return 0, fmt.Errorf("exaroton: RAM must be between %d and %d GB, got %d", MinRAM, MaxRAM, gigabytes)
	}
	var ram RAM
	if err := c.post(ctx, serverPath(serverRAMEndpoint, serverID), RAM{RAM: gigabytes}, &ram); err != nil {
		return 0, err
	}
	return ram.RAM, nil
}

// GetServerMOTD fetches the server list message.
func (c *Client) GetServerMOTD(ctx context.Context, serverID string) (string, error) {
	var motd MOTD
	if err := c.get(ctx, serverPath(serverMOTDEndpoint, serverID), &motd); err != nil {
		return "", err
	}
	return motd.MOTD, nil
}

// SetServerMOTD changes the server list message.
func (c *Client) SetServerMOTD(ctx context.Context, serverID, motd string) (string, error) {
	var updated MOTD
	if err := c.post(ctx, serverPath(serverMOTDEndpoint, serverID), MOTD{MOTD: motd}, &updated); err != nil {
		return "", err
	}
	return updated.MOTD, nil
}

// StartServer starts the server, paying with the credits of the server owner
// (or its credit pool, if assigned to one).
func (c *Client) StartServer(ctx context.Context, serverID string) error {
	return c.get(ctx, serverPath(serverStartEndpoint, serverID), nil)
}

// StartServerWithOwnCredits starts a pooled server using the caller's own
// credits instead of the pool's.
func (c *Client) StartServerWithOwnCredits(ctx context.Context, serverID string) error {
	body := struct {
		UseOwnCredits bool `json:"useOwnCredits"`
	}{UseOwnCredits: true}
	return c.post(ctx, serverPath(serverStartEndpoint, serverID), body, nil)
}

// StopServer stops the server.
func (c *Client) StopServer(ctx context.Context, serverID string) error {
	return c.get(ctx, serverPath(serverStopEndpoint, serverID), nil)
}

// RestartServer restarts the server.
func (c *Client) RestartServer(ctx context.Context, serverID string) error {
	return c.get(ctx, serverPath(serverRestartEndpoint, serverID), nil)
}

// ExecuteServerCommand runs a command on the server console. The server must
// be online.
func (c *Client) ExecuteServerCommand(ctx context.Context, serverID, command string) error {
	body := struct {
		Command string `json:"command"`
	}{Command: command}
	return c.post(ctx, serverPath(serverCommandEndpoint, serverID), body, nil)
}

// errNotAttached is returned by entity conveniences on hand-built values.
var errNotAttached = fmt.Errorf("exaroton: entity was not fetched through a client")

// Fetch reloads the server state from the API.
func (s *Server) Fetch(ctx context.Context) error {
	if s.client == nil {
		return errNotAttached
	}
	updated, err := s.client.GetServer(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = *updated
	return nil
}

// Start starts the server.
func (s *Server) Start(ctx context.Context) error {
	if s.client == nil {
		return errNotAttached
	}
	return s.client.StartServer(ctx, s.ID)
}

// Stop stops the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.client == nil {
		return errNotAttached
	}
	return s.client.StopServer(ctx, s.ID)
}

// Restart restarts the server.
func (s *Server) Restart(ctx context.Context) error {
	if s.client == nil {
		return errNotAttached
	}
	return s.client.RestartServer(ctx, s.ID)
}

// ExecuteCommand runs a console command on the server.
func (s *Server) ExecuteCommand(ctx context.Context, command string) error {
	if s.client == nil {
		return errNotAttached
	}
	return s.client.ExecuteServerCommand(ctx, s.ID, command)
}

// Logs fetches the current server log.
func (s *Server) Logs(ctx context.Context) (*Logs, error) {
	if s.client == nil {
		return nil, errNotAttached
	}
	return s.client.GetServerLogs(ctx, s.ID)
}
