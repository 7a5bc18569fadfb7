package exaroton

import "context"

// playerListEntries is the request/response body of the player list
// mutation endpoints.
type playerListEntries struct {
	Entries []string `json:"entries"`
}

// GetPlayerLists returns the names of all player lists of a server, such as
// "whitelist", "ops" or "banned-players".
func (c *Client) GetPlayerLists(ctx context.Context, serverID string) ([]string, error) {
	var lists []string
	if err := c.get(ctx, serverPath(playerListsEndpoint, serverID), &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetPlayerList returns the entries of one player list.
func (c *Client) GetPlayerList(ctx context.Context, serverID, list string) ([]string, error) {
	var entries []string
	if err := c.get(ctx, playerListPath(serverID, list), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddPlayerListEntries adds entries to a player list and returns the updated
// list.
func (c *Client) AddPlayerListEntries(ctx context.Context, serverID, list string, entries ...string) ([]string, error) {
	var updated []string
	body := playerListEntries{Entries: entries}
	if err := c.put(ctx, playerListPath(serverID, list), body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemovePlayerListEntries removes entries from a player list and returns the
// updated list. Entries not on the list are ignored by the API.
func (c *Client) RemovePlayerListEntries(ctx context.Context, serverID, list string, entries ...string) ([]string, error) {
	var updated []string
	body := playerListEntries{Entries: entries}
	if err := c.delete(ctx, playerListPath(serverID, list), body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}
