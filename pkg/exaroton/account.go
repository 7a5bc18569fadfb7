package exaroton

import "context"

// GetAccount fetches the account the API token belongs to.
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.get(ctx, accountEndpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
