package exaroton

import "context"

// GetCreditPools lists all credit pools the account is a member of.
func (c *Client) GetCreditPools(ctx context.Context) ([]*CreditPool, error) {
	var pools []*CreditPool
	if err := c.get(ctx, poolsEndpoint, &pools); err != nil {
		return nil, err
	}
	for _, pool := range pools {
		pool.client = c
	}
	return pools, nil
}

// GetCreditPool fetches a single credit pool by its ID.
func (c *Client) GetCreditPool(ctx context.Context, poolID string) (*CreditPool, error) {
	var pool CreditPool
	if err := c.get(ctx, poolPath(poolEndpoint, poolID), &pool); err != nil {
		return nil, err
	}
	pool.client = c
	return &pool, nil
}

// GetCreditPoolMembers lists the members of a credit pool. Only pool owners
// can see the member list.
func (c *Client) GetCreditPoolMembers(ctx context.Context, poolID string) ([]CreditPoolMember, error) {
	var members []CreditPoolMember
	if err := c.get(ctx, poolPath(poolMembersEndpoint, poolID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetCreditPoolServers lists the servers paid from a credit pool.
func (c *Client) GetCreditPoolServers(ctx context.Context, poolID string) ([]*Server, error) {
	var servers []*Server
	if err := c.get(ctx, poolPath(poolServersEndpoint, poolID), &servers); err != nil {
		return nil, err
	}
	for _, server := range servers {
		server.client = c
	}
	return servers, nil
}

// PoolMembers lists the members of the pool.
func (p *CreditPool) PoolMembers(ctx context.Context) ([]CreditPoolMember, error) {
	if p.client == nil {
		return nil, errNotAttached
	}
	return p.client.GetCreditPoolMembers(ctx, p.ID)
}

// PoolServers lists the servers paid from the pool.
func (p *CreditPool) PoolServers(ctx context.Context) ([]*Server, error) {
	if p.client == nil {
		return nil, errNotAttached
	}
	return p.client.GetCreditPoolServers(ctx, p.ID)
}
