package exaroton

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreditPools(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/pools/", r.URL.Path)
		writeEnvelope(w, []CreditPool{
			{ID: "p1", Name: "friends", Credits: 420.5, Members: 3, Servers: 1},
		})
	})

	pools, err := client.GetCreditPools(context.Background())

	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, "friends", pools[0].Name)
	assert.NotNil(t, pools[0].client)
}

func TestGetCreditPool_MembersAndServers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/billing/pools/p1/":
			writeEnvelope(w, CreditPool{ID: "p1", Name: "friends", OwnShare: 0.5, OwnCredits: 210.25})
		case "/billing/pools/p1/members/":
			writeEnvelope(w, []CreditPoolMember{
				{Account: "a1", Name: "steve", Share: 0.5, Credits: 210.25, IsOwner: true},
				{Account: "a2", Name: "alex", Share: 0.5, Credits: 210.25},
			})
		case "/billing/pools/p1/servers/":
			writeEnvelope(w, []Server{{ID: "s1", Name: "survival"}})
		default:
			writeError(w, http.StatusNotFound, "Not found")
		}
	})

	ctx := context.Background()
	pool, err := client.GetCreditPool(ctx, "p1")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pool.OwnShare, 0.001)

	members, err := pool.PoolMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.True(t, members[0].IsOwner)

	servers, err := pool.PoolServers(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.NotNil(t, servers[0].client)
}

func TestCreditPool_ConvenienceRequiresClient(t *testing.T) {
	pool := &CreditPool{ID: "p1"}

	_, err := pool.PoolMembers(context.Background())
	assert.ErrorIs(t, err, errNotAttached)
}
