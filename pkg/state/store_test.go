package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/tutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// exerciseStore checks replace on write semantics for any Store implementation.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	projects, err := s.Projects(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	first := []msmodel.Project{{ID: intPtr(1), ShortCode: strPtr("A"), Name: "a"}, {ID: intPtr(2), Name: "b"}}
	require.NoError(t, s.ReplaceProjects(ctx, "alice", first))

	second := []msmodel.Project{{ID: intPtr(3), Name: "c"}}
	require.NoError(t, s.ReplaceProjects(ctx, "alice", second))

	projects, err = s.Projects(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, second, projects, "lists are replaced, not merged")

	projects, err = s.Projects(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, projects, "state is kept per user")

	specs := []msmodel.Specification{{ID: intPtr(9), ProjectID: 3, Name: "Vout", Unit: "V", Minimum: 1, Typical: 2, Maximum: 3}}
	require.NoError(t, s.ReplaceSpecifications(ctx, "alice", specs))
	got, err := s.Specifications(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, specs, got)

	require.NoError(t, s.ReplaceSpecifications(ctx, "alice", nil))
	got, err = s.Specifications(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesOnWrite(t *testing.T) {
	s := NewMemoryStore()
	projects := []msmodel.Project{{Name: "a"}}
	require.NoError(t, s.ReplaceProjects(context.Background(), "alice", projects))

	projects[0].Name = "changed"
	got, err := s.Projects(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "a", got[0].Name)
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestRedisStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	exerciseStore(t, NewRedisStore(client))

	assert.True(t, mr.Exists("msweb:state:alice:projects"))
	assert.True(t, mr.Exists("msweb:state:alice:specifications"))
}

func TestRedisStoreCorruptValue(t *testing.T) {
	client, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("msweb:state:alice:projects", "not json"))

	_, err := NewRedisStore(client).Projects(context.Background(), "alice")
	assert.Error(t, err)
}

func TestConnectRedisStoreUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = ConnectRedisStore(context.Background(), addr)
	assert.Error(t, err)
}

func TestRedisStoreIntegration(t *testing.T) {
	addr := tutil.RequireIntegration(t, "MSWEB_REDIS_ADDR")[0]

	s, err := ConnectRedisStore(context.Background(), addr)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.client.Del(ctx, projectsKey("alice"), specificationsKey("alice"), projectsKey("bob")).Err())
	exerciseStore(t, s)
}
