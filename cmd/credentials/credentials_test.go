package credentials

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/itchio/ichor"
	"github.com/itchio/ichor/ichortest"
	"github.com/itchio/ichor/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func newTestContext(t *testing.T, server *ichortest.Server, key string) *mansion.Context {
	dir := t.TempDir()
	ctx := mansion.NewContext(kingpin.New("ichor", "test"))
	ctx.Identity = filepath.Join(dir, "api_key")
	ctx.ConfigPath = filepath.Join(dir, "config.toml")
	ctx.Address = server.BaseURL()
	ctx.Key = key
	return ctx
}

func Test_Credentials(t *testing.T) {
	server := ichortest.NewServer(t)
	key := server.Store().MakeUser("Ichor Dev").MakeAPIKey()
	key.Scopes = []string{"profile:me"}
	expiresAt := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	key.ExpiresAt = &expiresAt

	info, err := Do(newTestContext(t, server, key.Key))
	require.NoError(t, err)
	assert.EqualValues(t, "key", info.Type)

	row := Row(info)
	assert.EqualValues(t, "key", row[0])
	assert.EqualValues(t, "profile:me", row[1])
	assert.Contains(t, row[2], "2022-01-01")
}

func Test_CredentialsUnrestricted(t *testing.T) {
	assert.EqualValues(t, []string{"key", "all", "never"}, Row(&ichor.CredentialsInfo{Type: "key"}))
}

func Test_CredentialsErrors(t *testing.T) {
	server := ichortest.NewServer(t)

	_, err := Do(newTestContext(t, server, ""))
	assert.ErrorIs(t, err, mansion.ErrNoCredentials)

	_, err = Do(newTestContext(t, server, "not-a-key"))
	require.Error(t, err)
	assert.True(t, ichor.IsAPIError(err))
	assert.NotContains(t, err.Error(), "not-a-key")
}
