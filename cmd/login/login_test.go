package login

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itchio/ichor"
	"github.com/itchio/ichor/ichortest"
	"github.com/itchio/ichor/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func newTestContext(t *testing.T, server *ichortest.Server) *mansion.Context {
	dir := t.TempDir()
	ctx := mansion.NewContext(kingpin.New("ichor", "test"))
	ctx.Identity = filepath.Join(dir, "ichor", "api_key")
	ctx.ConfigPath = filepath.Join(dir, "config.toml")
	ctx.Address = server.BaseURL()
	return ctx
}

func Test_LoginFromInput(t *testing.T) {
	server := ichortest.NewServer(t)
	key := server.Store().MakeUser("Ichor Dev").MakeAPIKey()
	ctx := newTestContext(t, server)

	require.NoError(t, Do(ctx, strings.NewReader(key.Key+"\n")))

	saved, err := os.ReadFile(ctx.Identity)
	require.NoError(t, err)
	assert.EqualValues(t, key.Key, string(saved))

	// already logged in, just checks
	requests := len(server.Requests())
	require.NoError(t, Do(ctx, strings.NewReader("")))
	assert.Len(t, server.Requests(), requests+1)
}

func Test_LoginFromFlag(t *testing.T) {
	server := ichortest.NewServer(t)
	key := server.Store().MakeUser("Ichor Dev").MakeAPIKey()
	ctx := newTestContext(t, server)
	ctx.Key = key.Key

	require.NoError(t, Do(ctx, strings.NewReader("")))
	assert.True(t, ctx.HasSavedCredentials())
}

func Test_LoginRejected(t *testing.T) {
	server := ichortest.NewServer(t)
	ctx := newTestContext(t, server)

	err := Do(ctx, strings.NewReader("bad-key\n"))
	require.Error(t, err)
	assert.True(t, ichor.IsAPIError(err))
	assert.False(t, ctx.HasSavedCredentials())

	err = Do(ctx, strings.NewReader("\n"))
	assert.Error(t, err)
	assert.Empty(t, server.Requests()[1:])
}
