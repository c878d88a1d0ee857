package mygames

import (
	"path/filepath"
	"testing"

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

func Test_MyGamesEmpty(t *testing.T) {
	server := ichortest.NewServer(t)
	key := server.Store().MakeUser("Ichor Dev").MakeAPIKey()

	res, err := Do(newTestContext(t, server, key.Key))
	require.NoError(t, err)
	assert.True(t, res.Games.IsEmpty())
}

func Test_MyGames(t *testing.T) {
	server := ichortest.NewServer(t)
	store := server.Store()
	dev := store.MakeUser("Ichor Dev")
	key := dev.MakeAPIKey()

	game := dev.MakeGame("X Moon").SetID(1289068)
	game.MinPrice = 500
	game.ViewsCount = 12345
	game.Publish()
	game.MakePurchase(store.MakeUser("Buyer"), "buyer@example.org", 500)

	dev.MakeGame("Draft")

	res, err := Do(newTestContext(t, server, key.Key))
	require.NoError(t, err)
	games := res.Games.Items()
	require.Len(t, games, 2)

	var moon, draft *ichor.Game
	for i := range games {
		switch games[i].Title {
		case "X Moon":
			moon = &games[i]
		case "Draft":
			draft = &games[i]
		}
	}
	require.NotNil(t, moon)
	require.NotNil(t, draft)

	row := Row(moon)
	assert.EqualValues(t, "1289068", row[0])
	assert.EqualValues(t, "X Moon", row[1])
	assert.Contains(t, row[2], "2021-11-13")
	assert.EqualValues(t, "$5.00", row[3])
	assert.EqualValues(t, "12,345", row[4])
	assert.EqualValues(t, "0", row[5])
	assert.EqualValues(t, "1", row[6])
	assert.EqualValues(t, "$5.00", row[7])

	row = Row(draft)
	assert.EqualValues(t, "no", row[2])
	assert.EqualValues(t, "free", row[3])
	assert.EqualValues(t, "-", row[7])
}

func Test_FormatEarningsHidden(t *testing.T) {
	assert.EqualValues(t, "-", FormatEarnings(&ichor.Game{}))
}
