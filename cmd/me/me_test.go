package me

import (
	"path/filepath"
	"testing"

	"github.com/itchio/ichor/ichortest"
	"github.com/itchio/ichor/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func Test_Me(t *testing.T) {
	server := ichortest.NewServer(t)
	dev := server.Store().MakeUser("Ichor Dev")
	dev.MakeGame("X Moon")
	dev.SetID(5119994)

	ctx := mansion.NewContext(kingpin.New("ichor", "test"))
	ctx.Identity = filepath.Join(t.TempDir(), "api_key")
	ctx.Address = server.BaseURL()
	require.NoError(t, ctx.SaveKey(dev.MakeAPIKey().Key))

	me, err := Do(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5119994, me.User.ID)

	assert.EqualValues(t, []string{
		"5119994",
		"ichor_dev",
		"Ichor Dev",
		"https://ichor_dev.itch.io",
		"gamer, developer",
	}, Row(&me.User))
}
