package purchases

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

func Test_Purchases(t *testing.T) {
	server := ichortest.NewServer(t)
	store := server.Store()
	dev := store.MakeUser("Ichor Dev")
	key := dev.MakeAPIKey()
	g := dev.MakeGame("X Moon").SetID(1289068)
	buyer := store.MakeUser("Buyer").SetID(5119994)
	first := g.MakePurchase(buyer, "buyer@example.org", 500)
	second := g.MakePurchase(buyer, "buyer@example.org", 250)
	second.SaleRate = 50
	second.Donation = true
	g.MakePurchase(nil, "someone@example.org", 500)

	ctx := newTestContext(t, server, key.Key)

	res, err := Do(ctx, &ichor.PurchasesParams{
		GameID: 1289068,
		Type:   ichor.PurchasesByUserID,
		Lookup: "5119994",
	})
	require.NoError(t, err)
	require.Len(t, res.Purchases.Items(), 2)

	res, err = Do(ctx, &ichor.PurchasesParams{
		GameID: 1289068,
		Type:   ichor.PurchasesByEmail,
		Lookup: "buyer@example.org",
	})
	require.NoError(t, err)
	purchases := res.Purchases.Items()
	require.Len(t, purchases, 2)

	rows := map[int64][]string{}
	for i := range purchases {
		rows[purchases[i].ID] = Row(&purchases[i])
	}

	row := rows[first.ID]
	require.NotNil(t, row)
	assert.EqualValues(t, "buyer@example.org", row[1])
	assert.Contains(t, row[2], "2021-11-12")
	assert.EqualValues(t, "$5.00", row[3])
	assert.EqualValues(t, "desktop", row[4])
	assert.EqualValues(t, "no", row[5])

	row = rows[second.ID]
	require.NotNil(t, row)
	assert.EqualValues(t, "$2.50 (50% off)", row[3])
	assert.EqualValues(t, "yes", row[5])
}

func Test_PurchasesNone(t *testing.T) {
	server := ichortest.NewServer(t)
	dev := server.Store().MakeUser("Ichor Dev")
	key := dev.MakeAPIKey()
	dev.MakeGame("X Moon").SetID(1289068)

	res, err := Do(newTestContext(t, server, key.Key), &ichor.PurchasesParams{
		GameID: 1289068,
		Type:   ichor.PurchasesByEmail,
		Lookup: "nobody@example.org",
	})
	require.NoError(t, err)
	assert.True(t, res.Purchases.IsEmpty())
}
