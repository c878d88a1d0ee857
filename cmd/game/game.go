package game

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/cmd/mygames"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
	"github.com/skratchdot/open-golang/open"
)

var args = struct {
	id   *string
	open *bool
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("game", "Show details about one of your games.")
	args.id = cmd.Arg("id", "Numeric ID of the game, e.g. 1289068").Required().String()
	args.open = cmd.Flag("open", "Open the game's page in a web browser").Bool()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	g, err := Do(ctx, *args.id)
	ctx.Must(err)

	comm.ResultOrPrint(g, func() {
		Print(g)
	})

	if *args.open {
		ctx.Must(Open(g))
	}
}

func Do(ctx *mansion.Context, gameID string) (*ichor.Game, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	g, err := client.Game(gameID)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return g, nil
}

func Print(g *ichor.Game) {
	published := "no"
	if g.Published != nil && *g.Published {
		published = comm.FormatDate(g.PublishedAt)
	}

	comm.Table([]string{"Field", "Value"}, [][]string{
		{"ID", fmt.Sprintf("%d", g.ID)},
		{"Title", g.Title},
		{"Tagline", comm.FormatOptional(&g.ShortText)},
		{"Page", g.URL},
		{"Kind", fmt.Sprintf("%s (%s)", g.Classification, g.Type)},
		{"Author", g.User.Username},
		{"Created", comm.FormatDate(g.CreatedAt)},
		{"Published", published},
		{"Price", comm.FormatCents(g.MinPrice)},
		{"Platforms", comm.FormatList(g.Platforms())},
		{"Views", comm.FormatCount(g.ViewsCount)},
		{"Downloads", comm.FormatCount(g.DownloadsCount)},
		{"Purchases", comm.FormatCount(g.PurchasesCount)},
		{"Earnings", mygames.FormatEarnings(g)},
	})
}

// openURL is swapped out in tests
var openURL = open.Run

func Open(g *ichor.Game) error {
	comm.Logf("Opening %s", g.URL)
	err := openURL(g.URL)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
