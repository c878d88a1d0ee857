package mygames

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("my-games", "List the games of the account the API key belongs to.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	res, err := Do(ctx)
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		games := res.Games.Items()
		if len(games) == 0 {
			comm.Log("No games yet.")
			return
		}

		var rows [][]string
		for i := range games {
			rows = append(rows, Row(&games[i]))
		}
		comm.Table([]string{"ID", "Title", "Published", "Price", "Views", "Downloads", "Purchases", "Earnings"}, rows)
	})
}

func Do(ctx *mansion.Context) (*ichor.MyGames, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	res, err := client.MyGames()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return res, nil
}

func Row(g *ichor.Game) []string {
	published := "no"
	if g.Published != nil && *g.Published {
		published = comm.FormatDate(g.PublishedAt)
	}

	return []string{
		fmt.Sprintf("%d", g.ID),
		g.Title,
		published,
		comm.FormatCents(g.MinPrice),
		comm.FormatCount(g.ViewsCount),
		comm.FormatCount(g.DownloadsCount),
		comm.FormatCount(g.PurchasesCount),
		FormatEarnings(g),
	}
}

// FormatEarnings lists earnings per currency, "-" when there are none
// or the key can't see them.
func FormatEarnings(g *ichor.Game) string {
	if g.Earnings == nil {
		return "-"
	}

	var values []string
	for _, e := range g.Earnings.Items() {
		values = append(values, e.AmountFormatted)
	}
	return comm.FormatList(values)
}
