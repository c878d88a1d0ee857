package purchases

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

var args = struct {
	gameID *uint32
	by     *string
	lookup *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("purchases", "List purchases of one of your games by a buyer.")
	args.gameID = cmd.Arg("game-id", "Numeric ID of the game").Required().Uint32()
	args.by = cmd.Flag("by", "What to look purchases up by").Default(string(ichor.PurchasesByEmail)).Enum(ichor.PurchasesTypes()...)
	args.lookup = cmd.Arg("value", "An email address or a user ID").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	res, err := Do(ctx, &ichor.PurchasesParams{
		GameID: *args.gameID,
		Type:   ichor.PurchasesType(*args.by),
		Lookup: *args.lookup,
	})
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		purchases := res.Purchases.Items()
		if len(purchases) == 0 {
			comm.Logf("No purchases found for %s", *args.lookup)
			return
		}

		var rows [][]string
		for i := range purchases {
			rows = append(rows, Row(&purchases[i]))
		}
		comm.Table([]string{"ID", "Email", "Date", "Price", "Source", "Donation"}, rows)
	})
}

func Do(ctx *mansion.Context, params *ichor.PurchasesParams) (*ichor.Purchases, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	res, err := client.Purchases(params)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return res, nil
}

func Row(p *ichor.Purchase) []string {
	donation := "no"
	if p.Donation {
		donation = "yes"
	}

	price := p.Price
	if p.SaleRate != 0 {
		price = fmt.Sprintf("%s (%d%% off)", price, p.SaleRate)
	}

	return []string{
		fmt.Sprintf("%d", p.ID),
		p.Email,
		comm.FormatDate(p.CreatedAt),
		price,
		p.Source,
		donation,
	}
}
