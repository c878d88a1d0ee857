package downloadkeys

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
	cmd := ctx.App.Command("download-keys", "Find a download key of one of your games.")
	args.gameID = cmd.Arg("game-id", "Numeric ID of the game").Required().Uint32()
	args.by = cmd.Flag("by", "What to look the key up by").Default(string(ichor.DownloadKeysByKey)).Enum(ichor.DownloadKeysTypes()...)
	args.lookup = cmd.Arg("value", "The download key itself, a user ID or an email address").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	res, err := Do(ctx, &ichor.DownloadKeysParams{
		GameID: *args.gameID,
		Type:   ichor.DownloadKeysType(*args.by),
		Lookup: *args.lookup,
	})
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		comm.Table([]string{"ID", "Key", "Game", "Created", "Downloads", "Owner"}, [][]string{Row(&res.DownloadKey)})
	})
}

func Do(ctx *mansion.Context, params *ichor.DownloadKeysParams) (*ichor.DownloadKeys, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	res, err := client.DownloadKeys(params)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return res, nil
}

func Row(dk *ichor.DownloadKey) []string {
	owner := "unclaimed"
	if dk.Owner != nil {
		owner = fmt.Sprintf("%s (#%d)", dk.Owner.Username, dk.Owner.ID)
	}

	return []string{
		fmt.Sprintf("%d", dk.ID),
		dk.Key,
		fmt.Sprintf("%d", dk.GameID),
		comm.FormatDate(dk.CreatedAt),
		fmt.Sprintf("%d", dk.Downloads),
		owner,
	}
}
