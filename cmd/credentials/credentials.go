package credentials

import (
	"github.com/go-errors/errors"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("credentials", "Show what kind of API key is in use, its scopes and expiry.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	info, err := Do(ctx)
	ctx.Must(err)

	comm.ResultOrPrint(info, func() {
		comm.Table([]string{"Type", "Scopes", "Expires"}, [][]string{Row(info)})
	})
}

func Do(ctx *mansion.Context) (*ichor.CredentialsInfo, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	info, err := client.CredentialsInfo()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return info, nil
}

func Row(info *ichor.CredentialsInfo) []string {
	scopes := "all"
	if info.Scopes != nil {
		scopes = comm.FormatList(info.Scopes.Items())
	}

	expires := "never"
	if info.ExpiresAt != nil {
		expires = comm.FormatDate(*info.ExpiresAt)
	}
	return []string{info.Type, scopes, expires}
}
