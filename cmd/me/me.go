package me

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("me", "Show the profile of the account the API key belongs to.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	me, err := Do(ctx)
	ctx.Must(err)

	comm.ResultOrPrint(me, func() {
		comm.Table([]string{"ID", "Username", "Display name", "Profile", "Roles"}, [][]string{Row(&me.User)})
	})
}

func Do(ctx *mansion.Context) (*ichor.Me, error) {
	client, err := ctx.Authenticate()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	me, err := client.Me()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return me, nil
}

func Row(u *ichor.User) []string {
	var roles []string
	if u.Gamer {
		roles = append(roles, "gamer")
	}
	if u.Developer {
		roles = append(roles, "developer")
	}
	if u.PressUser {
		roles = append(roles, "press")
	}
	return []string{fmt.Sprintf("%d", u.ID), u.Username, comm.FormatOptional(u.DisplayName), u.URL, comm.FormatList(roles)}
}
