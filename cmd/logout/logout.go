package logout

import (
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
	"github.com/pkg/errors"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("logout", "Remove the saved itch.io API key.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *mansion.Context) error {
	removed, err := ctx.ForgetKey()
	if err != nil {
		return errors.Wrap(err, "deleting key file")
	}

	if !removed {
		comm.Logf("No saved credentials at %s", ctx.Identity)
		comm.Log("Nothing to do.")
		return nil
	}

	comm.Log("You've successfully erased the API key that was saved on your computer.")
	comm.Log("Note: this doesn't invalidate the key itself. To revoke it, visit https://itch.io/user/settings/api-keys")
	return nil
}
