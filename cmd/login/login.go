package login

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("login", "Check an itch.io API key and save it locally.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, os.Stdin))
}

// Do verifies the key passed with --key (or the environment), or one
// read from in, then saves it. Already-saved credentials are just checked.
func Do(ctx *mansion.Context, in io.Reader) error {
	if ctx.Key == "" && ctx.HasSavedCredentials() {
		client, err := ctx.Authenticate()
		if err != nil {
			return errors.Wrap(err, 0)
		}

		_, err = client.CredentialsInfo()
		if err != nil {
			return errors.Wrap(err, 0)
		}

		comm.Logf("Your local credentials are valid!\n")
		comm.Logf("If you want to use another key, run `ichor logout` first, or specify a different key path with the `-i` flag.")
		comm.Result(map[string]string{"status": "success"})
		return nil
	}

	key := ctx.Key
	if key == "" {
		comm.Logf("Paste an API key from %s and press Enter:", apiKeysURL)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, 0)
		}
		key = strings.TrimSpace(line)
		if key == "" {
			return errors.New("no API key given")
		}
	}

	info, err := ctx.NewClient(key).CredentialsInfo()
	if err != nil {
		return errors.Wrap(err, 0)
	}

	err = ctx.SaveKey(key)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	comm.Logf("Saved %s credentials to %s", info.Type, ctx.Identity)
	comm.Result(map[string]string{"status": "success"})
	return nil
}

const apiKeysURL = "https://itch.io/user/settings/api-keys"
