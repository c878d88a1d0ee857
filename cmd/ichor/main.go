package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/itchio/ichor/buildinfo"
	"github.com/itchio/ichor/cmd/credentials"
	"github.com/itchio/ichor/cmd/downloadkeys"
	"github.com/itchio/ichor/cmd/game"
	"github.com/itchio/ichor/cmd/login"
	"github.com/itchio/ichor/cmd/logout"
	"github.com/itchio/ichor/cmd/me"
	"github.com/itchio/ichor/cmd/mygames"
	"github.com/itchio/ichor/cmd/purchases"
	"github.com/itchio/ichor/cmd/version"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("ichor", "Query the itch.io server-side API")
	ctx = mansion.NewContext(app)
)

var appArgs = struct {
	timestamps *bool
	panic      *bool
}{}

func init() {
	configDir := mansion.DefaultConfigDir()

	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').BoolVar(&ctx.JSON)
	app.Flag("quiet", "Hide all but the results and errors").Short('q').BoolVar(&ctx.Quiet)
	app.Flag("verbose", "Display as much extra info as possible, including API requests").Short('v').BoolVar(&ctx.Verbose)
	appArgs.timestamps = app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool()
	appArgs.panic = app.Flag("panic", "Panic on error").Hidden().Bool()

	app.Flag("identity", "Path to the saved API key").Default(filepath.Join(configDir, "api_key")).Short('i').StringVar(&ctx.Identity)
	app.Flag("config", "Path to the config file").Default(filepath.Join(configDir, "config.toml")).StringVar(&ctx.ConfigPath)
	app.Flag("key", "itch.io API key to use instead of the saved one").Envar(mansion.EnvironmentAPIKeyVariable).StringVar(&ctx.Key)
	app.Flag("address", "Base URL of the API (advanced)").Hidden().StringVar(&ctx.Address)
	app.Flag("api-version", "Version of the API (advanced)").Hidden().Uint8Var(&ctx.APIVersion)

	credentials.Register(ctx)
	me.Register(ctx)
	mygames.Register(ctx)
	game.Register(ctx)
	downloadkeys.Register(ctx)
	purchases.Register(ctx)
	login.Register(ctx)
	logout.Register(ctx)
	version.Register(ctx)
}

func main() {
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	app.HelpFlag.Short('h')
	app.Version(buildinfo.VersionString)
	app.VersionFlag.Short('V')
	app.Author("itch.io")

	cmd, err := app.Parse(os.Args[1:])
	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	comm.Configure(ctx.Quiet, ctx.Verbose, ctx.JSON, *appArgs.panic)

	fullCmd := kingpin.MustParse(cmd, err)
	do, ok := ctx.Commands[fullCmd]
	if !ok {
		comm.Dief("Unknown command: %s", fullCmd)
		return
	}
	do(ctx)
}
