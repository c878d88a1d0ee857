package mansion

import (
	"log/slog"
	"net/http"

	"github.com/go-errors/errors"
	"github.com/itchio/httpkit/timeout"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/buildinfo"
	"github.com/itchio/ichor/comm"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// Identity is the path to the API key file
	Identity string

	// ConfigPath is the path to the TOML config file
	ConfigPath string

	// Key is the API key passed via flag or environment, if any
	Key string

	// Address overrides the base URL of the API
	Address string

	// APIVersion overrides the version of the API, 0 means unset
	APIVersion uint8

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	// JSON enables JSON-lines output
	JSON bool

	HTTPClient *http.Client

	config       *Config
	configWarned bool
}

func NewContext(app *kingpin.Application) *Context {
	return &Context{
		App:        app,
		Commands:   make(map[string]DoCommand),
		HTTPClient: timeout.NewDefaultClient(),
	}
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err == nil {
		return
	}

	if ctx.Verbose || ctx.JSON {
		if ge, ok := err.(*errors.Error); ok {
			comm.Die(ge.ErrorStack())
			return
		}
		comm.Dief("%+v", err)
	} else {
		comm.Dief("%s", err)
	}
}

// Config returns the parsed config file, loading it on first use.
// A missing file is an empty config.
func (ctx *Context) Config() (*Config, error) {
	if ctx.config != nil {
		return ctx.config, nil
	}

	config, err := LoadConfig(ctx.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	ctx.config = config
	return config, nil
}

// settings is Config, or an empty config if it can't be loaded.
// The load error is only reported once.
func (ctx *Context) settings() *Config {
	config, err := ctx.Config()
	if err != nil {
		if !ctx.configWarned {
			ctx.configWarned = true
			comm.Warnf("Ignoring config file: %s", err.Error())
		}
		return &Config{}
	}
	return config
}

// BaseURL is the flag value, then the config file's, then
// the reference itch.io server
func (ctx *Context) BaseURL() string {
	if ctx.Address != "" {
		return ctx.Address
	}
	if config := ctx.settings(); config.BaseURL != "" {
		return config.BaseURL
	}
	return ichor.BaseURL
}

// Version follows the same precedence as BaseURL
func (ctx *Context) Version() uint8 {
	if ctx.APIVersion != 0 {
		return ctx.APIVersion
	}
	if config := ctx.settings(); config.APIVersion != 0 {
		return config.APIVersion
	}
	return ichor.APIVersion
}

// LogLevel is debug with --verbose, warning with --quiet,
// and otherwise whatever the config file says.
func (ctx *Context) LogLevel() slog.Leveler {
	if ctx.Quiet {
		return slog.LevelWarn
	}
	if ctx.Verbose {
		return slog.LevelDebug
	}
	return ctx.settings().GetLogLevel()
}

func (ctx *Context) NewClient(key string) *ichor.Client {
	client := ichor.New(ctx.BaseURL(), ctx.Version(), key)
	client.HTTPClient = ctx.HTTPClient
	client.UserAgent = buildinfo.UserAgent()
	client.Logger = slog.New(comm.NewSlogHandler(ctx.LogLevel()))
	return client
}
