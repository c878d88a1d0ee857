package version

import (
	"log"
	"time"

	"github.com/itchio/ichor/buildinfo"
	"github.com/itchio/ichor/comm"
	"github.com/itchio/ichor/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("version", "Prints the current version of ichor")
	ctx.Register(cmd, do)
}

type VersionData struct {
	Version       string     `json:"version"`
	BuiltAt       *time.Time `json:"builtAt"`
	Commit        string     `json:"commit"`
	VersionString string     `json:"versionString"`
	UserAgent     string     `json:"userAgent"`
}

func Data() VersionData {
	return VersionData{
		Version:       buildinfo.Version,
		BuiltAt:       buildinfo.BuildTime(),
		Commit:        buildinfo.Commit,
		VersionString: buildinfo.VersionString,
		UserAgent:     buildinfo.UserAgent(),
	}
}

func do(ctx *mansion.Context) {
	comm.ResultOrPrint(Data(), func() {
		log.Println(buildinfo.VersionString)
	})
}
