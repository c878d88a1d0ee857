package buildinfo

import (
	"fmt"
	"strconv"
	"time"
)

var (
	Version       = "head" // set by -ldflags on release builds
	BuiltAt       = ""     // set by -ldflags on release builds, unix seconds
	Commit        = ""     // set by -ldflags on release builds
	VersionString = ""     // formatted on boot from the three above
)

func init() {
	VersionString = formatVersionString(Version, BuiltAt, Commit)
}

func formatVersionString(version, builtAt, commit string) string {
	var res string
	if builtAt != "" {
		epoch, err := strconv.ParseInt(builtAt, 10, 64)
		if err != nil {
			res = fmt.Sprintf("%s, invalid build date", version)
		} else {
			res = fmt.Sprintf("%s, built on %s", version, time.Unix(epoch, 0).UTC().Format("Jan _2 2006 @ 15:04:05"))
		}
	} else {
		res = fmt.Sprintf("%s, no build date", version)
	}
	if commit != "" {
		res = fmt.Sprintf("%s, ref %s", res, commit)
	}
	return res
}

// BuildTime returns nil for development builds
func BuildTime() *time.Time {
	epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(epoch, 0).UTC()
	return &t
}

// UserAgent is what ichor sends to itch.io
func UserAgent() string {
	version := Version
	if version == "head" && Commit != "" {
		version = Commit
	}
	return fmt.Sprintf("ichor/%s", version)
}
