package mansion

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dchest/safefile"
	"github.com/itchio/ichor"
	"github.com/itchio/ichor/comm"
	"github.com/pkg/errors"
)

// read+write for owner, no permissions for others
const keyFileMode = 0600

// EnvironmentAPIKeyVariable is read by the --key flag
const EnvironmentAPIKeyVariable = "ITCH_API_KEY"

// ErrNoCredentials is returned when no API key could be found anywhere
var ErrNoCredentials = errors.New("no API key found: pass --key, set " + EnvironmentAPIKeyVariable + ", or run `ichor login`")

// CredentialSource says where an API key was found
type CredentialSource string

const (
	SourceFlag    CredentialSource = "flag or environment"
	SourceKeyFile CredentialSource = "key file"
	SourceConfig  CredentialSource = "config file"
)

func (ctx *Context) HasSavedCredentials() bool {
	_, _, err := ctx.FindKey()
	return err == nil
}

// FindKey looks for an API key: flag or environment first, then the
// key file, then the config file.
func (ctx *Context) FindKey() (string, CredentialSource, error) {
	if ctx.Key != "" {
		return ctx.Key, SourceFlag, nil
	}

	key, err := readKeyFile(ctx.Identity)
	if err != nil {
		return "", "", errors.Wrap(err, "reading key file")
	}
	if key != "" {
		return key, SourceKeyFile, nil
	}

	config, err := ctx.Config()
	if err != nil {
		return "", "", errors.WithStack(err)
	}
	if config.APIKey != "" {
		return config.APIKey, SourceConfig, nil
	}

	return "", "", ErrNoCredentials
}

// Authenticate returns a client using the first API key found.
// The key isn't checked against the server.
func (ctx *Context) Authenticate() (*ichor.Client, error) {
	key, source, err := ctx.FindKey()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if source == SourceConfig {
		comm.Debugf("Using API key from %s, consider moving it to %s", ctx.ConfigPath, ctx.Identity)
	}
	return ctx.NewClient(key), nil
}

// SaveKey writes key to the key file, creating its directory
func (ctx *Context) SaveKey(key string) error {
	err := os.MkdirAll(filepath.Dir(ctx.Identity), os.FileMode(0755))
	if err != nil {
		return errors.Wrap(err, "creating directory for API key")
	}

	err = writeKeyFile(ctx.Identity, key)
	if err != nil {
		return errors.Wrap(err, "saving API key")
	}
	return nil
}

// ForgetKey removes the key file, if any
func (ctx *Context) ForgetKey() (bool, error) {
	err := os.Remove(ctx.Identity)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.WithStack(err)
	}
	return true, nil
}

func readKeyFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	stats, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// no key file
			return "", nil
		}
		return "", errors.WithStack(err)
	}

	if stats.Mode()&077 > 0 {
		if runtime.GOOS == "windows" {
			// windows won't let you 0600, because it's ACL-based
			// we can make it 0644, and go will report 0666, but
			// it doesn't matter since other users can't access it anyway.
		} else {
			comm.Warnf("Key file had wrong permissions (%#o), resetting to %#o", stats.Mode()&0777, keyFileMode)
			err = os.Chmod(path, keyFileMode)
			if err != nil {
				comm.Warnf("Couldn't chmod keyfile: %s", err.Error())
			}
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(string(buf)), nil
}

// writeKeyFile replaces the key file atomically, so a crash never
// leaves a truncated key behind
func writeKeyFile(path string, key string) error {
	return safefile.WriteFile(path, []byte(key), os.FileMode(keyFileMode))
}
