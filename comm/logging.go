package comm

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
)

var settings = &struct {
	quiet   bool
	verbose bool
	json    bool
	panic   bool
}{
	false,
	false,
	false,
	false,
}

// stdout is where JSON-lines and tables go, swapped out in tests
var stdout io.Writer = os.Stdout

// Configure sets all logging options in one go
func Configure(quiet, verbose, json, panic bool) {
	settings.quiet = quiet
	settings.verbose = verbose
	settings.json = json
	settings.panic = panic
}

// JsonEnabled is true when output is machine-readable JSON-lines
func JsonEnabled() bool {
	return settings.json
}

// VerboseEnabled is true when debug messages are printed
func VerboseEnabled() bool {
	return settings.verbose && !settings.quiet
}

type JsonMessage map[string]interface{}

// Log sends an informational message to the client
func Log(msg string) {
	Logl("info", msg)
}

// Logf sends a formatted informational message to the client
func Logf(format string, args ...interface{}) {
	Loglf("info", format, args...)
}

// Warn lets the user know about a problem that's non-critical
func Warn(msg string) {
	Logl("warning", msg)
}

// Warnf is a formatted variant of Warn
func Warnf(format string, args ...interface{}) {
	Loglf("warning", format, args...)
}

// Debug messages are like Info messages, but printed only when verbose
func Debug(msg string) {
	Logl("debug", msg)
}

// Debugf is a formatted variant of Debug
func Debugf(format string, args ...interface{}) {
	Loglf("debug", format, args...)
}

// Logl logs a message of a given level
func Logl(level string, msg string) {
	send("log", JsonMessage{
		"message": msg,
		"level":   level,
	})
}

// Loglf logs a formatted message of a given level
func Loglf(level string, format string, args ...interface{}) {
	Logl(level, fmt.Sprintf(format, args...))
}

// Die exits with a non-zero exit code after giving a reason to the client
func Die(msg string) {
	send("error", JsonMessage{
		"message": msg,
	})
}

// Dief is a formatted variant of Die
func Dief(format string, args ...interface{}) {
	Die(fmt.Sprintf(format, args...))
}

// Result sends a result, only visible in JSON mode
func Result(value interface{}) {
	send("result", JsonMessage{
		"value": value,
	})
}

type printerFunc func()

// ResultOrPrint sends value as a result in JSON mode, and
// calls p to print it for humans otherwise
func ResultOrPrint(value interface{}, p printerFunc) {
	if settings.json {
		Result(value)
	} else {
		p()
	}
}

// Table prints rows under a header, has no effect in JSON mode
func Table(header []string, rows [][]string) {
	if settings.json {
		return
	}

	table := tablewriter.NewWriter(stdout)
	table.SetAutoFormatHeaders(false)
	table.SetColWidth(60)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// sends a message to the client
func send(msgType string, obj JsonMessage) {
	if settings.json {
		obj["type"] = msgType
		obj["time"] = time.Now().UTC().Unix()
		if msgType == "log" && obj["level"] == "debug" && !VerboseEnabled() {
			return
		}

		sendJSON(obj)
		if msgType == "error" {
			exit(1)
		}
		return
	}

	switch msgType {
	case "log":
		if obj["level"] == "info" {
			if !settings.quiet {
				log.Println(obj["message"])
			}
		} else if obj["level"] == "debug" {
			if VerboseEnabled() {
				log.Println(obj["message"])
			}
		} else {
			log.Printf("%s: %s\n", obj["level"], obj["message"])
		}
	case "error":
		if settings.panic {
			log.Panicln(obj["message"])
		} else {
			log.Println(obj["message"])
			exit(1)
		}
	case "result":
		// don't show outside json mode
	default:
		log.Println(msgType, obj)
	}
}

// exit is swapped out in tests
var exit = os.Exit

// sends a JSON-encoded message to the client
func sendJSON(obj JsonMessage) {
	json, _ := json.Marshal(obj)
	fmt.Fprintln(stdout, string(json))
}
