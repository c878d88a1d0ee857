package comm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DebugNeedsVerbose(t *testing.T) {
	output := captureJSONLogs(t, func() {
		Debugf("hidden %d", 1)
		Logf("shown %d", 2)
	})
	require.Len(t, output, 1)
	assert.EqualValues(t, "shown 2", output[0]["message"])
}

func Test_ResultOrPrint(t *testing.T) {
	printed := false
	output := captureJSONLogs(t, func() {
		ResultOrPrint(map[string]string{"type": "key"}, func() { printed = true })
	})
	assert.False(t, printed)
	require.Len(t, output, 1)
	assert.EqualValues(t, "result", output[0]["type"])
	assert.EqualValues(t, map[string]interface{}{"type": "key"}, output[0]["value"])
}

func Test_DieExits(t *testing.T) {
	code := -1
	oldExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = oldExit }()

	output := captureJSONLogs(t, func() {
		Dief("no credentials")
	})
	assert.EqualValues(t, 1, code)
	require.Len(t, output, 1)
	assert.EqualValues(t, "error", output[0]["type"])
	assert.EqualValues(t, "no credentials", output[0]["message"])
}

func Test_Table(t *testing.T) {
	oldSettings := *settings
	defer func() {
		*settings = oldSettings
	}()
	Configure(false, false, false, false)

	var buf bytes.Buffer
	oldStdout := stdout
	stdout = &buf
	defer func() {
		stdout = oldStdout
	}()

	Table([]string{"ID", "Title"}, [][]string{{"1289068", "X Moon"}})
	assert.Contains(t, buf.String(), "X Moon")
	assert.Contains(t, buf.String(), "Title")
}
