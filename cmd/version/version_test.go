package version

import (
	"testing"

	"github.com/itchio/ichor/buildinfo"
	"github.com/stretchr/testify/assert"
)

func Test_Data(t *testing.T) {
	data := Data()
	assert.EqualValues(t, buildinfo.Version, data.Version)
	assert.EqualValues(t, buildinfo.VersionString, data.VersionString)
	assert.EqualValues(t, "ichor/"+buildinfo.Version, data.UserAgent)
	assert.Nil(t, data.BuiltAt)
}
