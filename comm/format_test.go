package comm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_FormatDate(t *testing.T) {
	oldNow := now
	now = func() time.Time { return time.Date(2021, time.November, 15, 10, 30, 0, 0, time.UTC) }
	defer func() { now = oldNow }()

	assert.EqualValues(t, "2021-11-12 (3 days ago)", FormatDate("2021-11-12 10:30:00"))
	assert.EqualValues(t, "soon", FormatDate("soon"))
}

func Test_FormatValues(t *testing.T) {
	n := int64(1289068)
	assert.EqualValues(t, "1,289,068", FormatCount(&n))
	assert.EqualValues(t, "-", FormatCount(nil))

	assert.EqualValues(t, "free", FormatCents(0))
	assert.EqualValues(t, "$5.00", FormatCents(500))
	assert.EqualValues(t, "$1,234.50", FormatCents(123450))

	s := "X Moon"
	assert.EqualValues(t, "X Moon", FormatOptional(&s))
	assert.EqualValues(t, "-", FormatOptional(nil))

	assert.EqualValues(t, "windows, linux", FormatList([]string{"windows", "linux"}))
	assert.EqualValues(t, "-", FormatList(nil))
}
