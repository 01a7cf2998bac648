package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	// 2024-03-05 07:08:09 local time
	millis := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local).UnixMilli()

	assert.Equal(t, "03/05/2024", Date(millis), "date should be zero padded")
	assert.Equal(t, "07:08:09", Time(millis))
	assert.Equal(t, "03/05/2024 07:08:09", DateTime(millis))
}
