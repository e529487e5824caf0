package utils_test

import (
	"processos/cmd/internal/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", utils.FormatEpoch(0))
	assert.Equal(t, "2024-03-01T12:00:00Z", utils.FormatEpoch(1709294400000))
}

func TestNowUTC(t *testing.T) {
	before := time.Now().UnixMilli()
	now := utils.NowUTC()
	assert.GreaterOrEqual(t, now, before)
	assert.LessOrEqual(t, now, time.Now().UnixMilli())
}
