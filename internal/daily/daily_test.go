package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	local := time.Date(2026, 3, 2, 3, 0, 0, 0, loc) // still March 1st in UTC
	assert.Equal(t, "2026-03-01", DateKey(local))
}

func TestSeedIsStablePerDay(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Seed(morning, "salt"), Seed(evening, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(nextDay, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(morning, "pepper"))
}
