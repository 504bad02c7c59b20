package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateDateAddDaysFromNow(t *testing.T) {
	got := CreateDateAddDaysFromNow(7)
	want := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, want, got, 5*time.Second)
}

func TestEpochMillis(t *testing.T) {
	ts := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1685577600000), EpochMillis(ts))
}
