package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DatesBetween(t *testing.T) {
	dates := DatesBetween(NewDate(2024, 1, 5), NewDate(2024, 1, 8))
	require.Equal(t, []time.Time{
		NewDate(2024, 1, 5),
		NewDate(2024, 1, 6),
		NewDate(2024, 1, 7),
		NewDate(2024, 1, 8),
	}, dates)

	// time components don't shift the calendar window
	withTime := time.Date(2024, 1, 5, 23, 30, 0, 0, time.UTC)
	require.Equal(t, dates, DatesBetween(withTime, NewDate(2024, 1, 8)))

	require.Empty(t, DatesBetween(NewDate(2024, 1, 8), NewDate(2024, 1, 5)))
}
