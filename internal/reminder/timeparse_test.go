package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelay(t *testing.T) {
	cases := []struct {
		phrase string
		want   time.Duration
	}{
		{"10 seconds", 10 * time.Second},
		{"in 10 seconds", 10 * time.Second},
		{"5 minutes", 5 * time.Minute},
		{"1 hour", time.Hour},
		{"In 2 Hours", 2 * time.Hour},
		{"remind me in 30 second", 30 * time.Second},
	}

	for _, tc := range cases {
		got, err := ParseDelay(tc.phrase)
		require.NoError(t, err, "phrase %q", tc.phrase)
		assert.Equal(t, tc.want, got, "phrase %q", tc.phrase)
	}
}

func TestParseDelayRejectsMalformed(t *testing.T) {
	for _, phrase := range []string{
		"tomorrow",
		"next week",
		"seconds",
		"minute",
		"",
		"0 seconds",
		"-5 minutes",
	} {
		_, err := ParseDelay(phrase)
		assert.Error(t, err, "phrase %q", phrase)
	}
}
