package announce

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleased(t *testing.T) {
	type test struct {
		in              string
		previous        string
		majorOrSecurity bool
		rc              bool
	}
	tests := []test{
		{in: "6.1.4", previous: "6.1.3"},
		{in: "6.1.0", previous: "6.1.-1", majorOrSecurity: true},
		{in: "6.0.3.1", previous: "6.0.2", majorOrSecurity: true},
		{in: "6.1.4.rc1", previous: "6.1.3", rc: true},
		{in: "7.0.1.beta1", previous: "7.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := NewReleased(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.previous, r.Previous())
			assert.Equal(t, tt.majorOrSecurity, r.MajorOrSecurity())
			assert.Equal(t, tt.rc, r.RC())
		})
	}
}

// a Wednesday
var announceDay = time.Date(2021, time.June, 9, 12, 0, 0, 0, time.UTC)

func TestDraft_RejectsMajorAndSecurity(t *testing.T) {
	var out strings.Builder
	err := Draft(t.Context(), "Frame", []string{"6.1.0"}, "", announceDay, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only valid for patch releases")

	err = Draft(t.Context(), "Frame", []string{"6.1.4", "6.0.3.1"}, "", announceDay, &out)
	require.Error(t, err)
}

func TestDraft_Patch(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Draft(t.Context(), "Frame", []string{"6.1.4"}, "", announceDay, &out))
	got := out.String()
	assert.Contains(t, got, "Frame 6.1.4 has been released")
	assert.Contains(t, got, "## CHANGES since 6.1.3")
	assert.NotContains(t, got, "final release on")
}

func TestDraft_RC(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Draft(t.Context(), "Frame", []string{"6.1.4.rc1"}, "", announceDay, &out))
	got := out.String()
	// June 14, 2021: five days out lands on Monday already
	assert.Contains(t, got, "final release on Monday, June 14, 2021")
}

func TestDraft_SortsVersions(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Draft(t.Context(), "Frame",
		[]string{"6.1.4", "5.2.6", "6.0.9"}, "", announceDay, &out))
	got := out.String()
	assert.Contains(t, got, "Frame 5.2.6, 6.0.9 and 6.1.4 have been released")
	assert.Contains(t, got, "## CHANGES since 5.2.5")
}

func TestFinalReleaseDate(t *testing.T) {
	type test struct {
		name string
		now  time.Time
		want time.Time
	}
	day := func(d int) time.Time { return time.Date(2021, time.June, d, 12, 0, 0, 0, time.UTC) }
	tests := []test{
		// Wednesday + 5 = Monday
		{name: "lands on weekday", now: day(9), want: day(14)},
		// Monday + 5 = Saturday, advance to Monday
		{name: "lands on Saturday", now: day(7), want: day(14)},
		// Tuesday + 5 = Sunday, advance to Monday
		{name: "lands on Sunday", now: day(8), want: day(14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finalReleaseDate(tt.now))
		})
	}
}
