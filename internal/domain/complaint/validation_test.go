package complaint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/upkeep/internal/domain/complaint"
)

func TestParseStatus(t *testing.T) {
	for raw, want := range map[string]complaint.Status{
		"NOT_STARTED": complaint.StatusNotStarted,
		"not_started": complaint.StatusNotStarted,
		" Started ":   complaint.StatusStarted,
		"complete":    complaint.StatusComplete,
	} {
		got, err := complaint.ParseStatus(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, want, got)
	}

	for _, raw := range []string{"", "DONE", "IN_PROGRESS", "COMPLETED"} {
		_, err := complaint.ParseStatus(raw)
		require.ErrorIs(t, err, complaint.ErrInvalidInput, "input %q", raw)
	}
}

func TestParsePriority(t *testing.T) {
	for raw, want := range map[string]complaint.Priority{
		"LOW":    complaint.PriorityLow,
		"normal": complaint.PriorityNormal,
		" High ": complaint.PriorityHigh,
	} {
		got, err := complaint.ParsePriority(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, want, got)
	}

	_, err := complaint.ParsePriority("URGENT")
	require.ErrorIs(t, err, complaint.ErrInvalidInput)
}
