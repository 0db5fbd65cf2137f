package dtos

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	req := JobCreationRequest{
		Title:       "Backend Engineer",
		CompanyName: "Amazon",
		Location:    "Remote",
		JobType:     "Full-time",
		Description: "Build services.",
	}
	require.Empty(t, req.MissingFields())

	req.CompanyName = ""
	req.Description = ""
	require.Equal(t, []string{"companyName", "description"}, req.MissingFields())
}

func TestDeadline(t *testing.T) {
	req := JobCreationRequest{}
	d, err := req.Deadline()
	require.NoError(t, err)
	require.Nil(t, d)

	req.ApplicationDeadline = "2026-09-30"
	d, err = req.Deadline()
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), *d)

	req.ApplicationDeadline = "2026-09-30T17:00"
	d, err = req.Deadline()
	require.NoError(t, err)
	require.Equal(t, 17, d.Hour())

	req.ApplicationDeadline = "next tuesday"
	_, err = req.Deadline()
	require.True(t, errors.Is(err, ErrInvalidDeadline))
}
