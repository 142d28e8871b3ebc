package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountRoleValid(t *testing.T) {
	assert.True(t, RoleJobSeeker.Valid())
	assert.True(t, RoleEmployer.Valid())
	assert.False(t, AccountRole("admin").Valid())
	assert.False(t, AccountRole("").Valid())
}

func TestApplicationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusPending, ApplicationStatusPending, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusAccepted, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
		{ApplicationStatusPending, "archived", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestInterviewStatusTransitions(t *testing.T) {
	cases := []struct {
		from    InterviewStatus
		to      InterviewStatus
		allowed bool
	}{
		{InterviewStatusScheduled, InterviewStatusCompleted, true},
		{InterviewStatusScheduled, InterviewStatusCancelled, true},
		{InterviewStatusScheduled, InterviewStatusScheduled, false},
		{InterviewStatusCompleted, InterviewStatusCancelled, false},
		{InterviewStatusCancelled, InterviewStatusScheduled, false},
		{InterviewStatusScheduled, "postponed", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
