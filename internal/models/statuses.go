package models

type AccountRole string
type ApplicationStatus string
type InterviewStatus string
type Gender string

const (
	RoleJobSeeker AccountRole = "job_seeker"
	RoleEmployer  AccountRole = "employer"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"

	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUndisclosed Gender = "prefer_not_to_say"
)

func (r AccountRole) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return true
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces the closed application lifecycle:
// pending -> accepted | rejected; accepted and rejected are terminal.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if !target.Valid() {
		return false
	}
	switch s {
	case ApplicationStatusPending:
		return target == ApplicationStatusAccepted || target == ApplicationStatusRejected
	default:
		return false
	}
}

func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the closed interview lifecycle:
// scheduled -> completed | cancelled; both are terminal. Rescheduling
// keeps the interview in scheduled and is not a transition.
func (s InterviewStatus) CanTransitionTo(target InterviewStatus) bool {
	if !target.Valid() {
		return false
	}
	switch s {
	case InterviewStatusScheduled:
		return target == InterviewStatusCompleted || target == InterviewStatusCancelled
	default:
		return false
	}
}
