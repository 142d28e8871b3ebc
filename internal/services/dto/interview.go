package dto

type ScheduleInterviewRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
	InterviewDate string `json:"interview_date" validate:"required,datetime=2006-01-02"`
	InterviewTime string `json:"interview_time" validate:"required,datetime=15:04"`
}

type UpdateInterviewStatusRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
	Status        string `json:"status" validate:"required,is-interview-status"`
}

type InterviewResponse struct {
	ApplicationID string `json:"application_id"`
	InterviewDate string `json:"interview_date"`
	InterviewTime string `json:"interview_time"`
	Status        string `json:"status"`
	RoomID        string `json:"room_id"`
}

// InterviewDetail is one row of an interview listing: the accepted
// application plus its interview record, if any, with display fields
// resolved at read time.
type InterviewDetail struct {
	ApplicationID string `json:"application_id"`
	JobTitle      string `json:"job_title"`
	ApplicantName string `json:"applicant_name,omitempty"`
	EmployerName  string `json:"employer_name,omitempty"`
	InterviewDate string `json:"interview_date,omitempty"`
	InterviewTime string `json:"interview_time,omitempty"`
	Status        string `json:"status"`
	RoomID        string `json:"room_id,omitempty"`
}

type RoomResponse struct {
	RoomID string `json:"room_id"`
}
