package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worknest_backend/internal/admission"
	"worknest_backend/internal/logger"
	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Notifier pushes real-time events into a signaling room. The interview
// service only needs the push side of the hub.
type Notifier interface {
	NotifyRoom(roomID, event string, payload interface{})
}

type InterviewService interface {
	Schedule(ctx context.Context, employerID string, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error)
	GetRoom(userID, applicationID string, now time.Time) (*dto.RoomResponse, error)
	ListForEmployer(employerID string) ([]dto.InterviewDetail, error)
	ListForApplicant(applicantID string) ([]dto.InterviewDetail, error)
	UpdateStatus(employerID string, req *dto.UpdateInterviewStatusRequest) error
}

type InterviewServiceImpl struct {
	interviewRepo   repositories.InterviewRepository
	applicationRepo repositories.ApplicationRepository
	notifier        Notifier
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	applicationRepo repositories.ApplicationRepository,
	notifier Notifier,
) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

// Schedule creates or reschedules the interview for an accepted
// application. The first call mints the room ID; rescheduling rewrites
// only the date and time, so the room link handed out earlier stays
// valid.
func (s *InterviewServiceImpl) Schedule(ctx context.Context, employerID string, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error) {
	application, err := s.applicationRepo.FindByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if application.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("You can only schedule interviews for your own applications")
	}
	if application.Status != models.ApplicationStatusAccepted {
		return nil, apperrors.NewBadRequestError("Interviews can only be scheduled for accepted applications")
	}

	date, err := time.Parse("2006-01-02", req.InterviewDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid interview date")
	}
	if _, err := admission.ScheduledStart(date, req.InterviewTime); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid interview time")
	}

	interview, err := s.interviewRepo.FindByApplicationID(req.ApplicationID)
	switch {
	case err == nil:
		interview.InterviewDate = date
		interview.InterviewTime = req.InterviewTime
		if err := s.interviewRepo.UpdateSchedule(interview); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrInterviewNotFound):
		interview = &models.Interview{
			ApplicationID: req.ApplicationID,
			EmployerID:    employerID,
			InterviewDate: date,
			InterviewTime: req.InterviewTime,
			RoomID:        uuid.NewString(),
			Status:        models.InterviewStatusScheduled,
		}
		if err := s.interviewRepo.Create(interview); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	resp := buildInterviewResponse(interview)

	if s.notifier != nil {
		s.notifier.NotifyRoom(interview.RoomID, "interview-scheduled", resp)
	}

	logger.CtxInfo(ctx, "interview scheduled",
		"application_id", interview.ApplicationID,
		"room_id", interview.RoomID,
		"date", req.InterviewDate,
		"time", req.InterviewTime)

	return &resp, nil
}

// GetRoom admits a participant to the interview room. Admission is open
// from the scheduled start until one hour after it; outside that window
// the room ID is withheld.
func (s *InterviewServiceImpl) GetRoom(userID, applicationID string, now time.Time) (*dto.RoomResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if application.ApplicantID != userID && application.EmployerID != userID {
		return nil, apperrors.NewForbiddenError("You are not a participant of this interview")
	}

	interview, err := s.interviewRepo.FindByApplicationID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err, "No interview scheduled for this application")
		}
		return nil, apperrors.InternalError(err)
	}

	if interview.Status != models.InterviewStatusScheduled {
		return nil, apperrors.NewBadRequestError("This interview is no longer scheduled")
	}

	start, err := interview.ScheduledStart()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := admission.Check(start, now); err != nil {
		switch {
		case errors.Is(err, admission.ErrTooEarly):
			return nil, apperrors.ErrRoomTooEarly
		case errors.Is(err, admission.ErrExpired):
			return nil, apperrors.ErrRoomExpired
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.RoomResponse{RoomID: interview.RoomID}, nil
}

func (s *InterviewServiceImpl) ListForEmployer(employerID string) ([]dto.InterviewDetail, error) {
	applications, err := s.applicationRepo.FindAcceptedByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildInterviewDetails(applications)
}

func (s *InterviewServiceImpl) ListForApplicant(applicantID string) ([]dto.InterviewDetail, error) {
	applications, err := s.applicationRepo.FindAcceptedByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildInterviewDetails(applications)
}

func (s *InterviewServiceImpl) UpdateStatus(employerID string, req *dto.UpdateInterviewStatusRequest) error {
	application, err := s.applicationRepo.FindByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "Application not found")
		}
		return apperrors.InternalError(err)
	}
	if application.EmployerID != employerID {
		return apperrors.NewForbiddenError("You can only manage interviews for your own applications")
	}

	interview, err := s.interviewRepo.FindByApplicationID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return apperrors.ErrNotFound(err, "No interview scheduled for this application")
		}
		return apperrors.InternalError(err)
	}

	next := models.InterviewStatus(req.Status)
	if !interview.Status.CanTransitionTo(next) {
		return apperrors.ErrInvalidStatus("interview",
			fmt.Sprintf("Cannot change status from %s to %s", interview.Status, next))
	}

	if err := s.interviewRepo.UpdateStatus(req.ApplicationID, next); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// buildInterviewDetails pairs each accepted application with its
// interview record, if one exists. Applications awaiting a schedule show
// up with an empty schedule and a pending marker.
func (s *InterviewServiceImpl) buildInterviewDetails(applications []models.Application) ([]dto.InterviewDetail, error) {
	details := make([]dto.InterviewDetail, 0, len(applications))
	for i := range applications {
		application := &applications[i]

		detail := dto.InterviewDetail{
			ApplicationID: application.ID,
			Status:        "awaiting_schedule",
		}
		if application.Job != nil {
			detail.JobTitle = application.Job.Title
		}
		if application.Applicant != nil {
			detail.ApplicantName = application.Applicant.Name
		}
		if application.Employer != nil {
			detail.EmployerName = application.Employer.Name
		}

		interview, err := s.interviewRepo.FindByApplicationID(application.ID)
		switch {
		case err == nil:
			detail.InterviewDate = interview.InterviewDate.Format("2006-01-02")
			detail.InterviewTime = interview.InterviewTime
			detail.Status = string(interview.Status)
			detail.RoomID = interview.RoomID
		case errors.Is(err, repositories.ErrInterviewNotFound):
			// keep the awaiting_schedule placeholder
		default:
			return nil, apperrors.InternalError(err)
		}

		details = append(details, detail)
	}
	return details, nil
}

func buildInterviewResponse(interview *models.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ApplicationID: interview.ApplicationID,
		InterviewDate: interview.InterviewDate.Format("2006-01-02"),
		InterviewTime: interview.InterviewTime,
		Status:        string(interview.Status),
		RoomID:        interview.RoomID,
	}
}
