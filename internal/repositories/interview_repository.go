package repositories

import (
	"errors"
	"time"

	"worknest_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	FindByApplicationID(applicationID string) (*models.Interview, error)
	Create(interview *models.Interview) error
	UpdateSchedule(interview *models.Interview) error
	UpdateStatus(applicationID string, status models.InterviewStatus) error
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) FindByApplicationID(applicationID string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.First(&interview, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

// UpdateSchedule rewrites date and time only. The room ID and status are
// deliberately left untouched: the room ID is assigned exactly once at
// creation and rescheduling keeps the interview scheduled.
func (r *InterviewRepositoryImpl) UpdateSchedule(interview *models.Interview) error {
	result := r.db.Model(&models.Interview{}).
		Where("application_id = ?", interview.ApplicationID).
		Updates(map[string]interface{}{
			"interview_date": interview.InterviewDate,
			"interview_time": interview.InterviewTime,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) UpdateStatus(applicationID string, status models.InterviewStatus) error {
	result := r.db.Model(&models.Interview{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
