package repositories

import (
	"errors"
	"time"

	"worknest_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByID(id string) (*models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)
	FindByEmployer(employerID string) ([]models.Application, error)
	FindAcceptedByApplicant(applicantID string) ([]models.Application, error)
	FindAcceptedByEmployer(employerID string) ([]models.Application, error)
	Create(application *models.Application) error
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Employer").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Applicant").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindAcceptedByApplicant(applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Employer").
		Where("applicant_id = ? AND status = ?", applicantID, models.ApplicationStatusAccepted).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindAcceptedByEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Applicant").
		Where("employer_id = ? AND status = ?", employerID, models.ApplicationStatusAccepted).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
