package repositories

import (
	"errors"
	"time"

	"worknest_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindActive() ([]models.Job, error)
	FindByEmployer(employerID string) ([]models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("PostedBy").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindActive returns all postings that have not expired, with the
// posting employer preloaded for read-time display fields.
func (r *JobRepositoryImpl) FindActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("PostedBy").
		Where("expired = ?", false).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("PostedBy").
		Where("posted_by_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"requirement": job.Requirement,
		"type":        job.Type,
		"experience":  job.Experience,
		"salary":      job.Salary,
		"vacancy":     job.Vacancy,
		"deadline":    job.Deadline,
		"expired":     job.Expired,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
