package services

import (
	"context"
	"strings"

	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"
)

type JobService interface {
	Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(employerID, jobID string, req *dto.UpdateJobRequest) error
	Delete(employerID, jobID string) error
	GetAll(ctx context.Context, filter dto.JobFilter) ([]dto.JobResponse, error)
	GetMine(ctx context.Context, employerID string) ([]dto.JobResponse, error)
	GetByID(ctx context.Context, jobID string) (*dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	uploads *UploadService
}

func NewJobService(jobRepo repositories.JobRepository, uploads *UploadService) JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
		uploads: uploads,
	}
}

func (s *JobServiceImpl) Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Requirement: req.Requirement,
		Type:        req.Type,
		Experience:  req.Experience,
		Salary:      req.Salary,
		Vacancy:     req.Vacancy,
		Deadline:    req.Deadline,
		PostedByID:  employerID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := s.buildJobResponse(context.Background(), job)
	return &resp, nil
}

// Update modifies a posting. Only the employer who posted it may touch
// it.
func (s *JobServiceImpl) Update(employerID, jobID string, req *dto.UpdateJobRequest) error {
	job, err := s.findOwnedJob(employerID, jobID)
	if err != nil {
		return err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirement != nil {
		job.Requirement = *req.Requirement
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Vacancy != nil {
		job.Vacancy = *req.Vacancy
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	if err := s.jobRepo.Update(job); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Delete(employerID, jobID string) error {
	if _, err := s.findOwnedJob(employerID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetAll lists active postings, narrowed by the filter. The filters
// compose conjunctively; title and address match case-insensitive
// substrings, address against the posting employer's profile.
func (s *JobServiceImpl) GetAll(ctx context.Context, filter dto.JobFilter) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs = filterJobs(jobs, filter)

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(ctx, &jobs[i]))
	}
	return responses, nil
}

func (s *JobServiceImpl) GetMine(ctx context.Context, employerID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(ctx, &jobs[i]))
	}
	return responses, nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.buildJobResponse(ctx, job)
	return &resp, nil
}

func (s *JobServiceImpl) findOwnedJob(employerID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.PostedByID != employerID {
		return nil, apperrors.NewForbiddenError("You can only modify jobs you posted")
	}
	return job, nil
}

// filterJobs applies the listing filters in memory. Volumes are small
// enough that read-time filtering over the active set is fine.
func filterJobs(jobs []models.Job, filter dto.JobFilter) []models.Job {
	out := jobs

	if filter.Type != "" {
		out = keep(out, func(j *models.Job) bool { return j.Type == filter.Type })
	}
	if filter.Experience != "" {
		out = keep(out, func(j *models.Job) bool { return j.Experience == filter.Experience })
	}
	if filter.Title != "" {
		needle := strings.ToLower(filter.Title)
		out = keep(out, func(j *models.Job) bool {
			return strings.Contains(strings.ToLower(j.Title), needle)
		})
	}
	if filter.Address != "" {
		needle := strings.ToLower(filter.Address)
		out = keep(out, func(j *models.Job) bool {
			return j.PostedBy != nil && strings.Contains(strings.ToLower(j.PostedBy.Address), needle)
		})
	}

	return out
}

func keep(jobs []models.Job, pred func(*models.Job) bool) []models.Job {
	filtered := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if pred(&jobs[i]) {
			filtered = append(filtered, jobs[i])
		}
	}
	return filtered
}

func (s *JobServiceImpl) buildJobResponse(ctx context.Context, job *models.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Requirement: job.Requirement,
		Type:        job.Type,
		Experience:  job.Experience,
		Salary:      job.Salary,
		Vacancy:     job.Vacancy,
		Deadline:    job.Deadline,
		Expired:     job.Expired,
		PostedOn:    job.CreatedAt,
	}

	if job.PostedBy != nil {
		resp.PostedBy = dto.PosterInfo{
			ID:                 job.PostedBy.ID,
			Name:               job.PostedBy.Name,
			PhotoURL:           s.uploads.URL(ctx, job.PostedBy.PhotoPath),
			CompanyDescription: job.PostedBy.CompanyDescription,
			Address:            job.PostedBy.Address,
		}
	}
	return resp
}
