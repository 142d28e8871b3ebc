package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. They mirror the repository
// contracts, including the sentinel errors.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(hashedToken string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken == hashedToken && u.ResetPasswordExpire != nil && u.ResetPasswordExpire.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.applications[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) findWhere(pred func(*models.Application) bool) []models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if pred(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (r *fakeApplicationRepo) FindByEmployer(employerID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool { return a.EmployerID == employerID }), nil
}

func (r *fakeApplicationRepo) FindAcceptedByApplicant(applicantID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool {
		return a.ApplicantID == applicantID && a.Status == models.ApplicationStatusAccepted
	}), nil
}

func (r *fakeApplicationRepo) FindAcceptedByEmployer(employerID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool {
		return a.EmployerID == employerID && a.Status == models.ApplicationStatusAccepted
	}), nil
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews map[string]*models.Interview // keyed by application ID
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[string]*models.Interview)}
}

func (r *fakeInterviewRepo) FindByApplicationID(applicationID string) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[applicationID]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, repositories.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) Create(interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	cp := *interview
	r.interviews[interview.ApplicationID] = &cp
	return nil
}

// UpdateSchedule mirrors the real repository: date and time only.
func (r *fakeInterviewRepo) UpdateSchedule(interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.interviews[interview.ApplicationID]
	if !ok {
		return repositories.ErrInterviewNotFound
	}
	stored.InterviewDate = interview.InterviewDate
	stored.InterviewTime = interview.InterviewTime
	return nil
}

func (r *fakeInterviewRepo) UpdateStatus(applicationID string, status models.InterviewStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.interviews[applicationID]
	if !ok {
		return repositories.ErrInterviewNotFound
	}
	stored.Status = status
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindActive() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if !j.Expired {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(employerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.PostedByID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

// fakeStorage keeps artifacts in memory.
type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return 0, fmt.Errorf("file not found: %s", path)
	}
	return int64(len(data)), nil
}

// recordingNotifier captures room events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
}

type notifiedEvent struct {
	RoomID  string
	Event   string
	Payload interface{}
}

func (n *recordingNotifier) NotifyRoom(roomID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{RoomID: roomID, Event: event, Payload: payload})
}
