package services

import (
	"worknest_backend/internal/email"
)

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
	InterviewService   InterviewService
	UploadService      *UploadService
	EmailProvider      email.Provider
}
