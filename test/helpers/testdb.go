package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"worknest_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
)

// RegisterUser creates an account through the API and returns its token
// and user response. Registration signs the account in immediately.
func RegisterUser(t *testing.T, ts *TestServer, name, email, password, role string) (string, *dto.UserResponse) {
	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"phone":    "7771234567",
		"password": password,
		"role":     role,
	}

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: %s", resBody)

	var loginResponse dto.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(resBody), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)
	require.NotNil(t, loginResponse.User)

	return loginResponse.AccessToken, loginResponse.User
}

// RegisterEmployer creates an employer account with a unique email.
func RegisterEmployer(t *testing.T, ts *TestServer) (string, *dto.UserResponse) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	return RegisterUser(t, ts, "Test Employer", email, "password123", "employer")
}

// RegisterJobSeeker creates a job seeker account with a unique email.
func RegisterJobSeeker(t *testing.T, ts *TestServer) (string, *dto.UserResponse) {
	email := fmt.Sprintf("seeker_%d@test.com", time.Now().UnixNano())
	return RegisterUser(t, ts, "Test Seeker", email, "password123", "job_seeker")
}

// CreateJob posts a job as the given employer and returns its response.
func CreateJob(t *testing.T, ts *TestServer, employerToken, title string) *dto.JobResponse {
	body := map[string]interface{}{
		"title":       title,
		"description": "We are looking for a motivated person to join our growing team.",
		"requirement": "Relevant experience and a good attitude",
		"type":        "full-time",
		"experience":  "mid",
		"salary":      500000,
		"vacancy":     2,
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation should succeed: %s", resBody)

	var job dto.JobResponse
	require.NoError(t, json.Unmarshal([]byte(resBody), &job))
	return &job
}

// SubmitApplication applies to a job as the given seeker, attaching the
// two required PDF artifacts.
func SubmitApplication(t *testing.T, ts *TestServer, seekerToken, jobID string) *dto.ApplicationResponse {
	fields := map[string]string{
		"first_name": "Jane",
		"last_name":  "Applicant",
		"email":      "jane.applicant@test.com",
		"phone":      "7779876543",
		"address":    "12 Test Street",
		"skills":     "Go, SQL",
		"job_id":     jobID,
	}
	files := []FilePart{
		{Field: "resume", Filename: "resume.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 resume")},
		{Field: "cover_letter", Filename: "cover.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 cover")},
	}

	res, resBody := ts.SendMultipart(t, http.MethodPost, "/api/v1/applications", seekerToken, fields, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "application should succeed: %s", resBody)

	var application dto.ApplicationResponse
	require.NoError(t, json.Unmarshal([]byte(resBody), &application))
	return &application
}
