package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"worknest_backend/internal/services/dto"
	"worknest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullHiringFlow walks the happy path end to end: posting, applying,
// accepting, scheduling and joining the interview room.
func TestFullHiringFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterEmployer(t, ts)
	seekerToken, _ := helpers.RegisterJobSeeker(t, ts)

	job := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	// The posting is publicly listed
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var listing struct {
		Jobs  []dto.JobResponse `json:"jobs"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, job.ID, listing.Jobs[0].ID)

	application := helpers.SubmitApplication(t, ts, seekerToken, job.ID)
	assert.Equal(t, "pending", application.Status)
	assert.NotEmpty(t, application.Resume.URL)
	assert.NotEmpty(t, application.CoverLetter.URL)

	// The stored resume is retrievable through the artifact endpoint
	res, body = ts.SendRequest(t, http.MethodGet, application.Resume.URL, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "%PDF-1.4 resume", body)

	// The employer sees the application and accepts it
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/received", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var received struct {
		Applications []dto.ApplicationResponse `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &received))
	require.Len(t, received.Applications, 1)

	res, body = ts.SendRequest(t, http.MethodPut,
		"/api/v1/applications/"+application.ID+"/status", employerToken,
		map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Schedule for tomorrow: the room exists but is not joinable yet
	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/interviews/schedule", employerToken,
		map[string]string{
			"application_id": application.ID,
			"interview_date": tomorrow.Format("2006-01-02"),
			"interview_time": "10:00",
		})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var scheduled dto.InterviewResponse
	require.NoError(t, json.Unmarshal([]byte(body), &scheduled))
	require.NotEmpty(t, scheduled.RoomID)

	res, _ = ts.SendRequest(t, http.MethodGet,
		"/api/v1/interviews/"+application.ID+"/room", seekerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "room must be closed before the start")

	// Reschedule to right now: both sides get in, and the room survived
	// the reschedule
	now := time.Now().UTC()
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/interviews/schedule", employerToken,
		map[string]string{
			"application_id": application.ID,
			"interview_date": now.Format("2006-01-02"),
			"interview_time": now.Format("15:04"),
		})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var rescheduled dto.InterviewResponse
	require.NoError(t, json.Unmarshal([]byte(body), &rescheduled))
	assert.Equal(t, scheduled.RoomID, rescheduled.RoomID, "room ID must survive rescheduling")

	for _, token := range []string{seekerToken, employerToken} {
		res, body = ts.SendRequest(t, http.MethodGet,
			"/api/v1/interviews/"+application.ID+"/room", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var room dto.RoomResponse
		require.NoError(t, json.Unmarshal([]byte(body), &room))
		assert.Equal(t, scheduled.RoomID, room.RoomID)
	}

	// A third account is not admitted at all
	strangerToken, _ := helpers.RegisterJobSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet,
		"/api/v1/interviews/"+application.ID+"/room", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Complete the interview; the room endpoint closes with it
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/interviews/status", employerToken,
		map[string]string{"application_id": application.ID, "status": "completed"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet,
		"/api/v1/interviews/"+application.ID+"/room", seekerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRoleEnforcement(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterEmployer(t, ts)
	seekerToken, _ := helpers.RegisterJobSeeker(t, ts)

	// A job seeker cannot post jobs
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", seekerToken,
		map[string]interface{}{"title": "Sneaky Posting"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// An employer cannot submit applications
	res, _ = ts.SendMultipart(t, http.MethodPost, "/api/v1/applications", employerToken,
		map[string]string{"job_id": "irrelevant"}, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Anonymous callers cannot reach protected routes
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginIsRoleBound(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, seeker := helpers.RegisterJobSeeker(t, ts)

	// Correct credentials on the wrong side of the platform
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": seeker.Email, "password": "password123", "role": "employer"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Wrong password
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": seeker.Email, "password": "nope-nope-nope", "role": "job_seeker"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Both right
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": seeker.Email, "password": "password123", "role": "job_seeker"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestApplicationRejectsDisallowedArtifactType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterEmployer(t, ts)
	seekerToken, _ := helpers.RegisterJobSeeker(t, ts)
	job := helpers.CreateJob(t, ts, employerToken, "Designer")

	fields := map[string]string{
		"first_name": "Jane", "last_name": "Applicant",
		"email": "jane@test.com", "phone": "123456", "address": "Street 1",
		"job_id": job.ID,
	}
	files := []helpers.FilePart{
		{Field: "resume", Filename: "resume.exe", ContentType: "application/x-msdownload", Content: []byte("MZ")},
		{Field: "cover_letter", Filename: "cover.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
	}

	res, _ := ts.SendMultipart(t, http.MethodPost, "/api/v1/applications", seekerToken, fields, files)
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}

func TestJobFilterQuery(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterEmployer(t, ts)
	helpers.CreateJob(t, ts, employerToken, "Senior Go Developer")
	helpers.CreateJob(t, ts, employerToken, "Product Designer")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?title=go", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Jobs  []dto.JobResponse `json:"jobs"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "Senior Go Developer", listing.Jobs[0].Title)
}
