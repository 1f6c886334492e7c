package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

func jobIDs(jobs []store.Job) []string {
	res := []string{}
	for _, j := range jobs {
		res = append(res, j.ID)
	}
	return res
}

func TestServer_ListJobs(t *testing.T) {
	env := prepServer(t, Config{})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"1", "2", "3", "4", "5", "6"}},
		{"full-time", "?type=full-time", []string{"1", "2", "4"}},
		{"part-time", "?type=part-time", []string{"3", "5", "6"}},
		{"search title", "?q=HARVESTER", []string{"3"}},
		{"search skills", "?q=organic", []string{"1"}},
		{"type and search", "?type=part-time&q=greenhouse", []string{"6"}},
		{"no match", "?q=astronaut", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := env.do(t, "GET", "/api/v1/jobs"+tt.query, nil)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, jobIDs(decodeJSON[[]store.Job](t, body)))
		})
	}

	code, _ := env.do(t, "GET", "/api/v1/jobs?type=weekly", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_JobDetail(t *testing.T) {
	env := prepServer(t, Config{})

	code, _ := env.do(t, "GET", "/api/v1/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	type detail struct {
		Job      store.Job              `json:"job"`
		Provider *store.ProviderProfile `json:"provider"`
		Applied  bool                   `json:"applied"`
	}
	code, body := env.do(t, "GET", "/api/v1/jobs/1", nil)
	require.Equal(t, http.StatusOK, code)
	d := decodeJSON[detail](t, body)
	assert.Equal(t, "Farm Manager", d.Job.Title)
	assert.Nil(t, d.Provider)
	assert.False(t, d.Applied)

	env.signup(t, "sam", "seeker")
	code, _ = env.do(t, "POST", "/api/v1/jobs/1/apply", nil)
	require.Equal(t, http.StatusOK, code)
	code, body = env.do(t, "GET", "/api/v1/jobs/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decodeJSON[detail](t, body).Applied)
}

func TestServer_AddJob(t *testing.T) {
	env := prepServer(t, Config{})
	job := map[string]any{"title": "Shepherd", "company": "Hill Farm", "location": "Highlands",
		"description": "look after the flock", "skills": []string{"Sheep Handling"}, "type": "full-time"}

	code, _ := env.do(t, "POST", "/api/v1/jobs", job)
	assert.Equal(t, http.StatusUnauthorized, code)

	env.signup(t, "sam", "seeker")
	code, _ = env.do(t, "POST", "/api/v1/jobs", job)
	assert.Equal(t, http.StatusForbidden, code)
	env.logout(t)

	env.signup(t, "pat", "provider")
	code, body := env.do(t, "POST", "/api/v1/jobs", job)
	require.Equal(t, http.StatusCreated, code, string(body))
	created := decodeJSON[store.Job](t, body)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PostedDate)
	assert.Equal(t, "pat", created.ProviderUsername)
	assert.Equal(t, enums.JobTypeFullTime, created.Type)

	code, body = env.do(t, "GET", "/api/v1/jobs?type=full-time", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, jobIDs(decodeJSON[[]store.Job](t, body)), created.ID)
	code, body = env.do(t, "GET", "/api/v1/jobs?type=part-time", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, jobIDs(decodeJSON[[]store.Job](t, body)), created.ID)

	t.Run("explicit id and date", func(t *testing.T) {
		j := map[string]any{"id": "x", "title": "Milker", "company": "Dairy", "location": "Vale", "description": "d",
			"type": "part-time", "postedDate": "2024-05-01"}
		code, body := env.do(t, "POST", "/api/v1/jobs", j)
		require.Equal(t, http.StatusCreated, code, string(body))
		created := decodeJSON[store.Job](t, body)
		assert.Equal(t, "x", created.ID)
		assert.Equal(t, "2024-05-01", created.PostedDate)
		assert.Equal(t, store.Skills{}, created.Skills)

		code, _ = env.do(t, "POST", "/api/v1/jobs", j)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("validation", func(t *testing.T) {
		before := len(env.board.Jobs())
		for _, j := range []map[string]any{
			{"company": "c", "location": "l", "description": "d", "type": "full-time"},
			{"title": "t", "company": "c", "location": "l", "description": "d", "type": "seasonal"},
			{"title": "t", "company": "c", "location": "l", "description": "d", "type": "full-time", "postedDate": "01/05/2024"},
			{"title": "t", "company": "c", "location": "l", "description": "d", "type": "full-time", "skills": []string{""}},
		} {
			code, body := env.do(t, "POST", "/api/v1/jobs", j)
			assert.Equal(t, http.StatusBadRequest, code, string(body))
		}
		assert.Len(t, env.board.Jobs(), before)
	})
}

func TestServer_Apply(t *testing.T) {
	env := prepServer(t, Config{})

	code, _ := env.do(t, "POST", "/api/v1/jobs/1/apply", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	env.signup(t, "pat", "provider")
	code, _ = env.do(t, "POST", "/api/v1/jobs/1/apply", nil)
	assert.Equal(t, http.StatusForbidden, code, "providers can't apply")
	env.logout(t)

	env.signup(t, "sam", "seeker")
	code, body := env.do(t, "POST", "/api/v1/jobs/1/apply", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "applied", decodeJSON[map[string]string](t, body)["status"])

	code, body = env.do(t, "POST", "/api/v1/jobs/1/apply", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "already-applied", decodeJSON[map[string]string](t, body)["status"])

	code, _ = env.do(t, "POST", "/api/v1/jobs/missing/apply", nil)
	assert.Equal(t, http.StatusNotFound, code)

	notifs, err := env.store.NotificationsByProvider(context.Background(), "provider1")
	require.NoError(t, err)
	assert.Len(t, notifs, 1)
}

func TestServer_Applicants(t *testing.T) {
	env := prepServer(t, Config{})

	env.signup(t, "pat", "provider")
	code, body := env.do(t, "POST", "/api/v1/jobs", map[string]any{"id": "p1", "title": "Picker", "company": "Orchard",
		"location": "Vale", "description": "d", "type": "part-time"})
	require.Equal(t, http.StatusCreated, code, string(body))

	code, body = env.do(t, "GET", "/api/v1/jobs/p1/applicants", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, decodeJSON[map[string]any](t, body)["applicants"], "empty list, not null")
	env.logout(t)

	for _, s := range []string{"zoe", "adam"} {
		env.signup(t, s, "seeker")
		code, _ := env.do(t, "POST", "/api/v1/jobs/p1/apply", nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = env.do(t, "GET", "/api/v1/jobs/p1/applicants", nil)
		assert.Equal(t, http.StatusForbidden, code, "seekers can't see applicants")
		env.logout(t)
	}

	env.login(t, "pat")
	code, body = env.do(t, "GET", "/api/v1/jobs/p1/applicants", nil)
	require.Equal(t, http.StatusOK, code)
	type applicants struct {
		JobID      string   `json:"jobId"`
		Applicants []string `json:"applicants"`
	}
	assert.Equal(t, applicants{JobID: "p1", Applicants: []string{"zoe", "adam"}}, decodeJSON[applicants](t, body))

	code, _ = env.do(t, "GET", "/api/v1/jobs/1/applicants", nil)
	assert.Equal(t, http.StatusForbidden, code, "not the owner")
	code, _ = env.do(t, "GET", "/api/v1/jobs/missing/applicants", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
