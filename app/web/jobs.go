package web

import (
	"net/http"
	"strings"

	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

type jobRequest struct {
	ID          string   `json:"id" validate:"omitempty,max=64"`
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Skills      []string `json:"skills" validate:"dive,required"`
	Type        string   `json:"type" validate:"required,oneof=full-time part-time"`
	PostedDate  string   `json:"postedDate" validate:"omitempty,datetime=2006-01-02"`
}

// jobDetailResponse is the JSON response for a single job
type jobDetailResponse struct {
	Job      store.Job              `json:"job"`
	Provider *store.ProviderProfile `json:"provider"` // null if the provider never signed up
	Applied  bool                   `json:"applied"`  // signed-in seeker applied for the job
}

type applyResponse struct {
	Status enums.ApplyOutcome `json:"status"`
}

type applicantsResponse struct {
	JobID      string   `json:"jobId"`
	Applicants []string `json:"applicants"`
}

// handleListJobs returns cached jobs, optionally filtered by type and search term
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.board.Jobs()
	if typ := r.URL.Query().Get("type"); typ != "" {
		jt, err := enums.ParseJobType(typ)
		if err != nil {
			s.writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		jobs = s.board.JobsByType(jt)
	}
	s.writeJSON(w, http.StatusOK, searchJobs(jobs, r.URL.Query().Get("q")))
}

// handleJobDetail returns the job with its provider profile and the application state of the signed-in seeker
func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadJob(w, r)
	if !ok {
		return
	}

	resp := jobDetailResponse{Job: *job}
	provider, err := s.identity.ProviderProfile(r.Context(), job.ProviderUsername)
	if err != nil {
		s.writeManagerError(w, err, "failed to load provider")
		return
	}
	resp.Provider = provider

	if id := s.identity.Current(); id.Authenticated() && id.User.Type == enums.UserTypeSeeker {
		if resp.Applied, err = s.board.HasApplied(r.Context(), job.ID, id.User.Username); err != nil {
			s.writeManagerError(w, err, "failed to check application")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleAddJob posts a new job on behalf of the signed-in provider
func (s *Server) handleAddJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	jt, err := enums.ParseJobType(req.Type)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	job := store.Job{
		ID:               req.ID,
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Description:      req.Description,
		Skills:           store.Skills(req.Skills),
		Type:             jt,
		PostedDate:       req.PostedDate,
		ProviderUsername: signedIn(r).Username,
	}
	res, err := s.board.AddJob(r.Context(), job)
	if err != nil {
		s.writeManagerError(w, err, "failed to add job")
		return
	}
	s.writeJSON(w, http.StatusCreated, res)
}

// handleApply submits application of the signed-in seeker
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadJob(w, r)
	if !ok {
		return
	}
	res, err := s.board.Apply(r.Context(), *job, signedIn(r).Username)
	if err != nil {
		s.writeManagerError(w, err, "failed to apply")
		return
	}
	s.writeJSON(w, http.StatusOK, applyResponse{Status: res})
}

// handleApplicants lists applicants of a job owned by the signed-in provider
func (s *Server) handleApplicants(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadJob(w, r)
	if !ok {
		return
	}
	if job.ProviderUsername != signedIn(r).Username {
		s.writeJSONError(w, http.StatusForbidden, "not the job owner")
		return
	}
	applicants, err := s.board.Applicants(r.Context(), job.ID)
	if err != nil {
		s.writeManagerError(w, err, "failed to load applicants")
		return
	}
	s.writeJSON(w, http.StatusOK, applicantsResponse{JobID: job.ID, Applicants: applicants})
}

// loadJob gets job by path id, writes 404 and returns false if absent
func (s *Server) loadJob(w http.ResponseWriter, r *http.Request) (*store.Job, bool) {
	job, err := s.board.JobByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeManagerError(w, err, "failed to load job")
		return nil, false
	}
	if job == nil {
		s.writeJSONError(w, http.StatusNotFound, "job not found")
		return nil, false
	}
	return job, true
}

// searchJobs filters jobs by search term, case-insensitive match of title, company, location and skills
func searchJobs(jobs []store.Job, searchTerm string) []store.Job {
	if searchTerm == "" {
		return jobs
	}

	searchLower := strings.ToLower(searchTerm)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), searchLower) }
	filtered := make([]store.Job, 0, len(jobs))
	for _, job := range jobs {
		if contains(job.Title) || contains(job.Company) || contains(job.Location) {
			filtered = append(filtered, job)
			continue
		}
		for _, skill := range job.Skills {
			if contains(skill) {
				filtered = append(filtered, job)
				break
			}
		}
	}
	return filtered
}
