package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/ruralroots/jobboard/app/store"
)

type markReadRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

type notificationsResponse struct {
	Notifications []store.Notification `json:"notifications"`
	Unread        int                  `json:"unread"`
}

// dashboardResponse is the provider overview: own jobs, applicants per job and all notifications
type dashboardResponse struct {
	Jobs          []store.Job          `json:"jobs"`
	Applicants    map[string][]string  `json:"applicants"` // job id -> seeker usernames
	Notifications []store.Notification `json:"notifications"`
}

// handleNotifications returns cached unread notifications of the signed-in provider
func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	unread := s.board.Notifications()
	s.writeJSON(w, http.StatusOK, notificationsResponse{Notifications: unread, Unread: len(unread)})
}

// handleAllNotifications returns all notifications of the signed-in provider, newest first
func (s *Server) handleAllNotifications(w http.ResponseWriter, r *http.Request) {
	all, err := s.board.NotificationsForProvider(r.Context(), signedIn(r).Username)
	if err != nil {
		s.writeManagerError(w, err, "failed to load notifications")
		return
	}
	s.writeJSON(w, http.StatusOK, notificationsResponse{Notifications: all, Unread: countUnread(all)})
}

// handleMarkRead marks notifications of the signed-in provider read. Ids of other providers'
// notifications and unknown ids are skipped.
func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	username := signedIn(r).Username
	all, err := s.board.NotificationsForProvider(r.Context(), username)
	if err != nil {
		s.writeManagerError(w, err, "failed to load notifications")
		return
	}
	own := make(map[int64]bool, len(all))
	for _, n := range all {
		own[n.ID] = true
	}
	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		if own[id] {
			ids = append(ids, id)
			continue
		}
		log.Printf("[DEBUG] notification %d doesn't belong to %q, skipped", id, username)
	}

	if err := s.board.MarkRead(r.Context(), ids); err != nil {
		s.writeManagerError(w, err, "failed to mark notifications read")
		return
	}
	unread := s.board.Notifications()
	s.writeJSON(w, http.StatusOK, notificationsResponse{Notifications: unread, Unread: len(unread)})
}

// handleDashboard returns the provider overview and marks shown unread notifications read.
// Marking is best effort, a failure is logged and the response is still sent.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	username := signedIn(r).Username
	resp := dashboardResponse{Jobs: s.board.JobsByProvider(username), Applicants: map[string][]string{}}
	for _, job := range resp.Jobs {
		applicants, err := s.board.Applicants(r.Context(), job.ID)
		if err != nil {
			s.writeManagerError(w, err, "failed to load applicants")
			return
		}
		resp.Applicants[job.ID] = applicants
	}

	all, err := s.board.NotificationsForProvider(r.Context(), username)
	if err != nil {
		s.writeManagerError(w, err, "failed to load notifications")
		return
	}
	resp.Notifications = all

	unreadIDs := []int64{}
	for _, n := range all {
		if !n.Read {
			unreadIDs = append(unreadIDs, n.ID)
		}
	}
	if len(unreadIDs) > 0 {
		if err := s.board.MarkRead(r.Context(), unreadIDs); err != nil {
			log.Printf("[WARN] can't mark %d notifications of %q read, %v", len(unreadIDs), username, err)
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func countUnread(notifications []store.Notification) int {
	res := 0
	for _, n := range notifications {
		if !n.Read {
			res++
		}
	}
	return res
}
