package web

import (
	"context"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/ruralroots/jobboard/app/auth"
	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

type signupRequest struct {
	Username        string `json:"username" validate:"required,max=64"`
	Password        string `json:"password" validate:"required,max=72"` // bcrypt input limit
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=seeker provider"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=seeker provider"` // expected role, if any
}

type profileRequest struct {
	Role     string                 `json:"role" validate:"required,oneof=seeker provider"`
	Seeker   *store.SeekerProfile   `json:"seeker" validate:"required_if=Role seeker"`
	Provider *store.ProviderProfile `json:"provider" validate:"required_if=Role provider"`
}

// sessionResponse is the JSON response for session endpoints
type sessionResponse struct {
	State   enums.SessionState `json:"state"`
	User    *store.User        `json:"user,omitempty"`
	Profile *auth.Profile      `json:"profile,omitempty"`
	Unread  int                `json:"unread"`
}

// handleSignup creates the account and signs it in
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	role, err := enums.ParseUserType(req.Role)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.identity.Signup(r.Context(), req.Username, req.Password, role); err != nil {
		s.writeManagerError(w, err, "failed to sign up")
		return
	}
	s.refreshNotifications(r.Context())
	s.writeJSON(w, http.StatusCreated, s.session())
}

// handleLogin checks credentials. With expected role set, a user of another role is signed out again.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	role, err := s.identity.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeManagerError(w, err, "failed to log in")
		return
	}
	if req.Role != "" && req.Role != role.String() {
		log.Printf("[WARN] %q logged in as %s, expected %s", req.Username, role, req.Role)
		s.identity.Logout()
		s.refreshNotifications(r.Context())
		s.writeManagerError(w, auth.ErrRoleMismatch, "failed to log in")
		return
	}
	s.refreshNotifications(r.Context())
	s.writeJSON(w, http.StatusOK, s.session())
}

// handleLogout drops the session
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.identity.Logout()
	s.refreshNotifications(r.Context())
	s.writeJSON(w, http.StatusOK, s.session())
}

// handleSession returns the current session with the unread notifications count
func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session())
}

// handleUpdateProfile writes the profile of the signed-in user
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	role, err := enums.ParseUserType(req.Role)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := auth.Profile{Role: role}
	switch role {
	case enums.UserTypeSeeker:
		p.Seeker = req.Seeker
	case enums.UserTypeProvider:
		p.Provider = req.Provider
	}
	if err := s.identity.UpdateProfile(r.Context(), p); err != nil {
		s.writeManagerError(w, err, "failed to update profile")
		return
	}
	s.writeJSON(w, http.StatusOK, s.session())
}

// handleProviderProfile returns public profile of a provider
func (s *Server) handleProviderProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	p, err := s.identity.ProviderProfile(r.Context(), username)
	if err != nil {
		s.writeManagerError(w, err, "failed to load provider")
		return
	}
	if p == nil {
		s.writeJSONError(w, http.StatusNotFound, "provider not found")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) session() sessionResponse {
	id := s.identity.Current()
	resp := sessionResponse{State: id.State, User: id.User, Profile: id.Profile}
	if id.Authenticated() && id.User.Type == enums.UserTypeProvider {
		resp.Unread = len(s.board.Notifications())
	}
	return resp
}

// refreshNotifications points the notifications cache to the signed-in provider, or clears it
func (s *Server) refreshNotifications(ctx context.Context) {
	provider := ""
	if id := s.identity.Current(); id.Authenticated() && id.User.Type == enums.UserTypeProvider {
		provider = id.User.Username
	}
	if err := s.board.FetchNotifications(ctx, provider); err != nil {
		log.Printf("[WARN] can't fetch notifications, %v", err)
	}
}
