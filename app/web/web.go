// Package web implements the JSON API of the job board. It is a thin boundary over the identity
// and board managers: requests are validated here, before any manager call, and manager outcomes
// are mapped to HTTP statuses.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/go-playground/validator/v10"

	"github.com/ruralroots/jobboard/app/auth"
	"github.com/ruralroots/jobboard/app/board"
	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

// Server represents the web server
type Server struct {
	identity    Identity
	board       Board
	validate    *validator.Validate
	version     string
	loginRate   float64 // max login/signup requests per second per ip
	maxBodySize int64
}

// Identity is the session manager used by the server, implemented by auth.Manager
type Identity interface {
	Signup(ctx context.Context, username, password string, role enums.UserType) error
	Login(ctx context.Context, username, password string) (enums.UserType, error)
	Logout()
	UpdateProfile(ctx context.Context, p auth.Profile) error
	Current() auth.Identity
	ProviderProfile(ctx context.Context, username string) (*store.ProviderProfile, error)
}

// Board is the job and notification manager used by the server, implemented by board.Manager
type Board interface {
	Jobs() []store.Job
	JobsByType(t enums.JobType) []store.Job
	JobsByProvider(provider string) []store.Job
	AddJob(ctx context.Context, job store.Job) (store.Job, error)
	JobByID(ctx context.Context, id string) (*store.Job, error)
	Apply(ctx context.Context, job store.Job, seeker string) (enums.ApplyOutcome, error)
	HasApplied(ctx context.Context, jobID, seeker string) (bool, error)
	Applicants(ctx context.Context, jobID string) ([]string, error)
	FetchNotifications(ctx context.Context, provider string) error
	Notifications() []store.Notification
	NotificationsForProvider(ctx context.Context, provider string) ([]store.Notification, error)
	MarkRead(ctx context.Context, ids []int64) error
}

// Config holds server configuration
type Config struct {
	Identity    Identity
	Board       Board
	Version     string
	LoginRate   float64 // max login and signup requests per second per client, defaults to 5
	MaxBodySize int64   // max request size in bytes, defaults to 4MB (profile pictures are inlined)
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Identity == nil {
		return nil, fmt.Errorf("web server initialization failed: Identity is required")
	}
	if cfg.Board == nil {
		return nil, fmt.Errorf("web server initialization failed: Board is required")
	}

	s := &Server{
		identity:    cfg.Identity,
		board:       cfg.Board,
		validate:    validator.New(),
		version:     cfg.Version,
		loginRate:   cfg.LoginRate,
		maxBodySize: cfg.MaxBodySize,
	}
	if s.loginRate <= 0 {
		s.loginRate = 5
	}
	if s.maxBodySize <= 0 {
		s.maxBodySize = 4 * 1024 * 1024
	}
	return s, nil
}

// Run starts the web server and blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	<-shutdownDone // in-flight requests are drained
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobboard", "ruralroots", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(s.maxBodySize),
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	loginLimiter := tollbooth.NewLimiter(s.loginRate, nil)
	loginLimiter.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})

	seeker := s.requireRole(enums.UserTypeSeeker)
	provider := s.requireRole(enums.UserTypeProvider)

	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)

		// session
		api.With(tollbooth.HTTPMiddleware(loginLimiter)).HandleFunc("POST /signup", s.handleSignup)
		api.With(tollbooth.HTTPMiddleware(loginLimiter)).HandleFunc("POST /login", s.handleLogin)
		api.HandleFunc("POST /logout", s.handleLogout)
		api.HandleFunc("GET /session", s.handleSession)
		api.With(s.requireRole()).HandleFunc("PUT /profile", s.handleUpdateProfile)
		api.HandleFunc("GET /providers/{username}", s.handleProviderProfile)

		// jobs
		api.HandleFunc("GET /jobs", s.handleListJobs)
		api.HandleFunc("GET /jobs/{id}", s.handleJobDetail)
		api.With(provider).HandleFunc("POST /jobs", s.handleAddJob)
		api.With(seeker).HandleFunc("POST /jobs/{id}/apply", s.handleApply)
		api.With(provider).HandleFunc("GET /jobs/{id}/applicants", s.handleApplicants)

		// provider notifications
		api.With(provider).HandleFunc("GET /notifications", s.handleNotifications)
		api.With(provider).HandleFunc("GET /notifications/all", s.handleAllNotifications)
		api.With(provider).HandleFunc("POST /notifications/read", s.handleMarkRead)
		api.With(provider).HandleFunc("GET /dashboard", s.handleDashboard)
	})

	return router
}

// requireRole passes requests of the signed-in user with one of the roles, any role if none given
func (s *Server) requireRole(roles ...enums.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := s.identity.Current()
			if !id.Authenticated() {
				s.writeJSONError(w, http.StatusUnauthorized, "sign in required")
				return
			}
			// handlers use the user checked here, the shared session may change while they run
			r = r.WithContext(context.WithValue(r.Context(), userCtxKey{}, *id.User))
			if len(roles) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			for _, role := range roles {
				if id.User.Type == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			s.writeJSONError(w, http.StatusForbidden, fmt.Sprintf("not allowed for %s", id.User.Type))
		})
	}
}

type userCtxKey struct{}

// signedIn returns the user passed by requireRole, zero user for routes without it
func signedIn(r *http.Request) store.User {
	user, _ := r.Context().Value(userCtxKey{}).(store.User)
	return user
}

// decodeRequest reads JSON body into req and validates it, writes 400 and returns false on failure
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s, failed on %q", fe.Field(), fe.Tag()))
			return false
		}
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// writeManagerError maps manager errors to statuses, unknown errors are logged and reported as 500
func (s *Server) writeManagerError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotAuthenticated):
		s.writeJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrDuplicateUser), errors.Is(err, store.ErrDuplicateKey):
		s.writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrRoleMismatch):
		s.writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, board.ErrInvalidJob):
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] %s: %v", msg, err)
		s.writeJSONError(w, http.StatusInternalServerError, msg)
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}
