// Package auth implements the identity manager of the job board. It owns the signed-in user,
// its role and profile, and mediates signup, login, logout and profile updates against the store.
// Only the active username survives restarts, kept by a session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"

	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

// errors returned by Manager
var (
	ErrDuplicateUser      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRoleMismatch       = errors.New("role mismatch")
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/token.go -pkg mocks -skip-ensure -fmt goimports . Token

// Store is the subset of store.Store used by Manager
type Store interface {
	CreateAccount(ctx context.Context, user store.User, seeker store.SeekerProfile, provider store.ProviderProfile) error
	GetUser(ctx context.Context, username string) (*store.User, error)
	GetSeekerProfile(ctx context.Context, username string) (*store.SeekerProfile, error)
	PutSeekerProfile(ctx context.Context, p store.SeekerProfile) error
	GetProviderProfile(ctx context.Context, username string) (*store.ProviderProfile, error)
	PutProviderProfile(ctx context.Context, p store.ProviderProfile) error
}

// Token keeps the active username between restarts
type Token interface {
	Load() (string, error)
	Save(username string) error
	Clear() error
}

// Profile is a role-tagged profile, exactly one of Seeker and Provider is set, matching Role
type Profile struct {
	Role     enums.UserType         `json:"role"`
	Seeker   *store.SeekerProfile   `json:"seeker,omitempty"`
	Provider *store.ProviderProfile `json:"provider,omitempty"`
}

// Identity is a snapshot of the session
type Identity struct {
	State   enums.SessionState `json:"state"`
	User    *store.User        `json:"user,omitempty"`
	Profile *Profile           `json:"profile,omitempty"`
}

// Authenticated returns true if identity belongs to a signed-in user
func (i Identity) Authenticated() bool { return i.State == enums.SessionStateAuthenticated && i.User != nil }

// Manager keeps the session state. All methods are safe for concurrent use,
// state-changing operations are serialized.
type Manager struct {
	store Store
	token Token
	cost  int // bcrypt cost

	opMu sync.Mutex // serializes signup, login, logout, update and restore

	mu      sync.RWMutex
	state   enums.SessionState
	user    *store.User
	profile *Profile
}

// NewManager makes an anonymous identity manager
func NewManager(st Store, tk Token) *Manager {
	return &Manager{store: st, token: tk, cost: bcrypt.DefaultCost, state: enums.SessionStateAnonymous}
}

// Signup creates the user with an empty profile for the role and signs it in.
// Fails with ErrDuplicateUser if the username is taken, state is unchanged in this case.
func (m *Manager) Signup(ctx context.Context, username, password string, role enums.UserType) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	prev := m.begin()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		m.restore(prev)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := store.User{Username: username, Password: string(hash), Type: role}
	seeker := store.SeekerProfile{Username: username, Skills: store.Skills{}}
	provider := store.ProviderProfile{Username: username}
	if err := m.store.CreateAccount(ctx, user, seeker, provider); err != nil {
		m.restore(prev)
		if errors.Is(err, store.ErrDuplicateKey) {
			return fmt.Errorf("signup %q: %w", username, ErrDuplicateUser)
		}
		return fmt.Errorf("signup %q: %w", username, err)
	}

	profile := &Profile{Role: role}
	if role == enums.UserTypeSeeker {
		profile.Seeker = &seeker
	} else {
		profile.Provider = &provider
	}
	m.authenticated(&user, profile)
	log.Printf("[INFO] signed up %q as %s", username, role)
	return nil
}

// Login checks credentials, loads the user with its profile and signs it in.
// Returns the role of the user. On failure the previous session is kept.
func (m *Manager) Login(ctx context.Context, username, password string) (enums.UserType, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	prev := m.begin()
	user, err := m.store.GetUser(ctx, username)
	if err != nil {
		m.restore(prev)
		return enums.UserType{}, fmt.Errorf("login %q: %w", username, err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		m.restore(prev)
		log.Printf("[WARN] failed login attempt for %q", username)
		return enums.UserType{}, ErrInvalidCredentials
	}

	profile, err := m.loadProfile(ctx, *user)
	if err != nil {
		m.restore(prev)
		return enums.UserType{}, fmt.Errorf("login %q: %w", username, err)
	}
	m.authenticated(user, profile)
	log.Printf("[INFO] logged in %q as %s", username, user.Type)
	return user.Type, nil
}

// Logout drops the session, stored records are kept
func (m *Manager) Logout() {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.logout()
}

// UpdateProfile writes the profile of the signed-in user and refreshes the cached copy from the store.
// The profile role must match the user role.
func (m *Manager) UpdateProfile(ctx context.Context, p Profile) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	id := m.Current()
	if !id.Authenticated() {
		return ErrNotAuthenticated
	}
	if p.Role != id.User.Type {
		return fmt.Errorf("%s can't update %s profile: %w", id.User.Type, p.Role, ErrRoleMismatch)
	}

	username := id.User.Username
	switch p.Role {
	case enums.UserTypeSeeker:
		if p.Seeker == nil {
			return fmt.Errorf("seeker profile missing: %w", ErrRoleMismatch)
		}
		sp := *p.Seeker
		sp.Username = username
		if sp.Skills == nil {
			sp.Skills = store.Skills{}
		}
		if err := m.store.PutSeekerProfile(ctx, sp); err != nil {
			return fmt.Errorf("update profile of %q: %w", username, err)
		}
	case enums.UserTypeProvider:
		if p.Provider == nil {
			return fmt.Errorf("provider profile missing: %w", ErrRoleMismatch)
		}
		pp := *p.Provider
		pp.Username = username
		if err := m.store.PutProviderProfile(ctx, pp); err != nil {
			return fmt.Errorf("update profile of %q: %w", username, err)
		}
	default:
		return fmt.Errorf("unknown role %q: %w", p.Role, ErrRoleMismatch)
	}

	profile, err := m.loadProfile(ctx, *id.User)
	if err != nil {
		return fmt.Errorf("reload profile of %q: %w", username, err)
	}
	m.mu.Lock()
	m.profile = profile
	m.mu.Unlock()
	log.Printf("[DEBUG] profile of %q updated", username)
	return nil
}

// Restore signs in the user saved in the session token. It never fails: any problem is logged and
// leaves the session anonymous. The token is cleared only if its user doesn't exist anymore,
// storage failures keep it for the next start.
func (m *Manager) Restore(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	username, err := m.token.Load()
	if err != nil {
		log.Printf("[WARN] can't load session token, %v", err)
		m.anonymous()
		return
	}
	if username == "" {
		return
	}

	user, err := m.store.GetUser(ctx, username)
	if err != nil {
		log.Printf("[WARN] can't restore session of %q, %v", username, err)
		m.anonymous()
		return
	}
	if user == nil {
		log.Printf("[WARN] can't restore session, user %q not found", username)
		m.logout()
		return
	}
	profile, err := m.loadProfile(ctx, *user)
	if err != nil {
		log.Printf("[WARN] can't restore profile of %q, %v", username, err)
		m.anonymous()
		return
	}

	m.mu.Lock()
	m.state, m.user, m.profile = enums.SessionStateAuthenticated, user, profile
	m.mu.Unlock()
	log.Printf("[INFO] session of %q restored", username)
}

// Current returns a snapshot of the session
func (m *Manager) Current() Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id := Identity{State: m.state}
	if m.user != nil {
		u := *m.user
		id.User = &u
	}
	if m.profile != nil {
		p := Profile{Role: m.profile.Role}
		if m.profile.Seeker != nil {
			sp := *m.profile.Seeker
			sp.Skills = append(store.Skills{}, sp.Skills...)
			p.Seeker = &sp
		}
		if m.profile.Provider != nil {
			pp := *m.profile.Provider
			p.Provider = &pp
		}
		id.Profile = &p
	}
	return id
}

// ProviderProfile returns the profile of any provider, nil if absent
func (m *Manager) ProviderProfile(ctx context.Context, username string) (*store.ProviderProfile, error) {
	p, err := m.store.GetProviderProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get provider %q: %w", username, err)
	}
	return p, nil
}

// loadProfile reads the role profile of the user. A missing profile is replaced by an empty one.
func (m *Manager) loadProfile(ctx context.Context, user store.User) (*Profile, error) {
	res := &Profile{Role: user.Type}
	switch user.Type {
	case enums.UserTypeSeeker:
		sp, err := m.store.GetSeekerProfile(ctx, user.Username)
		if err != nil {
			return nil, err
		}
		if sp == nil {
			sp = &store.SeekerProfile{Username: user.Username, Skills: store.Skills{}}
		}
		res.Seeker = sp
	case enums.UserTypeProvider:
		pp, err := m.store.GetProviderProfile(ctx, user.Username)
		if err != nil {
			return nil, err
		}
		if pp == nil {
			pp = &store.ProviderProfile{Username: user.Username}
		}
		res.Provider = pp
	default:
		return nil, fmt.Errorf("unknown role %q", user.Type)
	}
	return res, nil
}

type snapshot struct {
	state   enums.SessionState
	user    *store.User
	profile *Profile
}

// begin switches to authenticating and returns the state to get back to on failure
func (m *Manager) begin() snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := snapshot{state: m.state, user: m.user, profile: m.profile}
	m.state = enums.SessionStateAuthenticating
	return prev
}

func (m *Manager) restore(s snapshot) {
	m.mu.Lock()
	m.state, m.user, m.profile = s.state, s.user, s.profile
	m.mu.Unlock()
}

func (m *Manager) authenticated(user *store.User, profile *Profile) {
	m.mu.Lock()
	m.state, m.user, m.profile = enums.SessionStateAuthenticated, user, profile
	m.mu.Unlock()
	if err := m.token.Save(user.Username); err != nil {
		log.Printf("[WARN] can't save session token for %q, %v", user.Username, err)
	}
}

// anonymous drops the in-memory identity, the session token is kept
func (m *Manager) anonymous() {
	m.mu.Lock()
	m.state, m.user, m.profile = enums.SessionStateAnonymous, nil, nil
	m.mu.Unlock()
}

func (m *Manager) logout() {
	m.mu.Lock()
	username := ""
	if m.user != nil {
		username = m.user.Username
	}
	m.state, m.user, m.profile = enums.SessionStateAnonymous, nil, nil
	m.mu.Unlock()
	if err := m.token.Clear(); err != nil {
		log.Printf("[WARN] can't clear session token, %v", err)
	}
	if username != "" {
		log.Printf("[INFO] logged out %q", username)
	}
}
