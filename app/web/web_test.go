package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruralroots/jobboard/app/auth"
	"github.com/ruralroots/jobboard/app/board"
	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/session"
	"github.com/ruralroots/jobboard/app/store"
)

type testEnv struct {
	ts       *httptest.Server
	store    *store.Store
	identity *auth.Manager
	board    *board.Manager
}

// sessionResp mirrors sessionResponse for decoding
type sessionResp struct {
	State   string        `json:"state"`
	User    *store.User   `json:"user"`
	Profile *auth.Profile `json:"profile"`
	Unread  int           `json:"unread"`
}

func prepServer(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	t.Cleanup(func() { _ = st.Close() })

	env := &testEnv{store: st, identity: auth.NewManager(st, session.New("")), board: board.NewManager(st)}
	require.NoError(t, env.board.Load(context.Background(), ""))

	cfg.Identity, cfg.Board, cfg.Version = env.identity, env.board, "test"
	if cfg.LoginRate == 0 {
		cfg.LoginRate = 1000
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	env.ts = httptest.NewServer(srv.routes())
	t.Cleanup(env.ts.Close)
	return env
}

// do sends request with body encoded as JSON, returns status and response body
func (e *testEnv) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != nil {
		if s, ok := body.(string); ok {
			rdr = bytes.NewBufferString(s)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			rdr = bytes.NewReader(data)
		}
	}
	req, err := http.NewRequest(method, e.ts.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func (e *testEnv) signup(t *testing.T, username, role string) {
	t.Helper()
	code, body := e.do(t, "POST", "/api/v1/signup", map[string]string{"username": username, "password": "secret",
		"confirmPassword": "secret", "role": role})
	require.Equal(t, http.StatusCreated, code, string(body))
}

func (e *testEnv) login(t *testing.T, username string) {
	t.Helper()
	code, body := e.do(t, "POST", "/api/v1/login", map[string]string{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, code, string(body))
}

func (e *testEnv) logout(t *testing.T) {
	t.Helper()
	code, _ := e.do(t, "POST", "/api/v1/logout", nil)
	require.Equal(t, http.StatusOK, code)
}

func decodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(data, &res), string(data))
	return res
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Identity is required")

	st := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	defer st.Close()
	_, err = New(Config{Identity: auth.NewManager(st, session.New(""))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Board is required")

	srv, err := New(Config{Identity: auth.NewManager(st, session.New("")), Board: board.NewManager(st)})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, srv.loginRate, 0.001)
	assert.Equal(t, int64(4*1024*1024), srv.maxBodySize)
}

func TestServer_Ping(t *testing.T) {
	env := prepServer(t, Config{})
	code, body := env.do(t, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Run(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	defer st.Close()
	srv, err := New(Config{Identity: auth.NewManager(st, session.New("")), Board: board.NewManager(st)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}

// blockingBoard holds Jobs calls until released
type blockingBoard struct {
	*board.Manager
	started chan struct{}
	release chan struct{}
}

func (b *blockingBoard) Jobs() []store.Job {
	close(b.started)
	<-b.release
	return b.Manager.Jobs()
}

func TestServer_RunDrainsRequests(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	defer st.Close()
	brd := board.NewManager(st)
	require.NoError(t, brd.Load(context.Background(), ""))
	slow := &blockingBoard{Manager: brd, started: make(chan struct{}), release: make(chan struct{})}
	srv, err := New(Config{Identity: auth.NewManager(st, session.New("")), Board: slow})
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, addr) }()
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	respCode := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + addr + "/api/v1/jobs") //nolint:noctx // test
		if err != nil {
			respCode <- 0
			return
		}
		_ = resp.Body.Close()
		respCode <- resp.StatusCode
	}()
	<-slow.started
	cancel()

	select {
	case <-done:
		t.Fatal("run returned with a request in flight")
	case <-time.After(200 * time.Millisecond):
	}

	close(slow.release)
	assert.Equal(t, http.StatusOK, <-respCode)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run didn't return after drain")
	}
}

// loggedOutIdentity reports the signed-in user on the first call only, as if logout happened
// right after the role check
type loggedOutIdentity struct {
	*auth.Manager
	user  store.User
	calls atomic.Int32
}

func (l *loggedOutIdentity) Current() auth.Identity {
	if l.calls.Add(1) == 1 {
		u := l.user
		return auth.Identity{State: enums.SessionStateAuthenticated, User: &u}
	}
	return auth.Identity{State: enums.SessionStateAnonymous}
}

func TestServer_HandlersUseCheckedUser(t *testing.T) {
	tbl := []struct {
		name   string
		user   store.User
		method string
		path   string
		body   string
		code   int
	}{
		{"all notifications", store.User{Username: "provider1", Type: enums.UserTypeProvider},
			"GET", "/api/v1/notifications/all", "", http.StatusOK},
		{"dashboard", store.User{Username: "provider1", Type: enums.UserTypeProvider},
			"GET", "/api/v1/dashboard", "", http.StatusOK},
		{"mark read", store.User{Username: "provider1", Type: enums.UserTypeProvider},
			"POST", "/api/v1/notifications/read", `{"ids":[1]}`, http.StatusOK},
		{"applicants", store.User{Username: "provider1", Type: enums.UserTypeProvider},
			"GET", "/api/v1/jobs/1/applicants", "", http.StatusOK},
		{"apply", store.User{Username: "sam", Type: enums.UserTypeSeeker},
			"POST", "/api/v1/jobs/1/apply", "", http.StatusOK},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			st := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
			defer st.Close()
			brd := board.NewManager(st)
			require.NoError(t, brd.Load(context.Background(), ""))
			id := &loggedOutIdentity{Manager: auth.NewManager(st, session.New("")), user: tt.user}
			srv, err := New(Config{Identity: id, Board: brd})
			require.NoError(t, err)

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_SizeLimit(t *testing.T) {
	env := prepServer(t, Config{MaxBodySize: 1024})
	big := map[string]string{"username": string(bytes.Repeat([]byte("a"), 2048)), "password": "x"}
	code, _ := env.do(t, "POST", "/api/v1/login", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
}

func TestSearchJobs(t *testing.T) {
	jobs := []store.Job{
		{ID: "1", Title: "Farm Manager", Company: "Green Valley", Location: "RuralTown", Skills: store.Skills{"Agronomy"}},
		{ID: "2", Title: "Harvester", Company: "Orchard Co", Location: "Applefield", Skills: store.Skills{"Ladder Safety"}},
		{ID: "3", Title: "Vet Tech", Company: "Animal Care", Location: "Farmville", Skills: nil},
	}
	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"farm", []string{"1", "3"}},
		{"ORCHARD", []string{"2"}},
		{"agronomy", []string{"1"}},
		{"safety", []string{"2"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			ids := []string{}
			for _, j := range searchJobs(jobs, tt.term) {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
