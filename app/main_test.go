package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	opts.Log.Enabled = false
	assert.Equal(t, os.Stdout, setupLogs())
}

func Test_setupLogsToFile(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "jobboard.log")

	opts.Log.Enabled = true
	opts.Log.Filename = tmpfile
	opts.Log.MaxSize = 100
	opts.Log.MaxBackups = 7
	opts.Log.MaxAge = 0
	opts.Log.EnabledCompress = false
	defer func() {
		opts.Log.Enabled = false
		setupLogs()
	}()

	out := setupLogs()
	assert.IsType(t, &lumberjack.Logger{}, out)

	logger := out.(*lumberjack.Logger)
	assert.Equal(t, tmpfile, logger.Filename)
	assert.Equal(t, 100, logger.MaxSize)
	assert.Equal(t, 7, logger.MaxBackups)
	assert.Equal(t, 0, logger.MaxAge)
	assert.False(t, logger.Compress)
}

func Test_loadSeed(t *testing.T) {
	jobs, err := loadSeed("")
	require.NoError(t, err)
	assert.Nil(t, jobs, "embedded catalog")

	fname := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(fname, []byte("- {id: a, title: A, type: full-time, provider: p}\n"), 0o600))
	jobs, err = loadSeed(fname)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "a", jobs[0].ID)

	_, err = loadSeed(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fname, []byte("- {title: A}\n"), 0o600))
	_, err = loadSeed(fname)
	assert.Error(t, err)
}

func Test_run(t *testing.T) {
	dir := t.TempDir()
	port := chooseRandomUnusedPort(t)
	opts.DB = filepath.Join(dir, "data", "jobboard.db")
	opts.Session = filepath.Join(dir, "data", "session")
	opts.Seed = ""
	opts.Web.Address = fmt.Sprintf("127.0.0.1:%d", port)
	opts.Web.LoginRate = 100
	opts.Web.MaxBodySize = 1024 * 1024

	start := func() (cancel func()) {
		ctx, cancelCtx := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- run(ctx) }()
		waitForServer(t, opts.Web.Address)
		return func() {
			cancelCtx()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server didn't stop")
			}
		}
	}

	base := "http://" + opts.Web.Address
	stop := start()
	resp := postJSON(t, base+"/api/v1/signup",
		`{"username":"pat","password":"secret","confirmPassword":"secret","role":"provider"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = getURL(t, base+"/api/v1/jobs")
	var jobs []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jobs))
	_ = resp.Body.Close()
	assert.Len(t, jobs, 6)
	stop()

	// restart restores the session from the token file
	stop = start()
	defer stop()
	resp = getURL(t, base+"/api/v1/session")
	var sess map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	_ = resp.Body.Close()
	assert.Equal(t, "authenticated", sess["state"])
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body)) //nolint:noctx // test
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp
}

func getURL(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // test
	require.NoError(t, err)
	return resp
}

func chooseRandomUnusedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func waitForServer(t *testing.T, addr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 50*time.Millisecond)
}
