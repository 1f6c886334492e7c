package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ruralroots/jobboard/app/auth"
	"github.com/ruralroots/jobboard/app/board"
	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/session"
	"github.com/ruralroots/jobboard/app/store"
	"github.com/ruralroots/jobboard/app/web"
)

var opts struct {
	DB      string `short:"d" long:"db" env:"RURALROOTS_DB" default:"var/jobboard.db" description:"database file"`
	Session string `short:"s" long:"session" env:"RURALROOTS_SESSION" default:"var/session" description:"session token file, empty to keep in memory"`
	Seed    string `long:"seed" env:"RURALROOTS_SEED" description:"job catalog (yaml) for a fresh database, embedded catalog if not set"`
	Dbg     bool   `long:"dbg" env:"RURALROOTS_DEBUG" description:"debug mode"`

	Web struct {
		Address     string  `long:"address" env:"ADDRESS" default:"127.0.0.1:8080" description:"listen address"`
		LoginRate   float64 `long:"login-rate" env:"LOGIN_RATE" default:"5" description:"max login and signup requests per second"`
		MaxBodySize int64   `long:"max-body" env:"MAX_BODY" default:"4194304" description:"max request size in bytes"`
	} `group:"web" namespace:"web" env-namespace:"RURALROOTS_WEB"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobboard.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of old log files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to keep old log files"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"RURALROOTS_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobboard %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGTERM and SIGINT
	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run wires store, managers and web server and blocks until ctx is canceled.
// Store failures don't prevent the start, the session stays anonymous and requests report errors.
func run(ctx context.Context) error {
	seed, err := loadSeed(opts.Seed)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.DB), 0o700); err != nil {
		log.Printf("[WARN] can't make directory for %s, %v", opts.DB, err)
	}
	st := store.New(opts.DB, seed)
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] failed to close store, %v", err)
		}
	}()
	if err := st.Open(ctx); err != nil {
		log.Printf("[ERROR] store %s is not available, %v", opts.DB, err)
	}

	token := session.New(opts.Session)
	identity := auth.NewManager(st, token)
	identity.Restore(ctx)

	provider := ""
	if id := identity.Current(); id.Authenticated() && id.User.Type == enums.UserTypeProvider {
		provider = id.User.Username
	}
	jobBoard := board.NewManager(st)
	if err := jobBoard.Load(ctx, provider); err != nil {
		log.Printf("[WARN] %v", err)
	}

	srv, err := web.New(web.Config{
		Identity:    identity,
		Board:       jobBoard,
		Version:     revision,
		LoginRate:   opts.Web.LoginRate,
		MaxBodySize: opts.Web.MaxBodySize,
	})
	if err != nil {
		return fmt.Errorf("failed to make web server: %w", err)
	}
	log.Printf("[INFO] db: %s, session: %s, listen: %s", opts.DB, token, opts.Web.Address)
	return srv.Run(ctx, opts.Web.Address)
}

// loadSeed reads job catalog from file, nil for empty name
func loadSeed(fname string) ([]store.Job, error) {
	if fname == "" {
		return nil, nil
	}
	fh, err := os.Open(fname) //nolint:gosec // file name from cli options
	if err != nil {
		return nil, fmt.Errorf("failed to open seed %s: %w", fname, err)
	}
	defer fh.Close() //nolint:errcheck // read only
	jobs, err := store.LoadSeed(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed %s: %w", fname, err)
	}
	return jobs, nil
}

// setupLogs configures logger and returns the writer logs go to
func setupLogs() io.Writer {
	var out io.Writer = os.Stdout
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Out(out), log.Err(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return out
	}
	log.Setup(log.Out(out), log.Err(out), log.Msec)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] %s received, shutting down", sig)
			cancel() // terminate on SIGTERM and SIGINT
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, os.Interrupt)
}
