package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/shade/app/server"
	"github.com/umputun/shade/app/store"
)

type options struct {
	DB string `short:"d" long:"db" env:"SHADE_DB" default:"shade.db" description:"database URL (sqlite file or postgres://...)"`

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /shade)"`
	} `group:"server" namespace:"server" env-namespace:"SHADE_SERVER"`

	Cache struct {
		MaxKeys int `long:"max-keys" env:"MAX_KEYS" default:"1000" description:"max cached preferences, 0 disables cache"`
	} `group:"cache" namespace:"cache" env-namespace:"SHADE_CACHE"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var opts options

var revision = "unknown"

func main() {
	fmt.Printf("shade %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	baseURL, err := validateBaseURL(o.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	log.Printf("[INFO] starting shade server on %s", o.Server.Address)

	prefStore, err := openStore(o.DB, o.Cache.MaxKeys)
	if err != nil {
		return err
	}
	defer prefStore.Close()

	srv, err := server.New(prefStore, server.Config{
		Address:     o.Server.Address,
		ReadTimeout: o.Server.ReadTimeout,
		Version:     revision,
		BaseURL:     baseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openStore opens the database and wraps it with a cache unless maxKeys is 0.
func openStore(dbURL string, maxKeys int) (store.Interface, error) {
	db, err := store.New(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if maxKeys <= 0 {
		return db, nil
	}
	cached, err := store.NewCached(db, maxKeys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	log.Printf("[DEBUG] preference cache enabled, max keys %d", maxKeys)
	return cached, nil
}

// validateBaseURL normalizes the base URL: leading slash, no trailing slash.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if baseURL[0] != '/' {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	for len(baseURL) > 1 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	if baseURL == "/" {
		return "", nil
	}
	return baseURL, nil
}

func setupLogs(debug bool) {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
