package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/velocoach/velocoach/internal"
	"github.com/velocoach/velocoach/internal/config"
	"github.com/velocoach/velocoach/internal/logging"
	"github.com/velocoach/velocoach/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment: development or production")
	configPath := flag.String("config", "./config.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Printf("failed to load config: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "velocoach-service",
	})

	log.Infof("starting velocoach service, environment: %s", cfg.Environment)

	redisPassword := os.Getenv("VELOCOACH_REDIS_PASS")
	if redisPassword == "" {
		log.Warnln("redis password not set")
	}

	honeycombTracingEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombTracingEnabled {
		if os.Getenv("HONEYCOMB_API_KEY") == "" {
			log.Errorln("honeycomb tracing enabled, but api key not set")
		}
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		VersionInfo:             versionInfo(),
		RedisPassword:           redisPassword,
		HoneycombTracingEnabled: honeycombTracingEnabled,
	})
	if err != nil {
		log.Fatalf("failed to create server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

func versionInfo() string {
	commitHash, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("get last commit hash: %s", err)
		return "unknown"
	}
	return commitHash
}

func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(out)), nil
}
