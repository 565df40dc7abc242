package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"production-scheduler-backend/internal/config"
	"production-scheduler-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "scheduler"
	pgPassword = "scheduler"
	pgDatabase = "scheduler_test"
)

// One Postgres container serves every integration suite of a test binary
var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgDSN      string
)

// PostgresDB is a migrated Postgres database shared by integration suites
type PostgresDB struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPostgresDB starts the shared container on first use and returns a handle to it
func NewPostgresDB(t testing.TB) *PostgresDB {
	t.Helper()
	pgOnce.Do(func() { pgInitErr = startPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to start postgres container: %v", pgInitErr)
	}
	return &PostgresDB{DB: pgDB, Config: integrationConfig(pgDSN)}
}

// Truncate empties every table the application migrates
func (p *PostgresDB) Truncate() error {
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: p.DB}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse %T: %w", model, err)
		}
		if err := p.DB.Exec(`TRUNCATE TABLE "` + stmt.Schema.Table + `" CASCADE`).Error; err != nil {
			return fmt.Errorf("truncate %s: %w", stmt.Schema.Table, err)
		}
	}
	return nil
}

// RunWithPostgres runs the tests of a package and purges the shared container afterwards,
// also when the run is interrupted. Use it from TestMain.
func RunWithPostgres(m *testing.M) int {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		logrus.Warn("Integration tests interrupted, purging postgres container")
		StopPostgres()
		os.Exit(1)
	}()

	code := m.Run()
	StopPostgres()
	return code
}

// StopPostgres closes the shared connection and purges the container
func StopPostgres() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool != nil && pgResource != nil {
		if err := pgPool.Purge(pgResource); err != nil {
			logrus.Warnf("Could not purge postgres container: %v", err)
		}
		pgPool, pgResource = nil, nil
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	pgDSN = fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", pgDSN)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(pgDSN, &database.Options{LogLevel: logger.Silent, MaxOpenConns: 10})
		if err != nil {
			return err
		}
		pgDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres not ready: %w", err)
	}

	logrus.Infof("Postgres test container ready on port %s", resource.GetPort("5432/tcp"))
	return nil
}

func integrationConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:         dsn,
		Environment:         "test",
		LogLevel:            "debug",
		Timezone:            "UTC",
		JWTSecret:           "test-secret",
		MachinePrefix:       "VMC",
		MachinePoolSize:     2,
		MachineOperatorTeam: "production",
		SetupWindowStart:    "06:00",
		SetupWindowEnd:      "22:00",
	}
}
