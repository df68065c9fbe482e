package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"atelier/config"
	"atelier/internal/domain/lifecycle"
	"atelier/internal/errors"
	"atelier/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config.Postgres
	if cfg == nil {
		return nil, errors.New("postgres config must be provided")
	}

	db, err := gorm.Open(postgres.Open(buildDSN(cfg)), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		// Translate driver errors into gorm.ErrDuplicatedKey and friends so
		// the constraint helpers can match on them.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if len(cfg.Replicas) > 0 {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicaDialectors(cfg),
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if cfg.Migrate {
				if err := runMigrations(ctx, sqlDB); err != nil {
					return errors.Wrap(err, "failed to run migrations")
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// buildDSN assembles a keyword/value DSN for the pgx driver.
func buildDSN(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.Port, cfg.UserName, cfg.Password, cfg.DBName, sslMode, timezone)
}

// replicaDialectors builds dialectors for the configured read replicas.
// Replicas share the primary's database name and TLS settings.
func replicaDialectors(cfg *config.PostgresConfig) []gorm.Dialector {
	dialectors := make([]gorm.Dialector, 0, len(cfg.Replicas))
	for _, replica := range cfg.Replicas {
		replicaCfg := *cfg
		replicaCfg.Host = replica.Host
		replicaCfg.Port = replica.Port
		replicaCfg.UserName = replica.UserName
		replicaCfg.Password = replica.Password
		dialectors = append(dialectors, postgres.Open(buildDSN(&replicaCfg)))
	}

	return dialectors
}

// runMigrations applies the embedded goose migrations against the primary.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
