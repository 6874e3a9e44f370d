package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Decentr-net/logrus/sentry"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/events"
	"github.com/chumchon-net/chumchon/internal/health"
	"github.com/chumchon-net/chumchon/internal/metrics"
	"github.com/chumchon-net/chumchon/internal/server"
	"github.com/chumchon-net/chumchon/internal/service/impl"
	"github.com/chumchon-net/chumchon/internal/storage"
	"github.com/chumchon-net/chumchon/internal/storage/leveldb"
	"github.com/chumchon-net/chumchon/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host        string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port        int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	HTTPTimeout time.Duration `long:"http.timeout" env:"HTTP_TIMEOUT" default:"10s" description:"timeout for http requests"`
	MetricsPath string        `long:"metrics.path" env:"METRICS_PATH" default:"/metrics" description:"path prometheus metrics are served on"`

	Storage string `long:"storage" env:"STORAGE" default:"postgres" description:"record store" choice:"postgres" choice:"leveldb" choice:"memory"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	LevelDBPath string `long:"leveldb.path" env:"LEVELDB_PATH" default:"data/chumchon" description:"leveldb directory"`

	Program string `long:"program" env:"PROGRAM" required:"true" description:"base58 program id addresses are derived for"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	LogJSON   bool   `long:"log.json" env:"LOG_JSON" description:"write logs in json"`
	LogFile   string `long:"log.file" env:"LOG_FILE" description:"rotated log file, stderr only if empty"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

const redacted = "***"

// redactedOpts returns a copy of opts that is safe to log.
func redactedOpts() interface{} {
	v := opts
	if v.Postgres != "" {
		v.Postgres = redacted
	}
	if v.SentryDSN != "" {
		v.SentryDSN = redacted
	}
	return v
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Chumchon"
	parser.LongDescription = "Chumchon social records service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	setupLogger()

	logrus.Info("service started")
	logrus.Infof("%+v", redactedOpts())

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "chumchon",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	program, err := address.Parse(opts.Program)
	if err != nil {
		logrus.WithError(err).Fatal("invalid program id")
	}

	s, closer := mustGetStorage()
	defer closer()

	m := metrics.Default()
	srv := impl.New(s, address.NewDeriver(program),
		impl.WithEmitter(events.LogEmitter{Log: logrus.WithField("layer", "events")}),
		impl.WithMetrics(m),
	)

	r := chi.NewMux()
	r.Get("/health", health.Handler(5*time.Second, health.SubjectPinger("storage", s.Ping)))
	r.Method(http.MethodGet, opts.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}))
	r.Group(func(r chi.Router) {
		server.SetupRouter(srv, r, opts.HTTPTimeout)
	})

	hs := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		<-ctx.Done()

		shutdownCtx, done := context.WithTimeout(context.Background(), opts.HTTPTimeout)
		defer done()

		return hs.Shutdown(shutdownCtx)
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
			return nil
		}

		cancel()

		return errTerminated
	})

	logrus.Infof("listening on %s", hs.Addr)

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func setupLogger() {
	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if opts.LogFile != "" {
		logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}))
	}
}

func mustGetStorage() (storage.Storage, func()) {
	switch opts.Storage {
	case "postgres":
		db := mustGetDB()
		return postgres.New(db), func() { _ = db.Close() }
	case "leveldb":
		db, err := leveldb.OpenFile(opts.LevelDBPath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open leveldb")
		}
		return leveldb.New(db), func() { _ = db.Close() }
	default:
		logrus.Warn("records are kept in memory and lost on exit")

		db, err := leveldb.OpenMemory()
		if err != nil {
			logrus.WithError(err).Fatal("failed to open memory store")
		}
		return leveldb.New(db), func() { _ = db.Close() }
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
