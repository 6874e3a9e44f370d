package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/assets"
	"github.com/chumchon-net/chumchon/internal/storage"
	"github.com/chumchon-net/chumchon/internal/storage/leveldb"
	"github.com/chumchon-net/chumchon/internal/storage/postgres"
)

var opts = struct {
	Genesis            string `long:"genesis" env:"GENESIS" default:"genesis.yaml" description:"path to genesis"`
	DryRun             bool   `long:"dry-run" env:"DRY_RUN" description:"print parsed genesis and exit"`
	Storage            string `long:"storage" env:"STORAGE" default:"postgres" description:"record store" choice:"postgres" choice:"leveldb"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
	LevelDBPath        string `long:"leveldb.path" env:"LEVELDB_PATH" default:"data/chumchon" description:"leveldb directory"`
}{}

type genesis struct {
	Balances []struct {
		Owner    address.Address `yaml:"owner"`
		Lamports uint64          `yaml:"lamports"`
	} `yaml:"balances"`
	TokenAccounts []struct {
		Account address.Address `yaml:"account"`
		Mint    address.Address `yaml:"mint"`
		Owner   address.Address `yaml:"owner"`
		Amount  uint64          `yaml:"amount"`
	} `yaml:"token_accounts"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "genesis"
	parser.LongDescription = "Genesis balances and token accounts importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("genesis import started")
	safe := opts
	if safe.Postgres != "" {
		safe.Postgres = "***"
	}
	logrus.Infof("%+v", safe)

	b, err := ioutil.ReadFile(opts.Genesis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read genesis")
	}

	var g genesis

	if err := yaml.Unmarshal(b, &g); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal genesis")
	}

	if opts.DryRun {
		spew.Dump(g)
		return
	}

	s, closer := mustGetStorage()
	defer closer()

	ctx := context.Background()

	if err := s.InTx(ctx, func(tx storage.Storage) error {
		for i, v := range g.Balances {
			if err := assets.Credit(ctx, tx, v.Owner, v.Lamports); err != nil {
				return fmt.Errorf("failed to credit %s: %w", v.Owner, err)
			}

			if (i+1)%20 == 0 {
				logrus.Infof("%d of %d balances imported", i+1, len(g.Balances))
			}
		}

		for i, v := range g.TokenAccounts {
			if err := assets.MintTo(ctx, tx, v.Account, v.Mint, v.Owner, v.Amount); err != nil {
				return fmt.Errorf("failed to mint to %s: %w", v.Account, err)
			}

			if (i+1)%20 == 0 {
				logrus.Infof("%d of %d token accounts imported", i+1, len(g.TokenAccounts))
			}
		}

		return nil
	}); err != nil {
		logrus.WithError(err).Fatal("failed to import genesis")
	}

	logrus.Infof("done: %d balances, %d token accounts", len(g.Balances), len(g.TokenAccounts))
}

func mustGetStorage() (storage.Storage, func()) {
	if opts.Storage == "leveldb" {
		db, err := leveldb.OpenFile(opts.LevelDBPath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open leveldb")
		}
		return leveldb.New(db), func() { _ = db.Close() }
	}

	db := mustGetDB()
	return postgres.New(db), func() { _ = db.Close() }
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

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

	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
