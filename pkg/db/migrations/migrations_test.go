package migrations

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/fadedpez/blackjack/internal/logging"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type MigrationsTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func TestMigrationsSuite(t *testing.T) {
	suite.Run(t, new(MigrationsTestSuite))
}

func (s *MigrationsTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	db.SetMaxOpenConns(1)
	s.db = db
	s.ctx = context.Background()
}

func (s *MigrationsTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationsTestSuite) TestLoadMigrationsSorted() {
	fsys := fstest.MapFS{
		"m/002_second_step.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"m/001_first_step.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"m/README.md":           {Data: []byte("ignored")},
	}

	migrations, err := NewMigrator(s.db, fsys, "m", logging.Discard()).LoadMigrations()
	s.Require().NoError(err)
	s.Require().Len(migrations, 2)
	s.Equal("001", migrations[0].Version)
	s.Equal("first step", migrations[0].Description)
	s.Equal("002", migrations[1].Version)
}

func (s *MigrationsTestSuite) TestLoadMigrationsBadName() {
	fsys := fstest.MapFS{
		"m/nodescription.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := NewMigrator(s.db, fsys, "m", logging.Discard()).LoadMigrations()
	s.Error(err)
}

func (s *MigrationsTestSuite) TestMigrateUpEmbedded() {
	migrator := NewMigrator(s.db, Files, Dir, logging.Discard())

	count, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)

	for _, table := range []string{"rounds", "round_players", "player_statistics"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		s.NoError(err, table)
	}

	count, err = migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Zero(count, "applied migrations are skipped")
}

func (s *MigrationsTestSuite) TestMigrateUpRollsBackFailure() {
	fsys := fstest.MapFS{
		"m/001_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}

	_, err := NewMigrator(s.db, fsys, "m", logging.Discard()).MigrateUp(s.ctx)
	s.Error(err)

	applied, err := NewMigrator(s.db, fsys, "m", logging.Discard()).GetAppliedMigrations(s.ctx)
	s.Require().NoError(err)
	s.Empty(applied)
}
