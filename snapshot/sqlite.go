package snapshot

import (
	"context"
	"database/sql"

	"github.com/juju/errors"
	"github.com/katalvlaran/roadledger/core"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cities (
	idx  INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS roads (
	nbr      INTEGER PRIMARY KEY,
	from_idx INTEGER NOT NULL REFERENCES cities(idx),
	to_idx   INTEGER NOT NULL REFERENCES cities(idx),
	name     TEXT NOT NULL,
	budget   REAL NOT NULL
);
`

// SQLiteSink mirrors every snapshot into a SQLite database. Each Save replaces
// the cities and roads tables inside one transaction.
type SQLiteSink struct {
	db     *sql.DB
	path   string
	logger log.FieldLogger
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string, logger log.FieldLogger) (*SQLiteSink, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Annotatef(err, "unable to open sqlite db %s", path)
	}
	// Single writer; also keeps ":memory:" databases on one connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Annotatef(err, "unable to ping sqlite db %s", path)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Annotate(err, "unable to create snapshot schema")
	}
	logger.WithField("path", path).Debug("sqlite snapshot store opened")

	return &SQLiteSink{db: db, path: path, logger: logger}, nil
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// Save replaces the stored state with v.
func (s *SQLiteSink) Save(ctx context.Context, v *core.View) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Annotate(err, "unable to begin snapshot transaction")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM roads`); err != nil {
		return errors.Annotate(err, "unable to clear roads")
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM cities`); err != nil {
		return errors.Annotate(err, "unable to clear cities")
	}
	for _, c := range v.Cities() {
		if _, err = tx.ExecContext(ctx, `INSERT INTO cities (idx, name) VALUES (?, ?)`, c.Index, c.Name); err != nil {
			return errors.Annotatef(err, "unable to store city %q", c.Name)
		}
	}
	for _, r := range v.Roads() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO roads (nbr, from_idx, to_idx, name, budget) VALUES (?, ?, ?, ?, ?)`,
			r.Number, r.From.Index, r.To.Index, r.Name(), r.Budget); err != nil {
			return errors.Annotatef(err, "unable to store road %s", r.Name())
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Annotate(err, "unable to commit snapshot")
	}
	s.logger.WithFields(log.Fields{"path": s.path, "cities": v.CityCount()}).Debug("sqlite snapshot written")

	return nil
}

// StoredRoad is one row of the roads table.
type StoredRoad struct {
	Number int
	Name   string
	Budget float64
}

// Counts returns the number of stored cities and roads.
func (s *SQLiteSink) Counts(ctx context.Context) (cities, roads int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&cities); err != nil {
		return 0, 0, errors.Annotate(err, "unable to count cities")
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roads`).Scan(&roads); err != nil {
		return 0, 0, errors.Annotate(err, "unable to count roads")
	}

	return cities, roads, nil
}

// StoredRoads returns the stored road rows ordered by number.
func (s *SQLiteSink) StoredRoads(ctx context.Context) ([]StoredRoad, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT nbr, name, budget FROM roads ORDER BY nbr`)
	if err != nil {
		return nil, errors.Annotate(err, "unable to query roads")
	}
	defer rows.Close()

	var out []StoredRoad
	for rows.Next() {
		var r StoredRoad
		if err := rows.Scan(&r.Number, &r.Name, &r.Budget); err != nil {
			return nil, errors.Annotate(err, "unable to scan road")
		}
		out = append(out, r)
	}

	return out, errors.Trace(rows.Err())
}
