package checkhistory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/go-libsql"
	"xnamath.theprimeagen.com/pkg/assert"
)

func checkTableExists(db *sqlx.DB) bool {
	query := `SELECT name
FROM sqlite_master
WHERE type='table' AND name='PropertyRuns';`

	var tableName string
	err := db.Get(&tableName, query)
	if err != nil {
		return false
	}
	return tableName == "PropertyRuns"
}

func (s *Sqlite) CreatePropertyRuns() error {
	if checkTableExists(s.db) {
		return nil
	}

	query := `
    CREATE TABLE PropertyRuns (
        run_id TEXT,
        property TEXT,
        seed INTEGER,
        samples INTEGER,
        checked INTEGER,
        failed INTEGER,
        worst_error REAL,
        created_at TEXT,
        PRIMARY KEY (run_id, property)
    );`

	_, err := s.db.Exec(query)
	if err != nil {
		return err
	}

	var createPropertyIndex = `CREATE INDEX idx_property ON PropertyRuns (property);`
	_, err = s.db.Exec(createPropertyIndex)

	return err
}

type Sqlite struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func ClearSQLiteFiles(path string) {
	path = strings.TrimPrefix(path, "file:")
	os.Remove(path)
	os.Remove(fmt.Sprintf("%s-shm", path))
	os.Remove(fmt.Sprintf("%s-wal", path))
}

// EnsureSqliteURI turns a plain path into the file: URI libsql expects.
func EnsureSqliteURI(path string) string {
	if strings.HasPrefix(path, "file:") || strings.HasPrefix(path, "libsql:") {
		return path
	}
	return "file:" + path
}

func NewSqlite(path string) (*Sqlite, error) {
	db, err := sqlx.Open("libsql", EnsureSqliteURI(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", path, err)
	}

	s := &Sqlite{
		db:     db,
		logger: slog.Default().With("area", "Sqlite"),
	}

	if err := s.CreatePropertyRuns(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create PropertyRuns: %w", err)
	}

	return s, nil
}

func (s *Sqlite) setPragma(name string, value string) {
	row := s.db.QueryRowx(fmt.Sprintf("PRAGMA %s=%s;", name, value))
	var v string
	err := row.Scan(&v)
	assert.NoError(err, "could not scan pragma row result", "err", err, "name", name, "value", value)
	s.logger.Debug(name, "value", v)
}

func (s *Sqlite) SetSqliteModes() {
	s.setPragma("busy_timeout", "3000")
	s.setPragma("journal_mode", "WAL")
}

func (s *Sqlite) Record(runs []PropertyRun) error {
	query := `INSERT OR REPLACE INTO PropertyRuns (run_id, property, seed, samples, checked, failed, worst_error, created_at)
VALUES (:run_id, :property, :seed, :samples, :checked, :failed, :worst_error, :created_at);`

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}

	for _, run := range runs {
		if _, err := tx.NamedExec(query, run); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording %s: %w", run.Property, err)
		}
	}

	s.logger.Info("recorded run", "runs", len(runs))
	return tx.Commit()
}

func (s *Sqlite) History(property string) ([]PropertyRun, error) {
	var runs []PropertyRun
	query := `SELECT run_id, property, seed, samples, checked, failed, worst_error, created_at
FROM PropertyRuns
WHERE property=?
ORDER BY created_at, run_id;`

	err := s.db.Select(&runs, query, property)
	if err != nil {
		return nil, err
	}

	return runs, nil
}

func (s *Sqlite) RunCount() (int, error) {
	var count int
	err := s.db.Get(&count, `SELECT COUNT(DISTINCT run_id) FROM PropertyRuns;`)
	return count, err
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
