package sessionsvc

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/schoolmed/console/core/auth"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS session (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	token      TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT '',
	subject    TEXT NOT NULL DEFAULT '',
	expires_at TIMESTAMP
);`

// SQLiteStore persists the session in a single-row sqlite table; used when
// several console invocations on the same machine must share one session
// without racing on a JSON file.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ auth.Store = (*SQLiteStore)(nil)

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening session db")
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating session table")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sessionRow struct {
	Token     string       `db:"token"`
	Role      string       `db:"role"`
	Subject   string       `db:"subject"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

func (s *SQLiteStore) Load() (auth.Session, error) {
	var row sessionRow
	err := s.db.Get(&row, `SELECT token, role, subject, expires_at FROM session WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Session{}, nil
		}
		return auth.Session{}, errors.Wrap(err, "loading session")
	}
	sess := auth.Session{
		Token:   row.Token,
		Role:    row.Role,
		Subject: row.Subject,
	}
	if row.ExpiresAt.Valid {
		sess.ExpiresAt = row.ExpiresAt.Time
	}
	return sess, nil
}

func (s *SQLiteStore) Save(sess auth.Session) error {
	var expiresAt interface{}
	if !sess.ExpiresAt.IsZero() {
		expiresAt = sess.ExpiresAt.UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, role, subject, expires_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			role = excluded.role,
			subject = excluded.subject,
			expires_at = excluded.expires_at`,
		sess.Token, sess.Role, sess.Subject, expiresAt,
	)
	return errors.Wrap(err, "saving session")
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session`)
	return errors.Wrap(err, "clearing session")
}
