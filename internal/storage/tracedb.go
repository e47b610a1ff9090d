package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

var ErrDBExists = errors.New("trace database already exists")

const schema = `
CREATE TABLE samples (
	frame  INTEGER,
	time   REAL,
	entity INTEGER,
	label  TEXT,
	kind   TEXT,
	x      REAL,
	y      REAL,
	angle  REAL,
	vx     REAL,
	vy     REAL);
CREATE INDEX idx_frame ON samples (frame, entity);
`

const insertSample = `INSERT INTO samples VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
const queryFrame = `SELECT * FROM samples WHERE frame = ? ORDER BY entity ASC;`
const queryEntity = `SELECT * FROM samples WHERE entity = ? ORDER BY frame ASC;`
const queryFrames = `SELECT COUNT(DISTINCT frame) FROM samples;`

// TraceDB stores samples in SQLite, one transaction per frame. It is a Sink.
type TraceDB struct {
	db     *sql.DB
	insert *sql.Stmt
}

// CreateTraceDB makes a fresh database at filename. An existing file is
// never overwritten.
func CreateTraceDB(filename string) (*TraceDB, error) {
	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDBExists, filename)
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return prepare(db)
}

// OpenTraceDB opens an existing database for reading and appending.
func OpenTraceDB(filename string) (*TraceDB, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", "file:"+filename)
	if err != nil {
		return nil, err
	}
	return prepare(db)
}

func prepare(db *sql.DB) (*TraceDB, error) {
	stmt, err := db.Prepare(insertSample)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &TraceDB{db: db, insert: stmt}, nil
}

func (t *TraceDB) WriteFrame(samples []Sample) error {
	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	stmt := tx.Stmt(t.insert)
	for _, s := range samples {
		if _, err := stmt.Exec(s.Frame, s.Time, s.Entity, s.Label, s.Kind, s.X, s.Y, s.Angle, s.VX, s.VY); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Frame returns the samples of one frame in entity order.
func (t *TraceDB) Frame(frame int) ([]Sample, error) {
	return t.query(queryFrame, frame)
}

// Entity returns one entity's samples in frame order.
func (t *TraceDB) Entity(entity int) ([]Sample, error) {
	return t.query(queryEntity, entity)
}

func (t *TraceDB) Frames() (int, error) {
	var n int
	err := t.db.QueryRow(queryFrames).Scan(&n)
	return n, err
}

func (t *TraceDB) query(q string, arg int) ([]Sample, error) {
	rows, err := t.db.Query(q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var s Sample
		if err := rows.Scan(&s.Frame, &s.Time, &s.Entity, &s.Label, &s.Kind, &s.X, &s.Y, &s.Angle, &s.VX, &s.VY); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (t *TraceDB) Close() error {
	t.insert.Close()
	return t.db.Close()
}
