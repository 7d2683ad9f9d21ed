// SPDX-License-Identifier: MIT

package archive

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/solver"
)

// Run is one archived solve.
type Run struct {
	ID        string
	Created   time.Time
	System    physics.System
	Length    float64 // nm
	Intervals int
	Left      string
	Right     string

	Omega      float64
	Status     string
	Iterations int
	Residual   float64 // NaN when the solve ended on a NaN residual
	Potential  []float64
}

// NewRun captures a finished solve under a fresh ID.
func NewRun(p *solver.Problem, res *solver.Result) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Created:    time.Now().UTC(),
		System:     p.Profile.System(),
		Length:     p.Grid.Length(),
		Intervals:  p.Grid.Intervals(),
		Left:       p.Left.String(),
		Right:      p.Right.String(),
		Omega:      res.Omega,
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Potential:  append([]float64(nil), res.Potential...),
	}
}

// runRow is the table layout of a Run.
type runRow struct {
	ID            string          `db:"id"`
	CreatedUnix   int64           `db:"created_unix"`
	Temperature   float64         `db:"temperature"`
	Concentration float64         `db:"concentration"`
	CationValency int             `db:"cation_valency"`
	AnionValency  int             `db:"anion_valency"`
	Impurity      float64         `db:"impurity"`
	Length        float64         `db:"length_nm"`
	Intervals     int             `db:"intervals"`
	LeftBC        string          `db:"left_bc"`
	RightBC       string          `db:"right_bc"`
	Omega         float64         `db:"omega"`
	Status        string          `db:"status"`
	Iterations    int             `db:"iterations"`
	Residual      sql.NullFloat64 `db:"residual"`
	Potential     []byte          `db:"potential"`
}

const columns = `id, created_unix, temperature, concentration, cation_valency, anion_valency,
	impurity, length_nm, intervals, left_bc, right_bc, omega, status, iterations, residual, potential`

// Store wraps a SQLite connection holding the runs table.
type Store struct {
	conn *sqlx.DB
}

// dsnPragmas are applied by modernc.org/sqlite on every new connection.
const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// Open opens or creates the archive at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_unix INTEGER NOT NULL,
		temperature REAL NOT NULL,
		concentration REAL NOT NULL,
		cation_valency INTEGER NOT NULL,
		anion_valency INTEGER NOT NULL,
		impurity REAL NOT NULL,
		length_nm REAL NOT NULL,
		intervals INTEGER NOT NULL,
		left_bc TEXT NOT NULL,
		right_bc TEXT NOT NULL,
		omega REAL NOT NULL,
		status TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		residual REAL,
		potential BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_unix);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save inserts r, replacing an earlier run with the same ID.
func (s *Store) Save(r *Run) error {
	_, err := s.conn.NamedExec(`INSERT OR REPLACE INTO runs (`+columns+`) VALUES (
		:id, :created_unix, :temperature, :concentration, :cation_valency, :anion_valency,
		:impurity, :length_nm, :intervals, :left_bc, :right_bc, :omega, :status, :iterations,
		:residual, :potential)`, toRow(r))
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}

	return nil
}

// Run loads one run by ID.
func (s *Store) Run(id string) (*Run, error) {
	var row runRow
	err := s.conn.Get(&row, "SELECT "+columns+" FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, err
	}

	return fromRow(&row)
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]*Run, error) {
	var rows []runRow
	err := s.conn.Select(&rows,
		"SELECT "+columns+" FROM runs ORDER BY created_unix DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	out := make([]*Run, 0, len(rows))
	for i := range rows {
		r, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

func toRow(r *Run) *runRow {
	return &runRow{
		ID:            r.ID,
		CreatedUnix:   r.Created.Unix(),
		Temperature:   r.System.Temperature,
		Concentration: r.System.Concentration,
		CationValency: r.System.CationValency,
		AnionValency:  r.System.AnionValency,
		Impurity:      r.System.ImpurityConcentration,
		Length:        r.Length,
		Intervals:     r.Intervals,
		LeftBC:        r.Left,
		RightBC:       r.Right,
		Omega:         r.Omega,
		Status:        r.Status,
		Iterations:    r.Iterations,
		Residual:      sql.NullFloat64{Float64: r.Residual, Valid: !math.IsNaN(r.Residual)},
		Potential:     encode(r.Potential),
	}
}

func fromRow(row *runRow) (*Run, error) {
	phi, err := decode(row.Potential)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", row.ID, err)
	}
	residual := math.NaN()
	if row.Residual.Valid {
		residual = row.Residual.Float64
	}

	return &Run{
		ID:      row.ID,
		Created: time.Unix(row.CreatedUnix, 0).UTC(),
		System: physics.System{
			Temperature:           row.Temperature,
			Concentration:         row.Concentration,
			CationValency:         row.CationValency,
			AnionValency:          row.AnionValency,
			ImpurityConcentration: row.Impurity,
		},
		Length:     row.Length,
		Intervals:  row.Intervals,
		Left:       row.LeftBC,
		Right:      row.RightBC,
		Omega:      row.Omega,
		Status:     row.Status,
		Iterations: row.Iterations,
		Residual:   residual,
		Potential:  phi,
	}, nil
}

// encode packs φ as little-endian float64 words; NaN and ±Inf survive.
func encode(phi []float64) []byte {
	buf := make([]byte, 8*len(phi))
	for i, v := range phi {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	return buf
}

func decode(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("potential blob of %d bytes is not a float64 array", len(buf))
	}
	phi := make([]float64, len(buf)/8)
	for i := range phi {
		phi[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return phi, nil
}
