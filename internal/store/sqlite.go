package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"jobtrack-utils/pkg/models"
)

// ErrNotFound is returned when no job application matches the given ID.
var ErrNotFound = errors.New("job application not found")

// SQLiteStore persists job application records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS jobs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		company    TEXT NOT NULL,
		position   TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT '',
		job_url    TEXT NOT NULL DEFAULT '',
		salary_min INTEGER,
		salary_max INTEGER,
		status     TEXT NOT NULL DEFAULT 'wishlist',
		notes      TEXT NOT NULL DEFAULT '',
		date_added TEXT NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating jobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Create inserts a new job application record and returns it with its
// assigned ID.
func (s *SQLiteStore) Create(job models.JobCreate) (*models.JobApplication, error) {
	status := job.Status
	if status == "" {
		status = models.StatusWishlist
	}

	now := time.Now().UTC()

	res, err := s.db.Exec(`INSERT INTO jobs
		(company, position, location, job_url, salary_min, salary_max, status, notes, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.Company, job.Position, job.Location, job.JobURL,
		job.SalaryMin, job.SalaryMax, status, job.Notes, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted job id: %w", err)
	}

	return s.GetByID(id)
}

// GetByID returns the job application with the given ID, or ErrNotFound.
func (s *SQLiteStore) GetByID(id int64) (*models.JobApplication, error) {
	row := s.db.QueryRow(`SELECT id, company, position, location, job_url,
		salary_min, salary_max, status, notes, date_added
		FROM jobs WHERE id = ?`, id)

	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching job %d: %w", id, err)
	}
	return job, nil
}

// List returns all job applications, newest first. When status is non-empty
// only records with that status are returned.
func (s *SQLiteStore) List(status string) ([]models.JobApplication, error) {
	query := `SELECT id, company, position, location, job_url,
		salary_min, salary_max, status, notes, date_added
		FROM jobs`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY date_added DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobApplication{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job rows: %w", err)
	}

	return jobs, nil
}

// Update applies a partial update to the job application with the given ID and
// returns the updated record. Nil fields are left unchanged.
func (s *SQLiteStore) Update(id int64, update models.JobUpdate) (*models.JobApplication, error) {
	sets := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.Company != nil {
		appendSet("company", *update.Company)
	}
	if update.Position != nil {
		appendSet("position", *update.Position)
	}
	if update.Location != nil {
		appendSet("location", *update.Location)
	}
	if update.JobURL != nil {
		appendSet("job_url", *update.JobURL)
	}
	if update.SalaryMin != nil {
		appendSet("salary_min", *update.SalaryMin)
	}
	if update.SalaryMax != nil {
		appendSet("salary_max", *update.SalaryMax)
	}
	if update.Status != nil {
		appendSet("status", *update.Status)
	}
	if update.Notes != nil {
		appendSet("notes", *update.Notes)
	}

	if len(sets) == 0 {
		return s.GetByID(id)
	}

	args = append(args, id)
	query := "UPDATE jobs SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating job %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result for job %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

// Delete removes the job application with the given ID, or returns ErrNotFound.
func (s *SQLiteStore) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting job %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result for job %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row scanner) (*models.JobApplication, error) {
	var job models.JobApplication
	var dateAdded string

	err := row.Scan(&job.ID, &job.Company, &job.Position, &job.Location, &job.JobURL,
		&job.SalaryMin, &job.SalaryMax, &job.Status, &job.Notes, &dateAdded)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339, dateAdded)
	if err != nil {
		return nil, fmt.Errorf("parsing date_added %q: %w", dateAdded, err)
	}
	job.DateAdded = parsed

	return &job, nil
}
