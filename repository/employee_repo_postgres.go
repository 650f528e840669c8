package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"staffhub/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const employeeColumns = `id, first_name, last_name, email, position, department,
	salary, date_of_joining, profile_image, created_at, updated_at`

type PostgresEmployeeRepo struct {
	DB *sql.DB
}

func NewPostgresEmployeeRepo(db *sql.DB) *PostgresEmployeeRepo {
	return &PostgresEmployeeRepo{DB: db}
}

func (r *PostgresEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	now := time.Now().UTC()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO employees (id, first_name, last_name, email, position,
			department, salary, date_of_joining, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, emp.ID, emp.FirstName, emp.LastName, emp.Email,
		nullString(emp.Position), nullString(emp.Department),
		emp.Salary, emp.DateOfJoining, emp.ProfileImage,
		emp.CreatedAt, emp.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateKey
	}
	return err
}

func (r *PostgresEmployeeRepo) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id=$1`, id)
	return scanEmployee(row)
}

func (r *PostgresEmployeeRepo) FindAll(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepo) Search(ctx context.Context, department, position string) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := []interface{}{}
	if department != "" {
		args = append(args, "%"+escapeLike(department)+"%")
		query += fmt.Sprintf(` AND department ILIKE $%d ESCAPE '\'`, len(args))
	}
	if position != "" {
		args = append(args, "%"+escapeLike(position)+"%")
		query += fmt.Sprintf(` AND position ILIKE $%d ESCAPE '\'`, len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query+" ORDER BY created_at", args...)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepo) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.Employee, error) {
	sets := []string{"updated_at=$1"}
	args := []interface{}{time.Now().UTC()}
	for col, val := range fields {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), employeeColumns)

	emp, err := scanEmployee(r.DB.QueryRowContext(ctx, query, args...))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrDuplicateKey
	}
	return emp, err
}

func (r *PostgresEmployeeRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// escapeLike neutralizes LIKE metacharacters so search terms match
// literally, the same way the Mongo backend quotes its regex pattern.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	emp := &models.Employee{}
	var position, department, profileImage sql.NullString
	var salary sql.NullFloat64
	var dateOfJoining sql.NullTime

	err := row.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email,
		&position, &department, &salary, &dateOfJoining, &profileImage,
		&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	emp.Position = position.String
	emp.Department = department.String
	if salary.Valid {
		emp.Salary = &salary.Float64
	}
	if dateOfJoining.Valid {
		t := dateOfJoining.Time
		emp.DateOfJoining = &t
	}
	if profileImage.Valid {
		emp.ProfileImage = &profileImage.String
	}
	return emp, nil
}

func collectEmployees(rows *sql.Rows) ([]*models.Employee, error) {
	defer rows.Close()

	list := []*models.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	return list, rows.Err()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
