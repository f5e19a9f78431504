package repository

import (
	"database/sql"
	"time"

	"coursecatalog/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.EnrolledCourses == nil {
		user.EnrolledCourses = []string{}
	}

	_, err := r.DB.Exec(`
		INSERT INTO users (id, email, password, role, reset_token, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`, user.ID, user.Email, user.Password, user.Role, user.ResetToken, user.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.queryOne(`
		SELECT id, email, password, role, COALESCE(reset_token, ''), created_at
		FROM users WHERE email = $1
	`, email)
}

func (r *PostgresUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.queryOne(`
		SELECT id, email, password, role, COALESCE(reset_token, ''), created_at
		FROM users WHERE id = $1
	`, id)
}

func (r *PostgresUserRepo) queryOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(query, arg).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.ResetToken, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadEnrollments(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) loadEnrollments(user *models.User) error {
	rows, err := r.DB.Query(`
		SELECT course_id FROM enrollments
		WHERE user_id = $1
		ORDER BY enrolled_at
	`, user.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	user.EnrolledCourses = []string{}
	for rows.Next() {
		var courseID string
		if err := rows.Scan(&courseID); err != nil {
			return err
		}
		user.EnrolledCourses = append(user.EnrolledCourses, courseID)
	}
	return rows.Err()
}

func (r *PostgresUserRepo) GetAllUsers() ([]*models.User, error) {
	rows, err := r.DB.Query(`
		SELECT id, email, password, role, COALESCE(reset_token, ''), created_at
		FROM users ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.ResetToken, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, user := range users {
		if err := r.loadEnrollments(user); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *PostgresUserRepo) DeleteUser(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
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

func (r *PostgresUserRepo) SetResetToken(id, token string) error {
	res, err := r.DB.Exec(`UPDATE users SET reset_token = $1 WHERE id = $2`, token, id)
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

func (r *PostgresUserRepo) ConsumeResetToken(id, token, newHash string) error {
	// Matching on the stored token makes consumption single-use.
	res, err := r.DB.Exec(`
		UPDATE users SET password = $1, reset_token = NULL
		WHERE id = $2 AND reset_token = $3
	`, newHash, id, token)
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

func (r *PostgresUserRepo) EnrollCourse(userID, courseID string) error {
	// The composite primary key makes the insert race-safe; the losing
	// insert affects zero rows.
	res, err := r.DB.Exec(`
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`, userID, courseID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyEnrolled
	}
	return nil
}

func (r *PostgresUserRepo) DeleteAllUsers() error {
	_, err := r.DB.Exec(`DELETE FROM users`)
	return err
}
