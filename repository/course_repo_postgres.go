package repository

import (
	"database/sql"
	"time"

	"coursecatalog/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresCourseRepo struct {
	DB *sql.DB
}

func NewPostgresCourseRepo(db *sql.DB) *PostgresCourseRepo {
	return &PostgresCourseRepo{DB: db}
}

func (r *PostgresCourseRepo) CreateCourse(course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Exec(`
		INSERT INTO courses (id, title, description, icon, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, course.ID, course.Title, course.Description, course.Icon, course.CreatedAt)
	return err
}

func (r *PostgresCourseRepo) GetAllCourses() ([]*models.Course, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, description, icon, created_at
		FROM courses ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func scanCourses(rows *sql.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Icon, &course.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *PostgresCourseRepo) GetCourseByID(id string) (*models.Course, error) {
	course := &models.Course{}
	err := r.DB.QueryRow(`
		SELECT id, title, description, icon, created_at
		FROM courses WHERE id = $1
	`, id).Scan(&course.ID, &course.Title, &course.Description, &course.Icon, &course.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

func (r *PostgresCourseRepo) GetCoursesByIDs(ids []string) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}

	rows, err := r.DB.Query(`
		SELECT id, title, description, icon, created_at
		FROM courses WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}

	// Preserve enrollment order; ids with no surviving course are skipped.
	byID := make(map[string]*models.Course, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	courses := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (r *PostgresCourseRepo) UpdateCourse(id string, course *models.Course) (*models.Course, error) {
	updated := &models.Course{}
	err := r.DB.QueryRow(`
		UPDATE courses SET title = $1, description = $2, icon = $3
		WHERE id = $4
		RETURNING id, title, description, icon, created_at
	`, course.Title, course.Description, course.Icon, id).Scan(
		&updated.ID, &updated.Title, &updated.Description, &updated.Icon, &updated.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (r *PostgresCourseRepo) DeleteCourse(id string) error {
	res, err := r.DB.Exec(`DELETE FROM courses WHERE id = $1`, id)
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

func (r *PostgresCourseRepo) DeleteAllCourses() error {
	_, err := r.DB.Exec(`DELETE FROM courses`)
	return err
}
