package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	"github.com/mrmarton/REST-API/internal/pkg/dberrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByIDWithOwner(ctx context.Context, id int64) (*models.Course, error)
	GetAllWithOwner(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and returns the assigned id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		course.Title, course.Description, course.UserID).Scan(&id)

	if err != nil {
		// Owner row disappeared between the existence rule and the insert
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID without its owner
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM courses
		WHERE id = $1`,
		id).Scan(
		&course.ID, &course.Title, &course.Description, &course.UserID,
		&course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByIDWithOwner retrieves a course by ID with its owning user populated
func (r *CourseRepository) GetByIDWithOwner(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.title, c.description, c.user_id, c.created_at, c.updated_at,
		       u.id, u.first_name, u.last_name, u.email_address
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`,
		id).Scan(
		&course.ID, &course.Title, &course.Description, &course.UserID,
		&course.CreatedAt, &course.UpdatedAt,
		&course.User.ID, &course.User.FirstName, &course.User.LastName, &course.User.EmailAddress)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllWithOwner retrieves all courses with their owning users populated
func (r *CourseRepository) GetAllWithOwner(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.title, c.description, c.user_id, c.created_at, c.updated_at,
		       u.id, u.first_name, u.last_name, u.email_address
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{User: &models.User{}}
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.UserID,
			&course.CreatedAt, &course.UpdatedAt,
			&course.User.ID, &course.User.FirstName, &course.User.LastName, &course.User.EmailAddress,
		); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// Update persists new field values for a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, user_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`,
		course.Title, course.Description, course.UserID, course.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
