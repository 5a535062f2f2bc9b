package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/app/repositories"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	"github.com/mrmarton/REST-API/internal/pkg/validation"
)

// Validation messages for course payloads. Create mirrors the NOT NULL and
// foreign key storage constraints; update checks presence only.
const (
	msgTitleNull       = "title cannot be null"
	msgDescriptionNull = "description cannot be null"
	msgUserIDNull      = "userId cannot be null"
	msgUserIDUnknown   = "userId must reference an existing user"

	msgTitleMissing       = "please provide a title"
	msgDescriptionMissing = "please provide a description"
	msgUserIDMissing      = "please provide a value for userId"

	msgNotOwnerUpdate = "you can only make changes to your own courses"
	msgNotOwnerDelete = "you can only delete your own courses"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (int64, error)
	UpdateCourse(ctx context.Context, identity *models.User, id int64, req *dto.UpdateCourseRequest) error
	DeleteCourse(ctx context.Context, identity *models.User, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// GetAllCourses retrieves all courses with their owners
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a single course with its owner
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// creationRules mirrors the storage-schema constraints on courses: the three
// NOT NULL columns plus the users foreign key.
func (s *courseServiceImpl) creationRules(req *dto.CreateCourseRequest) validation.RuleSet {
	return validation.RuleSet{
		{Field: "title", Message: msgTitleNull, Check: validation.Present(req.Title)},
		{Field: "description", Message: msgDescriptionNull, Check: validation.Present(req.Description)},
		{Field: "userId", Message: msgUserIDNull, Check: validation.Present(req.UserID)},
		{Field: "userId", Message: msgUserIDUnknown, Check: func(ctx context.Context) (bool, error) {
			if req.UserID == nil {
				// Already reported by the null rule
				return true, nil
			}
			_, err := s.userRepo.GetByID(ctx, *req.UserID)
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return true, nil
		}},
	}
}

// CreateCourse validates the payload against the storage constraints and
// creates the course.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (int64, error) {
	messages, err := s.creationRules(req).Evaluate(ctx)
	if err != nil {
		return 0, fmt.Errorf("error validating course: %w", err)
	}
	if len(messages) > 0 {
		return 0, apperrors.NewValidationError(messages)
	}

	course := &models.Course{
		Title:       *req.Title,
		Description: *req.Description,
		UserID:      *req.UserID,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, apperrors.NewValidationError([]string{msgUserIDUnknown})
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// updateRules checks that all three fields were supplied; empty values pass.
func updateRules(req *dto.UpdateCourseRequest) validation.RuleSet {
	return validation.RuleSet{
		{Field: "title", Message: msgTitleMissing, Check: validation.Present(req.Title)},
		{Field: "description", Message: msgDescriptionMissing, Check: validation.Present(req.Description)},
		{Field: "userId", Message: msgUserIDMissing, Check: validation.Present(req.UserID)},
	}
}

// UpdateCourse validates the payload, checks ownership and persists the new
// field values. Course existence is public information, so an absent course
// is reported before the ownership check.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, identity *models.User, id int64, req *dto.UpdateCourseRequest) error {
	messages, err := updateRules(req).Evaluate(ctx)
	if err != nil {
		return fmt.Errorf("error validating course: %w", err)
	}
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error retrieving course: %w", err)
	}

	if identity.ID != course.UserID {
		return apperrors.NewForbiddenError(msgNotOwnerUpdate)
	}

	course.Title = *req.Title
	course.Description = *req.Description
	course.UserID = *req.UserID

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewValidationError([]string{msgUserIDUnknown})
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// DeleteCourse checks ownership and removes the course
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, identity *models.User, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error retrieving course: %w", err)
	}

	if identity.ID != course.UserID {
		return apperrors.NewForbiddenError(msgNotOwnerDelete)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
