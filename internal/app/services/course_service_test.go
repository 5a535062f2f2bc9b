package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func idPtr(i int64) *int64    { return &i }

func courseFixtures() (*fakeUserRepo, *fakeCourseRepo) {
	userRepo := newFakeUserRepo(
		&models.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
		&models.User{ID: 2, FirstName: "Sally", LastName: "Jones", EmailAddress: "sally@jones.com"},
	)
	courseRepo := newFakeCourseRepo(
		&models.Course{ID: 10, Title: "Build a Basic Bookcase", Description: "Woodworking", UserID: 1},
	)
	return userRepo, courseRepo
}

func TestCreateCourse_Valid(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)

	req := &dto.CreateCourseRequest{
		Title:       strPtr("Learn How to Program"),
		Description: strPtr("Write code like a pro"),
		UserID:      idPtr(1),
	}

	id, err := service.CreateCourse(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, "Learn How to Program", courseRepo.courses[id].Title)
}

func TestCreateCourse_MissingFields(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)

	_, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"title cannot be null",
		"description cannot be null",
		"userId cannot be null",
	}, validationErr.Messages)
}

func TestCreateCourse_UnknownOwner(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)

	req := &dto.CreateCourseRequest{
		Title:       strPtr("Orphan course"),
		Description: strPtr("No such owner"),
		UserID:      idPtr(99),
	}

	_, err := service.CreateCourse(context.Background(), req)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"userId must reference an existing user"}, validationErr.Messages)
}

func TestCreateCourse_EmptyValuesPass(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)

	// Storage constraints are NOT NULL, not non-empty
	req := &dto.CreateCourseRequest{
		Title:       strPtr(""),
		Description: strPtr(""),
		UserID:      idPtr(1),
	}

	_, err := service.CreateCourse(context.Background(), req)
	assert.NoError(t, err)
}

func validUpdateRequest() *dto.UpdateCourseRequest {
	return &dto.UpdateCourseRequest{
		Title:       strPtr("Build a Better Bookcase"),
		Description: strPtr("More woodworking"),
		UserID:      idPtr(1),
	}
}

func TestUpdateCourse_Owner(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	owner := &models.User{ID: 1}

	err := service.UpdateCourse(context.Background(), owner, 10, validUpdateRequest())
	require.NoError(t, err)

	require.Len(t, courseRepo.updated, 1)
	assert.Equal(t, "Build a Better Bookcase", courseRepo.courses[10].Title)
	assert.Equal(t, "More woodworking", courseRepo.courses[10].Description)
}

func TestUpdateCourse_NotOwner(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	other := &models.User{ID: 2}

	err := service.UpdateCourse(context.Background(), other, 10, validUpdateRequest())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The course is left unmodified
	assert.Empty(t, courseRepo.updated)
	assert.Equal(t, "Build a Basic Bookcase", courseRepo.courses[10].Title)
}

func TestUpdateCourse_MissingFields(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	owner := &models.User{ID: 1}

	err := service.UpdateCourse(context.Background(), owner, 10, &dto.UpdateCourseRequest{
		Title: strPtr("Only a title"),
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"please provide a description",
		"please provide a value for userId",
	}, validationErr.Messages)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	owner := &models.User{ID: 1}

	err := service.UpdateCourse(context.Background(), owner, 99, validUpdateRequest())
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteCourse_Owner(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	owner := &models.User{ID: 1}

	err := service.DeleteCourse(context.Background(), owner, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, courseRepo.deleted)
}

func TestDeleteCourse_NotOwner(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	other := &models.User{ID: 2}

	err := service.DeleteCourse(context.Background(), other, 10)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, courseRepo.deleted)
	assert.Contains(t, courseRepo.courses, int64(10))
}

func TestDeleteCourse_NotFound(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)
	owner := &models.User{ID: 1}

	err := service.DeleteCourse(context.Background(), owner, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourseByID(t *testing.T) {
	userRepo, courseRepo := courseFixtures()
	service := NewCourseService(courseRepo, userRepo)

	course, err := service.GetCourseByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Build a Basic Bookcase", course.Title)

	_, err = service.GetCourseByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
