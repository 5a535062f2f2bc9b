package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/mrmarton/REST-API/internal/app/models"
	appRepos "github.com/mrmarton/REST-API/internal/app/repositories"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	pkgAuth "github.com/mrmarton/REST-API/internal/pkg/auth"
)

// demoUser pairs a user with the plaintext password to hash at seed time
type demoUser struct {
	user     appModels.User
	password string
}

// CreateDefaultData creates the demo users and courses if they don't exist.
// Errors are collected rather than aborting, so a partial seed does not block
// startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Users/Courses)...")
	var finalErr error

	demoUsers := []demoUser{
		{
			user:     appModels.User{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
			password: "joepassword",
		},
		{
			user:     appModels.User{FirstName: "Sally", LastName: "Jones", EmailAddress: "sally@jones.com"},
			password: "sallypassword",
		},
	}

	userIDs := make(map[string]int64)
	for _, demo := range demoUsers {
		existing, err := userRepo.GetByEmail(ctx, demo.user.EmailAddress)
		if err == nil {
			userIDs[demo.user.EmailAddress] = existing.ID
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Str("email", demo.user.EmailAddress).Msg("Error checking demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		hash, err := pkgAuth.HashPassword(demo.password)
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error hashing demo password: %w", err))
			continue
		}
		demo.user.Password = hash

		id, err := userRepo.Create(ctx, &demo.user)
		if err != nil {
			lgr.Error().Err(err).Str("email", demo.user.EmailAddress).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		userIDs[demo.user.EmailAddress] = id
		lgr.Info().Str("email", demo.user.EmailAddress).Int64("id", id).Msg("Demo user created")
	}

	// Courses are only seeded into an empty table to avoid duplicates on
	// every restart
	existing, err := courseRepo.GetAllWithOwner(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo courses")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	demoCourses := []appModels.Course{
		{
			Title:       "Build a Basic Bookcase",
			Description: "High-end furniture projects are great to dream about. But unless you have a well-equipped shop and some serious woodworking experience to draw on, it can be difficult to turn the dream into a reality.",
			UserID:      userIDs["joe@smith.com"],
		},
		{
			Title:       "Learn How to Program",
			Description: "In this course, you'll learn how to write code like a pro!",
			UserID:      userIDs["joe@smith.com"],
		},
		{
			Title:       "Learn How to Test Programs",
			Description: "In this course, you'll learn how to test programs.",
			UserID:      userIDs["sally@jones.com"],
		},
	}

	for _, course := range demoCourses {
		if course.UserID == 0 {
			continue
		}
		if _, err := courseRepo.Create(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("title", course.Title).Msg("Demo course created")
	}

	return finalErr
}
