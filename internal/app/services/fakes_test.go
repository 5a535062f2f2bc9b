package services

import (
	"context"

	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
)

// -------- test fakes --------

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[int64]*models.User{}}
	for _, user := range users {
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, existing := range f.users {
		if existing.EmailAddress == user.EmailAddress {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	f.users[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.EmailAddress == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, user := range f.users {
		if user.EmailAddress == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
	err     error

	updated []*models.Course
	deleted []int64
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{courses: map[int64]*models.Course{}}
	for _, course := range courses {
		if course.ID > repo.nextID {
			repo.nextID = course.ID
		}
		repo.courses[course.ID] = course
	}
	return repo
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	stored := *course
	stored.ID = f.nextID
	f.courses[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseRepo) GetByIDWithOwner(ctx context.Context, id int64) (*models.Course, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCourseRepo) GetAllWithOwner(ctx context.Context) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []*models.Course
	for _, course := range f.courses {
		all = append(all, course)
	}
	return all, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	f.courses[course.ID] = &stored
	f.updated = append(f.updated, &stored)
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	f.deleted = append(f.deleted, id)
	return nil
}
