package dto

import "github.com/mrmarton/REST-API/internal/app/models"

// CreateCourseRequest represents the payload for course creation. Fields are
// pointers so a missing field can be told apart from an empty one, mirroring
// the NOT NULL storage constraints.
type CreateCourseRequest struct {
	Title       *string `json:"title" example:"Build a Basic Bookcase"`
	Description *string `json:"description" example:"High-end furniture projects are great..."`
	UserID      *int64  `json:"userId" example:"1"`
}

// UpdateCourseRequest represents the payload for course updates. All three
// fields must be present; presence only, empty values are accepted.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	UserID      *int64  `json:"userId"`
}

// CourseResponse is the public view of a course with its owner nested.
// Timestamps and the owner's password hash are excluded.
type CourseResponse struct {
	ID          int64        `json:"id" example:"1"`
	Title       string       `json:"title" example:"Build a Basic Bookcase"`
	Description string       `json:"description"`
	UserID      int64        `json:"userId" example:"1"`
	User        *UserResponse `json:"user,omitempty"`
}

// NewCourseResponse maps a course model to its public view
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		UserID:      course.UserID,
	}
	if course.User != nil {
		owner := NewUserResponse(course.User)
		resp.User = &owner
	}
	return resp
}

// NewCourseListResponse maps a slice of course models to their public views
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}
