package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/app/services"
	"github.com/mrmarton/REST-API/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// courseID parses the :id path parameter
func courseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("course id must be a valid number"))
		return 0, false
	}
	return id, true
}

// GetAllCourses lists all courses with their owners
// @Summary List courses
// @Description Returns every course with its owner nested, excluding password hashes and timestamps
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse "Courses"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourseByID retrieves a single course
// @Summary Get a course
// @Description Returns a course with its owner nested
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseResponse "Course"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateCourse creates a new course
// @Summary Create a course
// @Description Creates a course after checking the storage-schema constraints
// @Tags courses
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 "Created, Location: /courses/{id}"
// @Failure 400 {object} dto.ValidationErrorResponse "Constraint violations"
// @Failure 401 {object} dto.MessageResponse "Authentication failed"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"invalid request body"}))
		return
	}

	id, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/courses/%d", id))
	ctx.Status(http.StatusCreated)
}

// UpdateCourse updates a course owned by the caller
// @Summary Update a course
// @Description Requires title, description and userId to be present; only the owner may update
// @Tags courses
// @Accept json
// @Security BasicAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 204 "Updated"
// @Failure 400 {object} dto.ValidationErrorResponse "Missing fields"
// @Failure 401 {object} dto.MessageResponse "Authentication failed"
// @Failure 403 {object} dto.MessageResponse "Caller does not own the course"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"invalid request body"}))
		return
	}

	identity, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("access denied"))
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), identity, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteCourse deletes a course owned by the caller
// @Summary Delete a course
// @Description Only the owner may delete a course
// @Tags courses
// @Security BasicAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 204 "Deleted"
// @Failure 401 {object} dto.MessageResponse "Authentication failed"
// @Failure 403 {object} dto.MessageResponse "Caller does not own the course"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	identity, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("access denied"))
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
