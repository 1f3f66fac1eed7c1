package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coursebase/catalog-api/internal/domain"
	"github.com/coursebase/catalog-api/internal/pkg/logger"
	"github.com/coursebase/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	catalog *service.CatalogService
	detail  *service.DetailService
	log     *logger.Logger
}

func NewCourseHandler(catalog *service.CatalogService, detail *service.DetailService, log *logger.Logger) *CourseHandler {
	return &CourseHandler{
		catalog: catalog,
		detail:  detail,
		log:     log,
	}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	userID := c.GetString("userId")

	if userID == "" {
		courses, err := h.catalog.ListCourses(c, page, limit)
		if err != nil {
			h.serverError(c, "list courses", err)
			return
		}
		c.JSON(http.StatusOK, courses)
		return
	}

	courses, err := h.catalog.ListCoursesForUser(c, userID, page, limit)
	if err != nil {
		h.serverError(c, "list courses for user", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GET /api/v1/courses/all
func (h *CourseHandler) ListAll(c *gin.Context) {
	courses, err := h.catalog.ListAllCourses(c)
	if err != nil {
		h.serverError(c, "list all courses", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GET /api/v1/courses/summaries
func (h *CourseHandler) Summaries(c *gin.Context) {
	summaries, err := h.catalog.ListSummaries(c)
	if err != nil {
		h.serverError(c, "list course summaries", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GET /api/v1/courses/trending
func (h *CourseHandler) Trending(c *gin.Context) {
	views, err := h.catalog.Trending(c, c.GetString("userId"))
	if err != nil {
		h.serverError(c, "trending courses", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) Details(c *gin.Context) {
	detail, err := h.detail.GetDetails(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		h.serverError(c, "course details", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CourseHandler) serverError(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", "error", err, "requestId", c.GetString("requestId"))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
