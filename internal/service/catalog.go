package service

import (
	"context"
	"fmt"

	"github.com/coursebase/catalog-api/internal/domain"
	"github.com/coursebase/catalog-api/internal/infrastructure/cache"
	"github.com/coursebase/catalog-api/internal/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	trendingSize = 5
)

// CourseStore is the query contract the catalog needs from the
// relational store. *repository.CourseRepository satisfies it.
type CourseStore interface {
	FindAll(ctx context.Context) ([]domain.Course, error)
	FindSummaries(ctx context.Context) ([]domain.CourseSummary, error)
	FindByID(ctx context.Context, id int64) (*domain.CourseDetail, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Course, error)
	FindPageWithProgress(ctx context.Context, offset, limit int, userID string) ([]domain.Course, error)
	FindTopByEnrollment(ctx context.Context, limit int) ([]domain.Course, error)
	FindProgress(ctx context.Context, userID string, courseIDs []int64) ([]domain.UserCourseProgress, error)
}

// CatalogService answers the catalog read path: paginated listings
// (anonymous or with per-user progress) and the trending subset.
// Computed pages are cached per process; see the cache package.
type CatalogService struct {
	store CourseStore
	cache *cache.Cache
	log   *logger.Logger
}

func NewCatalogService(store CourseStore, c *cache.Cache, log *logger.Logger) *CatalogService {
	return &CatalogService{store: store, cache: c, log: log}
}

// PageKey derives the cache key for one catalog page. The anonymous
// family ("all_courses:") and the per-user family ("courses:{id}:") are
// disjoint by prefix, so an anonymous page can never be served to a
// known user or vice versa.
func PageKey(userID string, page, limit int) string {
	if userID == "" {
		return fmt.Sprintf("all_courses:page:%d:limit:%d", page, limit)
	}
	return fmt.Sprintf("courses:%s:page:%d:limit:%d", userID, page, limit)
}

// TrendingKey derives the cache key for the trending view. The
// per-user family carries a "user:" segment so no user id (not even
// one literally named "all") can collide with the anonymous entry.
func TrendingKey(userID string) string {
	if userID == "" {
		return "trending:all"
	}
	return "trending:user:" + userID
}

// ListCourses returns one catalog page without user context.
func (s *CatalogService) ListCourses(ctx context.Context, page, limit int) ([]domain.Course, error) {
	page, limit = clampPage(page, limit)
	key := PageKey("", page, limit)

	if cached, ok := s.cache.Get(key); ok {
		if courses, ok := cached.([]domain.Course); ok {
			s.log.Debug("cache hit", "key", key)
			return courses, nil
		}
	}

	courses, err := s.store.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, courses, 0)
	return courses, nil
}

// ListCoursesForUser returns one catalog page with userID's progress
// attached to every row.
func (s *CatalogService) ListCoursesForUser(ctx context.Context, userID string, page, limit int) ([]domain.CourseWithProgress, error) {
	page, limit = clampPage(page, limit)
	key := PageKey(userID, page, limit)

	if cached, ok := s.cache.Get(key); ok {
		if courses, ok := cached.([]domain.CourseWithProgress); ok {
			s.log.Debug("cache hit", "key", key)
			return courses, nil
		}
	}

	courses, err := s.store.FindPageWithProgress(ctx, (page-1)*limit, limit, userID)
	if err != nil {
		return nil, err
	}
	merged := WithUserProgress(courses)

	s.cache.Set(key, merged, 0)
	return merged, nil
}

// Trending returns the top enrolled courses as the reduced trending
// projection. With a user id each row additionally carries that user's
// progress state. Cached under its own key family.
func (s *CatalogService) Trending(ctx context.Context, userID string) ([]domain.TrendingCourse, error) {
	key := TrendingKey(userID)

	if cached, ok := s.cache.Get(key); ok {
		if views, ok := cached.([]domain.TrendingCourse); ok {
			s.log.Debug("cache hit", "key", key)
			return views, nil
		}
	}

	courses, err := s.store.FindTopByEnrollment(ctx, trendingSize)
	if err != nil {
		return nil, err
	}

	var index map[int64]domain.UserCourseProgress
	if userID != "" {
		ids := make([]int64, 0, len(courses))
		for _, c := range courses {
			ids = append(ids, c.ID)
		}
		rows, err := s.store.FindProgress(ctx, userID, ids)
		if err != nil {
			return nil, err
		}
		index = ProgressIndex(rows)
	}

	views := make([]domain.TrendingCourse, 0, len(courses))
	for _, c := range courses {
		view := domain.TrendingCourse{
			ID:               c.ID,
			Title:            c.Title,
			ThumbnailPicLink: c.ThumbnailPicLink,
		}
		if row, ok := index[c.ID]; ok {
			view.Purchased = true
			view.CompletedCourse = row.CompletedCourse
			view.Completed = row.Completed
		}
		views = append(views, view)
	}

	s.cache.Set(key, views, 0)
	return views, nil
}

// ListAllCourses returns the whole catalog, uncached. Admin use.
func (s *CatalogService) ListAllCourses(ctx context.Context) ([]domain.Course, error) {
	return s.store.FindAll(ctx)
}

// ListSummaries returns the lightweight projection of the whole
// catalog, uncached.
func (s *CatalogService) ListSummaries(ctx context.Context) ([]domain.CourseSummary, error) {
	return s.store.FindSummaries(ctx)
}

// clampPage normalizes pagination input so the offset can never go
// negative and a single page stays bounded.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
