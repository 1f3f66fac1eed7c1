package service

import (
	"context"
	"strconv"

	"github.com/coursebase/catalog-api/internal/domain"
)

// DetailService serves single-course lookups. Uncached: detail traffic
// is low and a recompute is one indexed query.
type DetailService struct {
	store CourseStore
}

func NewDetailService(store CourseStore) *DetailService {
	return &DetailService{store: store}
}

// GetDetails resolves rawID to the detail projection. A non-integer id
// is treated as no-match, not as a format error.
func (s *DetailService) GetDetails(ctx context.Context, rawID string) (*domain.CourseDetail, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}
	return s.store.FindByID(ctx, id)
}
