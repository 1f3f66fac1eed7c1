package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursebase/catalog-api/internal/domain"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindAll returns every catalog row in insertion (id) order. Admin/full-list
// use only; the paginated paths are the normal entry points.
func (r *CourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	// Non-nil so an empty catalog serializes as [] rather than null.
	courses := make([]domain.Course, 0)
	err := r.db.WithContext(ctx).Order("id asc").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("find all courses: %w", err)
	}
	return courses, nil
}

// FindSummaries returns the fixed lightweight projection for every course.
func (r *CourseRepository) FindSummaries(ctx context.Context) ([]domain.CourseSummary, error) {
	summaries := make([]domain.CourseSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Select("id", "title", "thumbnail_pic_link", "course_type").
		Order("id asc").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("find course summaries: %w", err)
	}
	return summaries, nil
}

// FindByID returns the detail projection for one course.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*domain.CourseDetail, error) {
	var detail domain.CourseDetail
	err := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("id = ?", id).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course %d: %w", id, err)
	}
	return &detail, nil
}

// FindPage returns one page of full rows, ordered by id ascending.
func (r *CourseRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Course, error) {
	courses := make([]domain.Course, 0)
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("find course page: %w", err)
	}
	return courses, nil
}

// FindPageWithProgress returns the same page with Progress preloaded,
// restricted to one user's rows.
func (r *CourseRepository) FindPageWithProgress(ctx context.Context, offset, limit int, userID string) ([]domain.Course, error) {
	courses := make([]domain.Course, 0)
	err := r.db.WithContext(ctx).
		Preload("Progress", "user_id = ?", userID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("find course page with progress: %w", err)
	}
	return courses, nil
}

// FindTopByEnrollment returns up to limit courses by enrollment count
// descending. Ties break on ascending id so repeated calls agree.
func (r *CourseRepository) FindTopByEnrollment(ctx context.Context, limit int) ([]domain.Course, error) {
	courses := make([]domain.Course, 0)
	err := r.db.WithContext(ctx).
		Order("enrollment_counts desc, id asc").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("find top courses: %w", err)
	}
	return courses, nil
}

// FindProgress returns one user's progress rows restricted to courseIDs.
func (r *CourseRepository) FindProgress(ctx context.Context, userID string, courseIDs []int64) ([]domain.UserCourseProgress, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	var rows []domain.UserCourseProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id IN ?", userID, courseIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find progress for user %s: %w", userID, err)
	}
	return rows, nil
}
