package service

import "github.com/coursebase/catalog-api/internal/domain"

// WithUserProgress flattens preloaded progress rows onto each course.
// A course with no row is unpurchased with zero progress; if a course
// somehow carries several rows, the first one wins. Input order is
// preserved exactly.
func WithUserProgress(courses []domain.Course) []domain.CourseWithProgress {
	merged := make([]domain.CourseWithProgress, 0, len(courses))
	for _, course := range courses {
		row := domain.CourseWithProgress{Course: course}
		if len(course.Progress) > 0 {
			first := course.Progress[0]
			row.Purchased = true
			row.CompletedCourse = first.CompletedCourse
			row.Completed = first.Completed
		}
		row.Course.Progress = nil
		merged = append(merged, row)
	}
	return merged
}

// ProgressIndex maps progress rows by course id, first row wins.
func ProgressIndex(rows []domain.UserCourseProgress) map[int64]domain.UserCourseProgress {
	index := make(map[int64]domain.UserCourseProgress, len(rows))
	for _, row := range rows {
		if _, ok := index[row.CourseID]; !ok {
			index[row.CourseID] = row
		}
	}
	return index
}
