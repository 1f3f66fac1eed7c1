package service

import (
	"testing"

	"github.com/coursebase/catalog-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithUserProgress(t *testing.T) {
	courses := []domain.Course{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B", Progress: []domain.UserCourseProgress{
			{UserID: "u1", CourseID: 2, CompletedCourse: 60, Completed: false},
		}},
		{ID: 3, Title: "C", Progress: []domain.UserCourseProgress{
			{UserID: "u1", CourseID: 3, CompletedCourse: 100, Completed: true},
		}},
	}

	merged := WithUserProgress(courses)
	require.Len(t, merged, 3)

	assert.False(t, merged[0].Purchased)
	assert.False(t, merged[0].Completed)
	assert.Equal(t, 0, merged[0].CompletedCourse)

	assert.True(t, merged[1].Purchased)
	assert.False(t, merged[1].Completed)
	assert.Equal(t, 60, merged[1].CompletedCourse)

	assert.True(t, merged[2].Purchased)
	assert.True(t, merged[2].Completed)
	assert.Equal(t, 100, merged[2].CompletedCourse)
}

func TestWithUserProgressPreservesOrder(t *testing.T) {
	courses := []domain.Course{{ID: 7}, {ID: 3}, {ID: 9}, {ID: 1}}

	merged := WithUserProgress(courses)

	ids := make([]int64, 0, len(merged))
	for _, m := range merged {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{7, 3, 9, 1}, ids)
}

func TestWithUserProgressFirstRowWins(t *testing.T) {
	courses := []domain.Course{
		{ID: 1, Progress: []domain.UserCourseProgress{
			{UserID: "u1", CourseID: 1, CompletedCourse: 30},
			{UserID: "u1", CourseID: 1, CompletedCourse: 90},
		}},
	}

	merged := WithUserProgress(courses)
	assert.Equal(t, 30, merged[0].CompletedCourse)
}

func TestProgressIndexFirstWins(t *testing.T) {
	rows := []domain.UserCourseProgress{
		{UserID: "u1", CourseID: 5, CompletedCourse: 10},
		{UserID: "u1", CourseID: 5, CompletedCourse: 99},
		{UserID: "u1", CourseID: 6, CompletedCourse: 40},
	}

	index := ProgressIndex(rows)
	require.Len(t, index, 2)
	assert.Equal(t, 10, index[5].CompletedCourse)
	assert.Equal(t, 40, index[6].CompletedCourse)
}
