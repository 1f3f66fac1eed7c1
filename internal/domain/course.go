package domain

// Course is a catalog row. Mutated only by administrative flows outside
// this service, so the read path treats it as immutable.
type Course struct {
	ID                     int64   `gorm:"primaryKey" json:"course_id"`
	Title                  string  `gorm:"index" json:"title"`
	Description            string  `json:"description"`
	ThumbnailPicLink       string  `json:"thumbnail_pic_link"`
	CertificatePreviewLink string  `json:"certificate_preview_link"`
	CourseType             string  `gorm:"index" json:"course_type"`
	Price                  float64 `json:"price"`
	PointsProviding        int     `json:"points_providing"`
	Rate                   float64 `json:"Rate"`
	NumberOfPeopleRated    int     `json:"number_of_people_rated"`
	CourseLevel            string  `json:"course_level"`
	EnrollmentCounts       int     `gorm:"index" json:"Enrollment_Counts"`

	// Filled by the repository when a page is fetched for a known user.
	Progress []UserCourseProgress `gorm:"foreignKey:CourseID" json:"-"`
}

// UserCourseProgress records one user's completion state for one course.
// Its mere existence means the course was purchased. At most one row per
// (user, course) pair; readers take the first match if that is ever violated.
type UserCourseProgress struct {
	UserID          string `gorm:"primaryKey;index" json:"user_id"`
	CourseID        int64  `gorm:"primaryKey;index" json:"course_id"`
	CompletedCourse int    `json:"completed_course"` // percentage, 0-100
	Completed       bool   `json:"completed"`
}

// CourseSummary is the lightweight listing projection.
type CourseSummary struct {
	ID               int64  `json:"course_id"`
	Title            string `json:"title"`
	ThumbnailPicLink string `json:"thumbnail_pic_link"`
	CourseType       string `json:"course_type"`
}

// CourseDetail is the single-course projection served by the details endpoint.
type CourseDetail struct {
	Title                  string  `json:"title"`
	Description            string  `json:"description"`
	ThumbnailPicLink       string  `json:"thumbnail_pic_link"`
	EnrollmentCounts       int     `json:"Enrollment_Counts"`
	CertificatePreviewLink string  `json:"certificate_preview_link"`
	CourseType             string  `json:"course_type"`
	Price                  float64 `json:"price"`
	PointsProviding        int     `json:"points_providing"`
	Rate                   float64 `json:"Rate"`
	NumberOfPeopleRated    int     `json:"number_of_people_rated"`
	CourseLevel            string  `json:"course_level"`
}

// CourseWithProgress is a catalog row with one user's progress attached.
type CourseWithProgress struct {
	Course
	Purchased       bool `json:"purchased"`
	CompletedCourse int  `json:"completed_course"`
	Completed       bool `json:"completed"`
}

// TrendingCourse is the reduced projection returned by the trending endpoint.
// Anonymous requests get it with zero progress fields.
type TrendingCourse struct {
	ID               int64  `json:"course_id"`
	Title            string `json:"title"`
	ThumbnailPicLink string `json:"thumbnail_pic_link"`
	CompletedCourse  int    `json:"completed_course"`
	Completed        bool   `json:"completed"`
	Purchased        bool   `json:"purchased"`
}
