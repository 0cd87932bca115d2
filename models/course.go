package models

import (
	"time"
)

type CourseDifficulty string

const (
	DifficultyBeginner     CourseDifficulty = "BEGINNER"
	DifficultyIntermediate CourseDifficulty = "INTERMEDIATE"
	DifficultyAdvanced     CourseDifficulty = "ADVANCED"
)

type Course struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Slug         string           `gorm:"size:255;index" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	PriceCents   int64            `gorm:"not null;default:0" json:"price_cents"`
	Difficulty   CourseDifficulty `gorm:"type:varchar(20);default:'BEGINNER'" json:"difficulty"`
	IsPublished  bool             `gorm:"not null;default:false" json:"is_published"`
	ThumbnailURL string           `gorm:"type:text" json:"thumbnail_url"`
	InstructorID uint             `gorm:"not null;index" json:"instructor_id"`
	Instructor   User             `gorm:"foreignKey:InstructorID" json:"instructor"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Modules []CourseModule `gorm:"constraint:OnDelete:CASCADE" json:"modules"`
}

// CourseModule là một chương/bài trong khoá học
type CourseModule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
