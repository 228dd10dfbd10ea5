// file: internals/features/academics/lessons/model/lesson_planner_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LessonStatusActive    = "active"
	LessonStatusCompleted = "completed"
	LessonStatusCancelled = "cancelled"
)

type LessonPlanner struct {
	LessonPlannerID uuid.UUID `gorm:"column:lesson_planner_id;type:uuid;primaryKey" json:"lesson_planner_id"`

	// FK → batches(batch_id), users(user_id)
	LessonPlannerBatchID   uuid.UUID `gorm:"column:lesson_planner_batch_id;type:uuid;not null;index" json:"lesson_planner_batch_id"`
	LessonPlannerTrainerID uuid.UUID `gorm:"column:lesson_planner_trainer_id;type:uuid;not null;index" json:"lesson_planner_trainer_id"`

	LessonPlannerTopic    string    `gorm:"column:lesson_planner_topic;type:varchar(160);not null" json:"lesson_planner_topic"`
	LessonPlannerDate     time.Time `gorm:"column:lesson_planner_date;type:date;not null;index" json:"lesson_planner_date"`
	LessonPlannerTime     string    `gorm:"column:lesson_planner_time;type:varchar(10);not null" json:"lesson_planner_time"`
	// duration in minutes, capped at 8 hours
	LessonPlannerDuration    int    `gorm:"column:lesson_planner_duration;not null;check:lesson_planner_duration >= 0 AND lesson_planner_duration <= 480" json:"lesson_planner_duration"`
	LessonPlannerDescription string `gorm:"column:lesson_planner_description;type:text;not null" json:"lesson_planner_description"`
	LessonPlannerLink        string `gorm:"column:lesson_planner_link;type:text;not null" json:"lesson_planner_link"`

	LessonPlannerRemarks *string `gorm:"column:lesson_planner_remarks;type:text" json:"lesson_planner_remarks,omitempty"`
	LessonPlannerStatus  string  `gorm:"column:lesson_planner_status;type:varchar(20);not null;default:'active'" json:"lesson_planner_status"`

	LessonPlannerCreatedAt time.Time      `gorm:"column:lesson_planner_created_at;autoCreateTime" json:"lesson_planner_created_at"`
	LessonPlannerUpdatedAt time.Time      `gorm:"column:lesson_planner_updated_at;autoUpdateTime" json:"lesson_planner_updated_at"`
	LessonPlannerDeletedAt gorm.DeletedAt `gorm:"column:lesson_planner_deleted_at;index" json:"-"`
}

func (LessonPlanner) TableName() string { return "lesson_planners" }

func (m *LessonPlanner) BeforeCreate(tx *gorm.DB) error {
	if m.LessonPlannerID == uuid.Nil {
		m.LessonPlannerID = uuid.New()
	}
	if m.LessonPlannerStatus == "" {
		m.LessonPlannerStatus = LessonStatusActive
	}
	return nil
}
