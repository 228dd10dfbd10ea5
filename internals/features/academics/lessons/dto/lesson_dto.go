// file: internals/features/academics/lessons/dto/lesson_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "tutorhub_backend/internals/features/academics/lessons/model"
)

type CreateLessonRequest struct {
	BatchID   uuid.UUID `json:"lesson_planner_batch_id" validate:"required"`
	TrainerID uuid.UUID `json:"lesson_planner_trainer_id" validate:"required"`

	Topic    string    `json:"lesson_planner_topic" validate:"required,min=2,max=160"`
	Date     time.Time `json:"lesson_planner_date" validate:"required"`
	Time     string    `json:"lesson_planner_time" validate:"required,max=10"`
	Duration int       `json:"lesson_planner_duration" validate:"required,gt=0,lte=480"`

	Description string  `json:"lesson_planner_description" validate:"required"`
	Link        string  `json:"lesson_planner_link" validate:"required,url"`
	Remarks     *string `json:"lesson_planner_remarks"`
}

func (r *CreateLessonRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Time = strings.TrimSpace(r.Time)
	r.Description = strings.TrimSpace(r.Description)
	r.Link = strings.TrimSpace(r.Link)
}

func (r CreateLessonRequest) ToModel() m.LessonPlanner {
	return m.LessonPlanner{
		LessonPlannerBatchID:     r.BatchID,
		LessonPlannerTrainerID:   r.TrainerID,
		LessonPlannerTopic:       r.Topic,
		LessonPlannerDate:        r.Date,
		LessonPlannerTime:        r.Time,
		LessonPlannerDuration:    r.Duration,
		LessonPlannerDescription: r.Description,
		LessonPlannerLink:        r.Link,
		LessonPlannerRemarks:     r.Remarks,
	}
}

type UpdateLessonRequest struct {
	Topic    *string    `json:"lesson_planner_topic" validate:"omitempty,min=2,max=160"`
	Date     *time.Time `json:"lesson_planner_date"`
	Time     *string    `json:"lesson_planner_time" validate:"omitempty,max=10"`
	Duration *int       `json:"lesson_planner_duration" validate:"omitempty,gt=0,lte=480"`

	Description *string `json:"lesson_planner_description"`
	Link        *string `json:"lesson_planner_link" validate:"omitempty,url"`
	Remarks     *string `json:"lesson_planner_remarks"`
	Status      *string `json:"lesson_planner_status" validate:"omitempty,oneof=active completed cancelled"`
}

func (r UpdateLessonRequest) Apply(l *m.LessonPlanner) {
	if r.Topic != nil {
		l.LessonPlannerTopic = strings.TrimSpace(*r.Topic)
	}
	if r.Date != nil {
		l.LessonPlannerDate = *r.Date
	}
	if r.Time != nil {
		l.LessonPlannerTime = strings.TrimSpace(*r.Time)
	}
	if r.Duration != nil {
		l.LessonPlannerDuration = *r.Duration
	}
	if r.Description != nil {
		l.LessonPlannerDescription = strings.TrimSpace(*r.Description)
	}
	if r.Link != nil {
		l.LessonPlannerLink = strings.TrimSpace(*r.Link)
	}
	if r.Remarks != nil {
		l.LessonPlannerRemarks = r.Remarks
	}
	if r.Status != nil {
		l.LessonPlannerStatus = *r.Status
	}
}
