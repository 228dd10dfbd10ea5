// file: internals/features/academics/batches/dto/batch_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "tutorhub_backend/internals/features/academics/batches/model"
)

type CreateBatchRequest struct {
	Code        string    `json:"batch_code" validate:"required,min=2,max=40"`
	Name        string    `json:"batch_name" validate:"required,min=2,max=120"`
	Description string    `json:"batch_description" validate:"required"`
	StartDate   time.Time `json:"batch_start_date" validate:"required"`

	Fee         float64 `json:"batch_fee" validate:"gte=0"`
	Certificate bool    `json:"batch_certificate"`

	TrainerID uuid.UUID `json:"batch_trainer_id" validate:"required"`
	CourseID  uuid.UUID `json:"batch_course_id" validate:"required"`

	TrainerCost float64 `json:"batch_trainer_cost" validate:"gte=0"`
	TrainerTds  float64 `json:"batch_trainer_tds" validate:"gte=0"`
}

func (r *CreateBatchRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateBatchRequest) ToModel() m.Batch {
	return m.Batch{
		BatchCode:        r.Code,
		BatchName:        r.Name,
		BatchDescription: r.Description,
		BatchStartDate:   r.StartDate,
		BatchFee:         r.Fee,
		BatchCertificate: r.Certificate,
		BatchTrainerID:   r.TrainerID,
		BatchCourseID:    r.CourseID,
		BatchTrainerCost: r.TrainerCost,
		BatchTrainerTds:  r.TrainerTds,
	}
}

type UpdateBatchRequest struct {
	Name        *string    `json:"batch_name" validate:"omitempty,min=2,max=120"`
	Description *string    `json:"batch_description"`
	StartDate   *time.Time `json:"batch_start_date"`

	Fee         *float64 `json:"batch_fee" validate:"omitempty,gte=0"`
	Certificate *bool    `json:"batch_certificate"`

	TrainerID *uuid.UUID `json:"batch_trainer_id"`

	TrainerCost *float64 `json:"batch_trainer_cost" validate:"omitempty,gte=0"`
	TrainerTds  *float64 `json:"batch_trainer_tds" validate:"omitempty,gte=0"`

	Status *string `json:"batch_status" validate:"omitempty,oneof=active closed inactive"`
}

func (r UpdateBatchRequest) Apply(b *m.Batch) {
	if r.Name != nil {
		b.BatchName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		b.BatchDescription = strings.TrimSpace(*r.Description)
	}
	if r.StartDate != nil {
		b.BatchStartDate = *r.StartDate
	}
	if r.Fee != nil {
		b.BatchFee = *r.Fee
	}
	if r.Certificate != nil {
		b.BatchCertificate = *r.Certificate
	}
	if r.TrainerID != nil {
		b.BatchTrainerID = *r.TrainerID
	}
	if r.TrainerCost != nil {
		b.BatchTrainerCost = *r.TrainerCost
	}
	if r.TrainerTds != nil {
		b.BatchTrainerTds = *r.TrainerTds
	}
	if r.Status != nil {
		b.BatchStatus = m.BatchStatus(*r.Status)
	}
}
