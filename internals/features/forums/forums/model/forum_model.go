// file: internals/features/forums/forums/model/forum_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ForumStatusActive = "active"
	ForumStatusClosed = "closed"
)

// Forum is a discussion thread inside a batch. forum_counts mirrors the
// number of live replies and is maintained in the same transaction as the
// reply writes.
type Forum struct {
	ForumID uuid.UUID `gorm:"column:forum_id;type:uuid;primaryKey" json:"forum_id"`

	// FK → batches(batch_id), users(user_id)
	ForumBatchID uuid.UUID `gorm:"column:forum_batch_id;type:uuid;not null;index" json:"forum_batch_id"`
	ForumUserID  uuid.UUID `gorm:"column:forum_user_id;type:uuid;not null;index" json:"forum_user_id"`

	ForumTopic       string `gorm:"column:forum_topic;type:varchar(200);not null" json:"forum_topic"`
	ForumDescription string `gorm:"column:forum_description;type:text;not null" json:"forum_description"`

	ForumStatus string `gorm:"column:forum_status;type:varchar(20);not null;default:'active'" json:"forum_status"`
	ForumViews  int64  `gorm:"column:forum_views;not null;default:0" json:"forum_views"`
	ForumCounts int64  `gorm:"column:forum_counts;not null;default:0" json:"forum_counts"`

	ForumCreatedAt time.Time      `gorm:"column:forum_created_at;autoCreateTime" json:"forum_created_at"`
	ForumUpdatedAt time.Time      `gorm:"column:forum_updated_at;autoUpdateTime" json:"forum_updated_at"`
	ForumDeletedAt gorm.DeletedAt `gorm:"column:forum_deleted_at;index" json:"-"`
}

func (Forum) TableName() string { return "forums" }

func (m *Forum) BeforeCreate(tx *gorm.DB) error {
	if m.ForumID == uuid.Nil {
		m.ForumID = uuid.New()
	}
	if m.ForumStatus == "" {
		m.ForumStatus = ForumStatusActive
	}
	return nil
}
