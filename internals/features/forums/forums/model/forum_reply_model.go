// file: internals/features/forums/forums/model/forum_reply_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ForumReply struct {
	ForumReplyID uuid.UUID `gorm:"column:forum_reply_id;type:uuid;primaryKey" json:"forum_reply_id"`

	// FK → forums(forum_id), users(user_id)
	ForumReplyForumID uuid.UUID `gorm:"column:forum_reply_forum_id;type:uuid;not null;index" json:"forum_reply_forum_id"`
	ForumReplyUserID  uuid.UUID `gorm:"column:forum_reply_user_id;type:uuid;not null;index" json:"forum_reply_user_id"`

	ForumReplyDescription string `gorm:"column:forum_reply_description;type:text;not null" json:"forum_reply_description"`
	ForumReplyStatus      string `gorm:"column:forum_reply_status;type:varchar(20);not null;default:'active'" json:"forum_reply_status"`

	ForumReplyCreatedAt time.Time `gorm:"column:forum_reply_created_at;autoCreateTime" json:"forum_reply_created_at"`
	ForumReplyUpdatedAt time.Time `gorm:"column:forum_reply_updated_at;autoUpdateTime" json:"forum_reply_updated_at"`
}

func (ForumReply) TableName() string { return "forum_replies" }

func (m *ForumReply) BeforeCreate(tx *gorm.DB) error {
	if m.ForumReplyID == uuid.Nil {
		m.ForumReplyID = uuid.New()
	}
	if m.ForumReplyStatus == "" {
		m.ForumReplyStatus = "active"
	}
	return nil
}
