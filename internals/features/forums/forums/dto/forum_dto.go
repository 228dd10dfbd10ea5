// file: internals/features/forums/forums/dto/forum_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "tutorhub_backend/internals/features/forums/forums/model"
)

type CreateForumRequest struct {
	BatchID     uuid.UUID `json:"forum_batch_id" validate:"required"`
	UserID      uuid.UUID `json:"forum_user_id" validate:"required"`
	Topic       string    `json:"forum_topic" validate:"required,min=2,max=200"`
	Description string    `json:"forum_description" validate:"required"`
}

func (r *CreateForumRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateForumRequest) ToModel() m.Forum {
	return m.Forum{
		ForumBatchID:     r.BatchID,
		ForumUserID:      r.UserID,
		ForumTopic:       r.Topic,
		ForumDescription: r.Description,
	}
}

type CreateForumReplyRequest struct {
	ForumID     uuid.UUID `json:"forum_reply_forum_id" validate:"required"`
	UserID      uuid.UUID `json:"forum_reply_user_id" validate:"required"`
	Description string    `json:"forum_reply_description" validate:"required"`
}

func (r *CreateForumReplyRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateForumReplyRequest) ToModel() m.ForumReply {
	return m.ForumReply{
		ForumReplyForumID:     r.ForumID,
		ForumReplyUserID:      r.UserID,
		ForumReplyDescription: r.Description,
	}
}
