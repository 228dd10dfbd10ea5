// file: internals/features/forums/forums/controller/forum_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	forumDTO "tutorhub_backend/internals/features/forums/forums/dto"
	forumModel "tutorhub_backend/internals/features/forums/forums/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type ForumController struct {
	DB *gorm.DB
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db}
}

/* =========================================================
   THREADS
   ========================================================= */

// POST /admin/forums
func (ctl *ForumController) Create(c *fiber.Ctx) error {
	var req forumDTO.CreateForumRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if ok, err := helper.RefExists(ctl.DB, &batchModel.Batch{}, "batch_id", req.BatchID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check batch")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "batch does not exist")
	}
	if ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", req.UserID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check user")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "user does not exist")
	}

	forum := req.ToModel()
	if err := ctl.DB.Create(&forum).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create forum")
	}
	return helper.JsonCreated(c, "forum created", forum)
}

// GET /admin/forums/by-batch/:batch_id ?page=&per_page=
func (ctl *ForumController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&forumModel.Forum{}).
		Where("forum_batch_id = ?", batchID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count forums")
	}

	var rows []forumModel.Forum
	if err := tx.Order("forum_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list forums")
	}

	return helper.JsonList(c, "forums fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /admin/forums/:id — each open counts as one view.
func (ctl *ForumController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var forum forumModel.Forum
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&forum, "forum_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&forumModel.Forum{}).
			Where("forum_id = ?", id).
			UpdateColumn("forum_views", gorm.Expr("forum_views + 1")).Error; err != nil {
			return err
		}
		forum.ForumViews++
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "forum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load forum")
	}

	var replies []forumModel.ForumReply
	if err := ctl.DB.
		Where("forum_reply_forum_id = ?", id).
		Order("forum_reply_created_at ASC").
		Find(&replies).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load replies")
	}

	return helper.JsonOK(c, "forum fetched", fiber.Map{
		"forum":   forum,
		"replies": replies,
	})
}

// DELETE /admin/forums/:id — soft-deletes the thread, replies stay behind it.
func (ctl *ForumController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("forum_id = ?", id).Delete(&forumModel.Forum{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete forum")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "forum not found")
	}
	return helper.JsonDeleted(c, "forum deleted", fiber.Map{"forum_id": id})
}

/* =========================================================
   REPLIES — forum_counts is kept in step inside the same tx
   ========================================================= */

// POST /admin/forum-replies
func (ctl *ForumController) CreateReply(c *fiber.Ctx) error {
	var req forumDTO.CreateForumReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var forum forumModel.Forum
	if err := ctl.DB.First(&forum, "forum_id = ?", req.ForumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "forum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load forum")
	}
	if forum.ForumStatus == forumModel.ForumStatusClosed {
		return fiber.NewError(fiber.StatusConflict, "forum is closed")
	}

	reply := req.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		return tx.Model(&forumModel.Forum{}).
			Where("forum_id = ?", req.ForumID).
			UpdateColumn("forum_counts", gorm.Expr("forum_counts + 1")).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create reply")
	}
	return helper.JsonCreated(c, "reply created", reply)
}

// DELETE /admin/forum-replies/:id
func (ctl *ForumController) DeleteReply(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var reply forumModel.ForumReply
	if err := ctl.DB.First(&reply, "forum_reply_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "reply not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load reply")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&reply).Error; err != nil {
			return err
		}
		return tx.Model(&forumModel.Forum{}).
			Where("forum_id = ? AND forum_counts > 0", reply.ForumReplyForumID).
			UpdateColumn("forum_counts", gorm.Expr("forum_counts - 1")).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete reply")
	}
	return helper.JsonDeleted(c, "reply deleted", fiber.Map{"forum_reply_id": id})
}
