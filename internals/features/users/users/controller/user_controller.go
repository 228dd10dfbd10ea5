// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "tutorhub_backend/internals/features/users/users/dto"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
	"tutorhub_backend/internals/services/mailer"
)

var validate = validator.New()

type UserController struct {
	DB   *gorm.DB
	Mail mailer.Mailer
}

func NewUserController(db *gorm.DB, mail mailer.Mailer) *UserController {
	return &UserController{DB: db, Mail: mail}
}

/* =========================================================
   CREATE
   POST /admin/users
   ========================================================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	u := req.ToModel()
	u.UserPassword = string(hash)

	if err := ctl.DB.Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "email or mobile already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create user")
	}

	ctl.sendWelcome(u)

	return helper.JsonCreated(c, "user created", userDTO.FromUserModel(u))
}

/* =========================================================
   UPDATE
   PUT /admin/users/:id
   ========================================================= */

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var u userModel.User
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load user")
	}

	req.Apply(&u)
	if err := ctl.DB.Save(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "email or mobile already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
	}

	return helper.JsonUpdated(c, "user updated", userDTO.FromUserModel(u))
}

/* =========================================================
   READS
   GET /admin/users          ?role=&q=&page=&per_page=
   GET /admin/users/:id
   ========================================================= */

func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&userModel.User{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", role)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(user_username) LIKE ? OR LOWER(user_email) LIKE ? OR user_mobile LIKE ?)", kw, kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count users")
	}

	var rows []userModel.User
	if err := tx.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list users")
	}

	return helper.JsonList(c, "users fetched", userDTO.FromUserModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var u userModel.User
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load user")
	}
	return helper.JsonOK(c, "user fetched", userDTO.FromUserModel(u))
}

/* =========================================================
   DELETE (soft)
   DELETE /admin/users/:id
   ========================================================= */

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("user_id = ?", id).Delete(&userModel.User{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return helper.JsonDeleted(c, "user deleted", fiber.Map{"user_id": id})
}

func (ctl *UserController) sendWelcome(u userModel.User) {
	if ctl.Mail == nil {
		return
	}
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Log in with this email address.</p>", u.UserUsername)
	if err := ctl.Mail.SendHTML(u.UserEmail, "Welcome aboard", body); err != nil {
		log.Printf("[WARN] welcome mail to %s failed: %v", u.UserEmail, err)
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
