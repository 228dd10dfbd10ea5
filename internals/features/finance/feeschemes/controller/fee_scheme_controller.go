// file: internals/features/finance/feeschemes/controller/fee_scheme_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	feeDTO "tutorhub_backend/internals/features/finance/feeschemes/dto"
	feeModel "tutorhub_backend/internals/features/finance/feeschemes/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type FeeSchemeController struct {
	DB *gorm.DB
}

func NewFeeSchemeController(db *gorm.DB) *FeeSchemeController {
	return &FeeSchemeController{DB: db}
}

/* =========================================================
   SCHEMES
   ========================================================= */

// POST /admin/fee-schemes
func (ctl *FeeSchemeController) Create(c *fiber.Ctx) error {
	var req feeDTO.CreateFeeSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ok, err := helper.RefExists(ctl.DB, &batchModel.Batch{}, "batch_id", req.BatchID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check batch")
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "batch does not exist")
	}

	scheme := req.ToModel()
	if err := ctl.DB.Create(&scheme).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "scheme name already used in this batch")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create fee scheme")
	}
	return helper.JsonCreated(c, "fee scheme created", scheme)
}

// PUT /admin/fee-schemes/:id
func (ctl *FeeSchemeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req feeDTO.UpdateFeeSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var scheme feeModel.FeeScheme
	if err := ctl.DB.First(&scheme, "fee_scheme_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "fee scheme not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fee scheme")
	}

	req.Apply(&scheme)
	if err := ctl.DB.Save(&scheme).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "scheme name already used in this batch")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update fee scheme")
	}
	return helper.JsonUpdated(c, "fee scheme updated", scheme)
}

// GET /admin/fee-schemes/by-batch/:batch_id — schemes with their installments.
func (ctl *FeeSchemeController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}

	var schemes []feeModel.FeeScheme
	if err := ctl.DB.
		Where("fee_scheme_batch_id = ?", batchID).
		Order("fee_scheme_created_at ASC").
		Find(&schemes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list fee schemes")
	}

	out := make([]fiber.Map, 0, len(schemes))
	for _, s := range schemes {
		var installments []feeModel.FeeSchemePayment
		if err := ctl.DB.
			Where("fee_scheme_payment_scheme_id = ?", s.FeeSchemeID).
			Order("fee_scheme_payment_due_date ASC").
			Find(&installments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load installments")
		}
		out = append(out, fiber.Map{
			"scheme":       s,
			"installments": installments,
		})
	}
	return helper.JsonOK(c, "fee schemes fetched", out)
}

// DELETE /admin/fee-schemes/:id — refused while any enrollment is bound to it.
func (ctl *FeeSchemeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var bound int64
	if err := ctl.DB.Model(&enrollModel.BatchStudent{}).
		Where("batch_student_fee_scheme_id = ?", id).
		Count(&bound).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check enrollments")
	}
	if bound > 0 {
		return fiber.NewError(fiber.StatusConflict, "fee scheme is bound to enrolled students")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("fee_scheme_payment_scheme_id = ?", id).
			Delete(&feeModel.FeeSchemePayment{}).Error; err != nil {
			return err
		}
		res := tx.Where("fee_scheme_id = ?", id).Delete(&feeModel.FeeScheme{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "fee scheme not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete fee scheme")
	}
	return helper.JsonDeleted(c, "fee scheme deleted", fiber.Map{"fee_scheme_id": id})
}

/* =========================================================
   INSTALLMENTS
   ========================================================= */

// POST /admin/fee-scheme-payments
func (ctl *FeeSchemeController) CreateInstallment(c *fiber.Ctx) error {
	var req feeDTO.CreateInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ok, err := helper.RefExists(ctl.DB, &feeModel.FeeScheme{}, "fee_scheme_id", req.SchemeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check scheme")
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "fee scheme does not exist")
	}

	inst := req.ToModel()
	if err := ctl.DB.Create(&inst).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "installment name already used in this scheme")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create installment")
	}
	return helper.JsonCreated(c, "installment created", inst)
}

// PUT /admin/fee-scheme-payments/:id
func (ctl *FeeSchemeController) UpdateInstallment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req feeDTO.UpdateInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var inst feeModel.FeeSchemePayment
	if err := ctl.DB.First(&inst, "fee_scheme_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "installment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load installment")
	}

	req.Apply(&inst)
	if err := ctl.DB.Save(&inst).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "installment name already used in this scheme")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update installment")
	}
	return helper.JsonUpdated(c, "installment updated", inst)
}

// DELETE /admin/fee-scheme-payments/:id
// Ledger rows are copies made at enrollment time, so removing a template
// never touches already-enrolled students.
func (ctl *FeeSchemeController) DeleteInstallment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("fee_scheme_payment_id = ?", id).Delete(&feeModel.FeeSchemePayment{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete installment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "installment not found")
	}
	return helper.JsonDeleted(c, "installment deleted", fiber.Map{"fee_scheme_payment_id": id})
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
