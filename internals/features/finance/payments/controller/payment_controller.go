// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentDTO "tutorhub_backend/internals/features/finance/payments/dto"
	paymentModel "tutorhub_backend/internals/features/finance/payments/model"
	paymentService "tutorhub_backend/internals/features/finance/payments/service"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB     *gorm.DB
	Ledger *paymentService.LedgerService
}

func NewPaymentController(db *gorm.DB, ledger *paymentService.LedgerService) *PaymentController {
	return &PaymentController{DB: db, Ledger: ledger}
}

/* =========================================================
   INSTALLMENT PATH
   PUT /admin/batch-student-payments/:id
   ========================================================= */

func (ctl *PaymentController) RecordInstallment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req paymentDTO.RecordInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	row, err := ctl.Ledger.RecordInstallmentPayment(c.UserContext(), id, req.Reference, req.PaymentDateTime)
	if err != nil {
		if errors.Is(err, paymentService.ErrLedgerRowNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch student payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to record payment")
	}
	return helper.JsonUpdated(c, "payment recorded", row)
}

/* =========================================================
   DIRECT PATH
   POST /admin/payments
   DELETE /admin/payments/:id
   ========================================================= */

func (ctl *PaymentController) CreateDirect(c *fiber.Ctx) error {
	var req paymentDTO.CreateDirectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if ok, err := helper.RefExists(ctl.DB, &paymentModel.Paymode{}, "paymode_id", req.PaymodeID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check paymode")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "paymode does not exist")
	}
	if ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", req.UserID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check user")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "user does not exist")
	}

	res, err := ctl.Ledger.RecordDirectPayment(c.UserContext(), paymentService.DirectPaymentInput{
		UserID:    req.UserID,
		BatchID:   req.BatchID,
		PaymodeID: req.PaymodeID,
		Amount:    req.Amount,
		PaidAt:    req.PaymentDateTime,
		Reference: req.Reference,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentService.ErrBatchNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "batch does not exist")
		case errors.Is(err, paymentService.ErrOverpayment):
			return fiber.NewError(fiber.StatusConflict, "amount exceeds the remaining batch fee")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to record payment")
	}
	return helper.JsonCreated(c, "payment recorded", res)
}

func (ctl *PaymentController) DeleteDirect(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Ledger.DeleteDirectPayment(c.UserContext(), id); err != nil {
		if errors.Is(err, paymentService.ErrPaymentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete payment")
	}
	return helper.JsonDeleted(c, "payment deleted", fiber.Map{"payment_id": id})
}

/* =========================================================
   PAYMODES (read-only lookup)
   GET /admin/paymodes
   ========================================================= */

func (ctl *PaymentController) ListPaymodes(c *fiber.Ctx) error {
	var rows []paymentModel.Paymode
	if err := ctl.DB.
		Where("paymode_status = ?", "active").
		Order("paymode_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list paymodes")
	}
	return helper.JsonOK(c, "paymodes fetched", rows)
}

/* =========================================================
   GATEWAY
   POST /admin/payments/gateway-order
   ========================================================= */

func (ctl *PaymentController) CreateGatewayOrder(c *fiber.Ctx) error {
	var req paymentDTO.GatewayOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	order, err := paymentService.CreateGatewayOrder(req.Amount, req.Currency, req.CustomerName, req.CustomerEmail)
	if err != nil {
		log.Printf("[ERROR] gateway order failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "failed to create gateway order")
	}
	return helper.JsonCreated(c, "gateway order created", order)
}
