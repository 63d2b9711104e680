package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentModel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/finance/fees/dto"
	"campushub_backend/internals/features/finance/fees/model"
	"campushub_backend/internals/features/finance/fees/service"
	helper "campushub_backend/internals/helpers"
)

type FeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{
		DB:        db,
		Validator: validator.New(),
	}
}

// =============================
// ========== CREATE ===========
// =============================
func (ctrl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dueDate, err := req.ParseDueDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	fee := req.ToModel(dueDate)
	if err := ctrl.DB.Create(fee).Error; err != nil {
		log.Println("❌ failed to create fee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee")
	}

	return helper.JsonCreated(c, "Fee created successfully", dto.ToFeeResponse(fee))
}

// =============================
// =========== READ ============
// =============================
func (ctrl *FeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.FeeModel{})
	if status := c.Query("status"); status != "" {
		query = query.Where("fee_status = ?", status)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("fee_student_id = ?", studentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fees")
	}

	var fees []model.FeeModel
	if err := query.
		Order("fee_due_date ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Fees fetched successfully", dto.ToFeeResponseList(fees), &pagination)
}

// MyFees lists the caller's own fee records.
func (ctrl *FeeController) MyFees(c *fiber.Ctx) error {
	student, err := ctrl.studentForUser(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var fees []model.FeeModel
	if err := ctrl.DB.
		Where("fee_student_id = ?", student.StudentID).
		Order("fee_due_date ASC").
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	return helper.JsonOK(c, "Fees fetched successfully", dto.ToFeeResponseList(fees))
}

func (ctrl *FeeController) studentForUser(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	actorID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "No student record linked to this account")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return &student, nil
}

// =============================
// ====== UPDATE / DELETE ======
// =============================
func (ctrl *FeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	var req dto.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if req.Title != nil {
		fee.FeeTitle = *req.Title
	}
	if req.Amount != nil {
		fee.FeeAmount = *req.Amount
	}
	if req.DueDate != nil {
		parsed, err := (&dto.CreateFeeRequest{DueDate: *req.DueDate}).ParseDueDate()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
		}
		fee.FeeDueDate = parsed
	}
	fee.FeeStatus = feeStatusFor(&fee)

	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}

	return helper.JsonUpdated(c, "Fee updated successfully", dto.ToFeeResponse(&fee))
}

func (ctrl *FeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	result := ctrl.DB.Delete(&model.FeeModel{}, "fee_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
	}

	return helper.JsonDeleted(c, "Fee deleted successfully", fiber.Map{"fee_id": id})
}

// =============================
// ========= PAYMENTS ==========
// =============================
func feeStatusFor(fee *model.FeeModel) string {
	switch {
	case fee.FeePaidAmount >= fee.FeeAmount:
		return model.FeeStatusPaid
	case fee.FeePaidAmount > 0:
		return model.FeeStatusPartial
	default:
		return model.FeeStatusUnpaid
	}
}

// RecordPayment books an offline (counter) payment.
func (ctrl *FeeController) RecordPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if fee.FeeStatus == model.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Fee is already fully paid")
	}

	fee.FeePaidAmount += req.Amount
	fee.FeeStatus = feeStatusFor(&fee)
	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonUpdated(c, "Payment recorded successfully", dto.ToFeeResponse(&fee))
}

// Pay starts an online payment: stamps an order ID on the fee and
// returns a Snap token for the outstanding amount.
func (ctrl *FeeController) Pay(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	student, err := ctrl.studentForUser(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if fee.FeeStudentID != student.StudentID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only pay your own fees")
	}
	if fee.FeeStatus == model.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Fee is already fully paid")
	}

	orderID := fmt.Sprintf("FEE-%s-%s", fee.FeeID.String()[:8], uuid.NewString()[:8])
	fee.FeeOrderID = &orderID
	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start payment")
	}

	token, err := service.GenerateSnapToken(fee, student.StudentName, student.StudentEmail)
	if err != nil {
		log.Println("❌ failed to create snap transaction:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway rejected the transaction")
	}

	return helper.JsonOK(c, "Payment initiated successfully", dto.SnapTokenResponse{
		FeeID:     fee.FeeID,
		OrderID:   orderID,
		SnapToken: token,
		Amount:    fee.Outstanding(),
	})
}

// HandlePaymentNotification is the gateway webhook. It is mounted
// outside the auth middleware.
func (ctrl *FeeController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	status, _ := body["transaction_status"].(string)
	if orderID == "" || status == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	log.Println("🔔 payment notification:", orderID, status)

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "fee_order_id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Unknown order: acknowledge so the gateway stops retrying.
			return c.SendStatus(fiber.StatusOK)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch status {
	case "capture", "settlement":
		fee.FeePaidAmount = fee.FeeAmount
		fee.FeeStatus = model.FeeStatusPaid
	case "deny", "cancel", "expire":
		fee.FeeOrderID = nil
	default:
		// pending and friends: nothing to record yet.
		return c.SendStatus(fiber.StatusOK)
	}

	if err := ctrl.DB.Save(&fee).Error; err != nil {
		log.Println("❌ failed to apply payment notification:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

// resolveOwnFeeRead guards student reads of a single fee.
func (ctrl *FeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleStudent {
		student, err := ctrl.studentForUser(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if fee.FeeStudentID != student.StudentID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own fees")
		}
	}

	return helper.JsonOK(c, "Fee fetched successfully", dto.ToFeeResponse(&fee))
}
