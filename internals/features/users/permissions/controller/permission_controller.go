package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	permDTO "campushub_backend/internals/features/users/permissions/dto"
	permService "campushub_backend/internals/features/users/permissions/service"
	helper "campushub_backend/internals/helpers"
)

type PermissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

func actorFromLocals(c *fiber.Ctx) (uuid.UUID, string, error) {
	idStr, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in context")
	}
	role, _ := c.Locals("userRole").(string)
	return id, role, nil
}

// PUT /api/permissions
// Upserts the capability set for one teacher/student principal.
func (ctl *PermissionController) SetPermissions(c *fiber.Ctx) error {
	actorID, actorRole, err := actorFromLocals(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// delegation is reserved for admin and principal
	if actorRole != constants.RoleAdmin && actorRole != constants.RolePrincipal {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorManagement("permission delegation"))
	}

	var req permDTO.SetPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	set, err := permService.ValidateCapabilities(req.Capabilities)
	if err != nil {
		if errors.Is(err, permService.ErrUnknownCapability) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := permService.SetPermissions(ctl.DB.WithContext(c.Context()), req.UserID, actorID, set); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store permissions")
	}

	return helper.JsonUpdated(c, "Permissions updated", permDTO.ToPermissionSetResponse(req.UserID, set))
}

// GET /api/permissions
// Bulk view: every stored capability set, for the admin delegation page.
func (ctl *PermissionController) GetAll(c *fiber.Ctx) error {
	all, err := permService.GetAll(ctl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load permissions")
	}

	out := make([]permDTO.PermissionSetResponse, 0, len(all))
	for userID, set := range all {
		out = append(out, permDTO.ToPermissionSetResponse(userID, set))
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/permissions/:user_id
func (ctl *PermissionController) GetForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user id is invalid")
	}

	set, err := permService.GetPermissionSet(ctl.DB.WithContext(c.Context()), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load permissions")
	}
	return helper.JsonOK(c, "ok", permDTO.ToPermissionSetResponse(userID, set))
}

// GET /api/permissions/me
// A principal's own effective capability set (admins see everything).
func (ctl *PermissionController) GetMine(c *fiber.Ctx) error {
	actorID, actorRole, err := actorFromLocals(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if actorRole == constants.RoleAdmin {
		set := make(permService.CapabilitySet, len(constants.AllCapabilities))
		for _, name := range constants.AllCapabilities {
			set[name] = true
		}
		return helper.JsonOK(c, "ok", permDTO.ToPermissionSetResponse(actorID, set))
	}

	set, err := permService.GetPermissionSet(ctl.DB.WithContext(c.Context()), actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load permissions")
	}
	return helper.JsonOK(c, "ok", permDTO.ToPermissionSetResponse(actorID, set))
}

// RequireCapability builds a guard used by other features' routes: the
// request passes when the actor's role short-circuits (admin) or the
// delegated capability is granted.
func RequireCapability(db *gorm.DB, capability string, alwaysAllowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID, actorRole, err := actorFromLocals(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		for _, role := range alwaysAllowed {
			if actorRole == role {
				return c.Next()
			}
		}
		ok, err := permService.HasPermission(db.WithContext(c.Context()), actorID, actorRole, capability)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check permissions")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Missing capability: "+capability)
		}
		return c.Next()
	}
}
