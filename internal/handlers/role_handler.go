package handlers

import (
	"blogapp/internal/models"
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RoleHandler handles HTTP requests for roles.
type RoleHandler struct {
	service  *services.RoleService
	validate *validator.Validate
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the role routes with the Fiber app.
func (h *RoleHandler) RegisterRoutes(router fiber.Router) {
	roleRoutes := router.Group("/roles")
	roleRoutes.Get("/", h.HandleGetRoles)
	roleRoutes.Get("/:id", h.HandleGetRoleByID)
	roleRoutes.Post("/", h.HandleCreateRole)
	roleRoutes.Put("/:id", h.HandleUpdateRole)
	roleRoutes.Delete("/:id", h.HandleDeleteRole)
}

func (h *RoleHandler) HandleGetRoles(c *fiber.Ctx) error {
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "role query", err)
	}
	return c.JSON(views)
}

func (h *RoleHandler) HandleGetRoleByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "role query", err)
	}
	for _, view := range views {
		if view.ID == uint(id) {
			return c.JSON(view)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (h *RoleHandler) HandleCreateRole(c *fiber.Ctx) error {
	var req models.RoleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Create(req)
	if err != nil {
		return serverError(c, "role create", err)
	}
	return writeResult(c, result, true)
}

func (h *RoleHandler) HandleUpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var req models.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = uint(id)
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Update(req)
	if err != nil {
		return serverError(c, "role update", err)
	}
	return writeResult(c, result, false)
}

func (h *RoleHandler) HandleDeleteRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	result, err := h.service.Delete(uint(id))
	if err != nil {
		return serverError(c, "role delete", err)
	}
	return writeResult(c, result, false)
}
