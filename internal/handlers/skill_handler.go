package handlers

import (
	"blogapp/internal/models"
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SkillHandler handles HTTP requests for skills.
type SkillHandler struct {
	service  *services.SkillService
	validate *validator.Validate
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service *services.SkillService) *SkillHandler {
	return &SkillHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the skill routes with the Fiber app.
func (h *SkillHandler) RegisterRoutes(router fiber.Router) {
	skillRoutes := router.Group("/skills")
	skillRoutes.Get("/", h.HandleGetSkills)
	skillRoutes.Get("/:id", h.HandleGetSkillByID)
	skillRoutes.Post("/", h.HandleCreateSkill)
	skillRoutes.Put("/:id", h.HandleUpdateSkill)
	skillRoutes.Delete("/:id", h.HandleDeleteSkill)
}

func (h *SkillHandler) HandleGetSkills(c *fiber.Ctx) error {
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "skill query", err)
	}
	return c.JSON(views)
}

func (h *SkillHandler) HandleGetSkillByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "skill query", err)
	}
	for _, view := range views {
		if view.ID == uint(id) {
			return c.JSON(view)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (h *SkillHandler) HandleCreateSkill(c *fiber.Ctx) error {
	var req models.SkillCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Create(req)
	if err != nil {
		return serverError(c, "skill create", err)
	}
	return writeResult(c, result, true)
}

func (h *SkillHandler) HandleUpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var req models.SkillUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = uint(id)
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Update(req)
	if err != nil {
		return serverError(c, "skill update", err)
	}
	return writeResult(c, result, false)
}

func (h *SkillHandler) HandleDeleteSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	result, err := h.service.Delete(uint(id))
	if err != nil {
		return serverError(c, "skill delete", err)
	}
	return writeResult(c, result, false)
}
