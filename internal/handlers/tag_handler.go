package handlers

import (
	"blogapp/internal/models"
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	service  *services.TagService
	validate *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the tag routes with the Fiber app.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleGetTags)
	tagRoutes.Get("/:id", h.HandleGetTagByID)
	tagRoutes.Post("/", h.HandleCreateTag)
	tagRoutes.Put("/:id", h.HandleUpdateTag)
	tagRoutes.Delete("/:id", h.HandleDeleteTag)
}

func (h *TagHandler) HandleGetTags(c *fiber.Ctx) error {
	filter := models.TagFilter{Name: c.Query("name")}
	views, err := h.service.Query(filter)
	if err != nil {
		return serverError(c, "tag query", err)
	}
	return c.JSON(views)
}

func (h *TagHandler) HandleGetTagByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	views, err := h.service.Query(models.TagFilter{})
	if err != nil {
		return serverError(c, "tag query", err)
	}
	for _, view := range views {
		if view.ID == uint(id) {
			return c.JSON(view)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var req models.TagCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Create(req)
	if err != nil {
		return serverError(c, "tag create", err)
	}
	return writeResult(c, result, true)
}

func (h *TagHandler) HandleUpdateTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var req models.TagUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = uint(id)
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Update(req)
	if err != nil {
		return serverError(c, "tag update", err)
	}
	return writeResult(c, result, false)
}

func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	result, err := h.service.Delete(uint(id))
	if err != nil {
		return serverError(c, "tag delete", err)
	}
	return writeResult(c, result, false)
}
