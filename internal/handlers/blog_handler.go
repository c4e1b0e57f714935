package handlers

import (
	"time"

	"blogapp/internal/models"
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blogs")
	blogRoutes.Get("/", h.HandleGetBlogs)
	blogRoutes.Get("/:id", h.HandleGetBlogByID)
	blogRoutes.Post("/", h.HandleCreateBlog)
	blogRoutes.Put("/:id", h.HandleUpdateBlog)
	blogRoutes.Delete("/:id", h.HandleDeleteBlog)
}

// HandleGetBlogs returns blogs matching the optional title, userId, and
// publish-date range query parameters.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	filter := models.BlogFilter{Title: c.Query("title")}
	if userID := c.QueryInt("userId", 0); userID > 0 {
		id := uint(userID)
		filter.UserID = &id
	}
	if raw := c.Query("publishDateStart"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid publishDateStart")
		}
		filter.PublishDateStart = &start
	}
	if raw := c.Query("publishDateEnd"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid publishDateEnd")
		}
		filter.PublishDateEnd = &end
	}

	views, err := h.service.Query(filter)
	if err != nil {
		return serverError(c, "blog query", err)
	}
	return c.JSON(views)
}

func (h *BlogHandler) HandleGetBlogByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	views, err := h.service.Query(models.BlogFilter{})
	if err != nil {
		return serverError(c, "blog query", err)
	}
	for _, view := range views {
		if view.ID == uint(id) {
			return c.JSON(view)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (h *BlogHandler) HandleCreateBlog(c *fiber.Ctx) error {
	var req models.BlogCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Create(req)
	if err != nil {
		return serverError(c, "blog create", err)
	}
	return writeResult(c, result, true)
}

func (h *BlogHandler) HandleUpdateBlog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var req models.BlogUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = uint(id)
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Update(req)
	if err != nil {
		return serverError(c, "blog update", err)
	}
	return writeResult(c, result, false)
}

func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	result, err := h.service.Delete(uint(id))
	if err != nil {
		return serverError(c, "blog delete", err)
	}
	return writeResult(c, result, false)
}
