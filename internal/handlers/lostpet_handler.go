package handlers

import (
	"errors"
	"log"

	"pethome/internal/models"
	"pethome/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LostPetHandler handles HTTP requests for lost and found pet reports.
type LostPetHandler struct {
	service *services.LostPetService
}

// NewLostPetHandler creates a new LostPetHandler.
func NewLostPetHandler(service *services.LostPetService) *LostPetHandler {
	return &LostPetHandler{
		service: service,
	}
}

// RegisterRoutes registers the lost pet routes.
func (h *LostPetHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	lostPetRoutes := router.Group("/lost-pets")
	lostPetRoutes.Get("/", h.HandleListLostPets)
	lostPetRoutes.Get("/:id", h.HandleGetLostPetByID)
	lostPetRoutes.Post("/", authRequired, h.HandleCreateLostPet)
}

// HandleListLostPets returns reports matching the query filters.
func (h *LostPetHandler) HandleListLostPets(c *fiber.Ctx) error {
	filter := models.ParseLostPetFilter(map[string]string{
		"status":   c.Query("status"),
		"type":     c.Query("type"),
		"location": c.Query("location"),
		"search":   c.Query("search"),
	})

	reports, err := h.service.ListLostPets(filter)
	if err != nil {
		log.Printf("Error listing lost pets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching lost pets",
		})
	}
	return c.JSON(reports)
}

// HandleGetLostPetByID returns a single report.
func (h *LostPetHandler) HandleGetLostPetByID(c *fiber.Ctx) error {
	report, err := h.service.GetLostPetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrLostPetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Lost pet not found",
			})
		}
		log.Printf("Error getting lost pet %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching lost pet",
		})
	}
	return c.JSON(report)
}

// HandleCreateLostPet creates a new report from a multipart form, filed by
// the authenticated caller.
func (h *LostPetHandler) HandleCreateLostPet(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid form data",
		})
	}

	images := form.File["images"]
	if len(images) > maxListingImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A maximum of 5 images is allowed",
		})
	}

	lostPet, fieldErrs := LostPetFromForm(form.Value)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
	}

	created, err := h.service.CreateLostPet(&lostPet, userID, len(images))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  validationErr.Fields,
			})
		}
		log.Printf("Error creating lost pet report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating lost pet report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
