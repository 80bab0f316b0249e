package handlers

import (
	"errors"
	"log"

	"pethome/internal/models"
	"pethome/internal/services"

	"github.com/gofiber/fiber/v2"
)

// maxListingImages caps the number of image parts accepted on a listing.
const maxListingImages = 5

// PetHandler handles HTTP requests for adoption listings.
type PetHandler struct {
	service *services.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.PetService) *PetHandler {
	return &PetHandler{
		service: service,
	}
}

// RegisterRoutes registers the pet routes. Reads are public; writes require
// the auth middleware.
func (h *PetHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	petRoutes := router.Group("/pets")
	petRoutes.Get("/", h.HandleListPets)
	petRoutes.Get("/:id", h.HandleGetPetByID)
	petRoutes.Post("/", authRequired, h.HandleCreatePet)
	petRoutes.Post("/:id/interest", authRequired, h.HandleExpressInterest)
}

// HandleListPets returns available pets matching the query filters.
func (h *PetHandler) HandleListPets(c *fiber.Ctx) error {
	filter := models.ParsePetFilter(map[string]string{
		"type":     c.Query("type"),
		"breed":    c.Query("breed"),
		"age":      c.Query("age"),
		"size":     c.Query("size"),
		"location": c.Query("location"),
		"search":   c.Query("search"),
	})

	pets, err := h.service.ListPets(filter)
	if err != nil {
		log.Printf("Error listing pets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching pets",
		})
	}
	return c.JSON(pets)
}

// HandleGetPetByID returns a single pet listing.
func (h *PetHandler) HandleGetPetByID(c *fiber.Ctx) error {
	pet, err := h.service.GetPetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Pet not found",
			})
		}
		log.Printf("Error getting pet %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching pet",
		})
	}
	return c.JSON(pet)
}

// HandleCreatePet creates a new listing from a multipart form, owned by the
// authenticated caller.
func (h *PetHandler) HandleCreatePet(c *fiber.Ctx) error {
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

	pet, fieldErrs := PetFromForm(form.Value)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
	}

	created, err := h.service.CreatePet(&pet, userID, len(images))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  validationErr.Fields,
			})
		}
		log.Printf("Error creating pet listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating pet listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleExpressInterest records the caller's adoption interest in a pet.
func (h *PetHandler) HandleExpressInterest(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	err := h.service.ExpressInterest(c.Params("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Pet not found",
			})
		case errors.Is(err, services.ErrAlreadyInterested):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "You have already expressed interest in this pet",
			})
		default:
			log.Printf("Error expressing interest in pet %s: %v", c.Params("id"), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error expressing interest",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Interest expressed successfully",
	})
}

// callerID returns the authenticated user id placed in the request context
// by the auth middleware.
func callerID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("user_id").(string)
	return userID, ok && userID != ""
}
