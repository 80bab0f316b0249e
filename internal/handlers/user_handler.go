package handlers

import (
	"log"

	"pethome/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes the authenticated caller's own listings and reports.
type UserHandler struct {
	petService     *services.PetService
	lostPetService *services.LostPetService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(petService *services.PetService, lostPetService *services.LostPetService) *UserHandler {
	return &UserHandler{
		petService:     petService,
		lostPetService: lostPetService,
	}
}

// RegisterRoutes registers the user-scoped routes; all of them require auth.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	userRoutes := router.Group("/user", authRequired)
	userRoutes.Get("/pets", h.HandleGetUserPets)
	userRoutes.Get("/lost-pets", h.HandleGetUserLostPets)
}

// HandleGetUserPets returns the caller's own listings, any status.
func (h *UserHandler) HandleGetUserPets(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	pets, err := h.petService.ListPetsByOwner(userID)
	if err != nil {
		log.Printf("Error listing pets for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching user pets",
		})
	}
	return c.JSON(pets)
}

// HandleGetUserLostPets returns the caller's own lost pet reports.
func (h *UserHandler) HandleGetUserLostPets(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	reports, err := h.lostPetService.ListLostPetsByReporter(userID)
	if err != nil {
		log.Printf("Error listing lost pets for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching user lost pets",
		})
	}
	return c.JSON(reports)
}
