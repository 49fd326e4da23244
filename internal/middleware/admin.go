package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/platewatch/platewatch/internal/dto"
	"github.com/platewatch/platewatch/internal/models"
	"gorm.io/gorm"
)

// AdminRequired resolves the acting user and rejects anyone whose role is
// not admin. It runs before the handler, so the role check always happens
// before any entity lookup.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}
		if !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Account is inactive",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Access forbidden",
			})
		}

		return c.Next()
	}
}
