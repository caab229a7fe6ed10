package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/models"
	"clinic-crm-server/internal/utils"
)

// UserHandler handles staff directory requests.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetDoctors handles fetching all doctor-role accounts. The sales workflow
// uses this list when assigning a doctor to a patient.
func (h *UserHandler) GetDoctors(c *gin.Context) {
	var doctors []models.User
	if err := h.DB.Where("role = ?", core.RoleDoctor).Order("name asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(doctors))
	for i, d := range doctors {
		sanitized[i] = d.Sanitize()
	}

	utils.Success(c, "Doctors fetched successfully", sanitized)
}
