package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/middleware"
	"clinic-crm-server/internal/models"
	"clinic-crm-server/internal/utils"
)

// PatientHandler handles patient record requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// CreatePatientRequest represents the request body for creating a patient.
type CreatePatientRequest struct {
	Name    string `json:"name" binding:"required"`
	Age     *int   `json:"age" binding:"omitempty,gte=0,lte=150"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

// CreatePatient handles creating a new patient record. Sales only.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patient := models.Patient{
		Name:      req.Name,
		Age:       req.Age,
		Contact:   req.Contact,
		Notes:     req.Notes,
		CreatedBy: identity.Email,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to create patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients handles fetching the patients visible to the caller. Sales
// sees every patient; a doctor only sees patients assigned to them. The
// filter runs here even though the store query is already narrow, so a
// broader payload can never leak out of scope.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var patients []models.Patient
	if err := h.DB.Order("created_at desc").Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	scoped := core.Scope(identity, models.PatientsToCore(patients), nil)
	visible := make(map[string]bool, len(scoped.Patients))
	for _, p := range scoped.Patients {
		visible[p.ID] = true
	}

	result := make([]models.Patient, 0, len(scoped.Patients))
	for _, p := range patients {
		if visible[p.ID] {
			result = append(result, p)
		}
	}

	utils.Success(c, "Patients fetched successfully", result)
}

// AssignDoctorRequest represents the request body for assigning a doctor.
type AssignDoctorRequest struct {
	DoctorEmail string `json:"doctorEmail" binding:"required,email"`
}

// AssignDoctor handles assigning a doctor to a patient. Sales only. The
// email must belong to a doctor-role account; assignment drives everything
// the doctor is allowed to see.
func (h *PatientHandler) AssignDoctor(c *gin.Context) {
	patientID := c.Param("id")

	var req AssignDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.User
	if err := h.DB.Where("email = ? AND role = ?", req.DoctorEmail, core.RoleDoctor).First(&doctor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.BadRequest(c, "Doctor not found or user is not a doctor")
		} else {
			utils.InternalServerError(c, "Database error verifying doctor: "+err.Error())
		}
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patient.AssignedDoctorEmail = &doctor.Email
	if err := h.DB.Save(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to assign doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor assigned successfully", patient)
}
