package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/middleware"
	"clinic-crm-server/internal/models"
	"clinic-crm-server/internal/utils"
)

// ConsultationHandler handles consultation scheduling and review requests.
type ConsultationHandler struct {
	DB *gorm.DB
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(db *gorm.DB) *ConsultationHandler {
	return &ConsultationHandler{DB: db}
}

// ScheduleConsultationRequest represents the request body for scheduling a
// video consultation.
type ScheduleConsultationRequest struct {
	PatientID   string     `json:"patientId" binding:"required,uuid"`
	VideoURL    string     `json:"videoUrl" binding:"required,url"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// ScheduleConsultation handles scheduling a new consultation. Sales only.
// The consultation always starts out pending; only a doctor moves it on.
func (h *ConsultationHandler) ScheduleConsultation(c *gin.Context) {
	var req ScheduleConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	// The consultation must hang off a live patient record
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	consultation := models.Consultation{
		PatientID:   req.PatientID,
		ScheduledAt: req.ScheduledAt,
		VideoURL:    req.VideoURL,
		CreatedBy:   identity.Email,
		Status:      core.StatusPending,
	}

	if err := h.DB.Create(&consultation).Error; err != nil {
		utils.InternalServerError(c, "Failed to schedule consultation: "+err.Error())
		return
	}

	utils.Created(c, "Consultation scheduled successfully", consultation)
}

// GetConsultations handles fetching the consultations visible to the caller,
// filtered the same way patients are: a doctor only sees consultations of
// patients assigned to them.
func (h *ConsultationHandler) GetConsultations(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patients, consultations, err := h.fetchSnapshot()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch consultations: "+err.Error())
		return
	}

	scoped := core.Scope(identity, models.PatientsToCore(patients), models.ConsultationsToCore(consultations))
	visible := make(map[string]bool, len(scoped.Consultations))
	for _, sc := range scoped.Consultations {
		visible[sc.ID] = true
	}

	result := make([]models.Consultation, 0, len(scoped.Consultations))
	for _, con := range consultations {
		if visible[con.ID] {
			result = append(result, con)
		}
	}

	utils.Success(c, "Consultations fetched successfully", result)
}

// GetLatestConsultations returns one consultation per visible patient: the
// one a view should treat as current when a patient has a visit history.
func (h *ConsultationHandler) GetLatestConsultations(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patients, consultations, err := h.fetchSnapshot()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch consultations: "+err.Error())
		return
	}

	scoped := core.Scope(identity, models.PatientsToCore(patients), models.ConsultationsToCore(consultations))
	latest := core.LatestPerPatient(scoped.Consultations)

	byID := make(map[string]models.Consultation, len(consultations))
	for _, con := range consultations {
		byID[con.ID] = con
	}

	result := make(map[string]models.Consultation, len(latest))
	for patientID, sc := range latest {
		result[patientID] = byID[sc.ID]
	}

	utils.Success(c, "Latest consultations fetched successfully", result)
}

// UpdateConsultationRequest represents a doctor's notes/status update. Both
// fields are optional; omitted fields keep their stored values.
type UpdateConsultationRequest struct {
	DoctorNotes *string `json:"doctorNotes"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending completed"`
}

// UpdateConsultation handles a doctor recording notes and completing a
// consultation. The lifecycle engine validates the merged record before
// anything is written: completing requires notes, and completed is terminal.
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	var req UpdateConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	_, consultation, _, ok := h.loadScoped(c)
	if !ok {
		return
	}

	update := core.ConsultationUpdate{DoctorNotes: req.DoctorNotes}
	if req.Status != nil {
		status := core.ConsultationStatus(*req.Status)
		update.Status = &status
	}

	next, err := core.ApplyUpdate(consultation.ToCore(), update)
	if err != nil {
		if errors.Is(err, core.ErrPreconditionFailed) {
			utils.UnprocessableEntity(c, err.Error())
		} else {
			utils.InternalServerError(c, "Failed to apply update: "+err.Error())
		}
		return
	}

	consultation.DoctorNotes = next.DoctorNotes
	consultation.Status = next.Status
	if err := h.DB.Save(&consultation).Error; err != nil {
		utils.InternalServerError(c, "Failed to update consultation: "+err.Error())
		return
	}

	utils.Success(c, "Consultation updated successfully", consultation)
}

// ConsultationSummary is the printable rendering of a completed
// consultation.
type ConsultationSummary struct {
	ConsultationID string     `json:"consultationId"`
	PatientName    string     `json:"patientName"`
	PatientAge     *int       `json:"patientAge,omitempty"`
	ScheduledAt    *time.Time `json:"scheduledAt,omitempty"`
	VideoURL       string     `json:"videoUrl"`
	DoctorNotes    string     `json:"doctorNotes"`
	AssignedDoctor *string    `json:"assignedDoctor,omitempty"`
}

// GetPrintableSummary returns the printable summary for a consultation.
// Refused unless the print gate passes: the consultation must be completed
// with notes on file.
func (h *ConsultationHandler) GetPrintableSummary(c *gin.Context) {
	_, consultation, patient, ok := h.loadScoped(c)
	if !ok {
		return
	}

	if !core.CanPrint(consultation.ToCore()) {
		utils.Conflict(c, core.ErrActionNotEligible.Error()+": only a completed consultation with notes can be printed")
		return
	}

	utils.Success(c, "Consultation summary fetched successfully", ConsultationSummary{
		ConsultationID: consultation.ID,
		PatientName:    patient.Name,
		PatientAge:     patient.Age,
		ScheduledAt:    consultation.ScheduledAt,
		VideoURL:       consultation.VideoURL,
		DoctorNotes:    consultation.DoctorNotes,
		AssignedDoctor: patient.AssignedDoctorEmail,
	})
}

// NotificationLinkResponse carries the outbound-message deep link for a
// consultation.
type NotificationLinkResponse struct {
	Link string `json:"link"`
}

// GetNotificationLink builds the outbound-message deep link announcing the
// consultation's video call. Refused when the patient has no phone number
// on file.
func (h *ConsultationHandler) GetNotificationLink(c *gin.Context) {
	_, consultation, patient, ok := h.loadScoped(c)
	if !ok {
		return
	}

	if !core.CanNotify(consultation.ToCore(), patient.ToCore()) {
		utils.Conflict(c, core.ErrActionNotEligible.Error()+": "+core.ErrNoContact.Error())
		return
	}

	link, err := core.BuildNotificationLink(consultation.ToCore(), patient.ToCore())
	if err != nil {
		utils.Conflict(c, err.Error())
		return
	}

	utils.Success(c, "Notification link built successfully", NotificationLinkResponse{Link: link})
}

// loadScoped loads the consultation named in the route together with its
// patient and refuses the request when the record sits outside the caller's
// scope. Out-of-scope reads answer 403 no matter what the store would
// accept.
func (h *ConsultationHandler) loadScoped(c *gin.Context) (core.Identity, models.Consultation, models.Patient, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return core.Identity{}, models.Consultation{}, models.Patient{}, false
	}

	consultationID := c.Param("id")

	var consultation models.Consultation
	if err := h.DB.First(&consultation, "id = ?", consultationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Consultation not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return core.Identity{}, models.Consultation{}, models.Patient{}, false
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", consultation.PatientID).Error; err != nil {
		utils.InternalServerError(c, "Database error loading patient: "+err.Error())
		return core.Identity{}, models.Consultation{}, models.Patient{}, false
	}

	if !core.PatientInScope(identity, patient.ToCore()) {
		utils.Forbidden(c, "You are not authorized to act on this consultation")
		return core.Identity{}, models.Consultation{}, models.Patient{}, false
	}

	return identity, consultation, patient, true
}

func (h *ConsultationHandler) fetchSnapshot() ([]models.Patient, []models.Consultation, error) {
	var patients []models.Patient
	if err := h.DB.Find(&patients).Error; err != nil {
		return nil, nil, err
	}

	var consultations []models.Consultation
	if err := h.DB.Order("scheduled_at asc").Find(&consultations).Error; err != nil {
		return nil, nil, err
	}

	return patients, consultations, nil
}
