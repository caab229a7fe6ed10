package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"clinic-crm-server/internal/config"
	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/models"
)

// Seeds the database with demo staff, patients, and consultations so the
// front end has something to show on a fresh install.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	doctors, err := seedStaff(db)
	if err != nil {
		log.Fatalf("seed staff: %v", err)
	}
	if err := seedPatients(db, doctors, 40); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func seedStaff(db *gorm.DB) ([]models.User, error) {
	sales := models.User{
		Name:  gofakeit.Name(),
		Email: "sales@clinic.example",
		Role:  core.RoleSales,
	}
	if err := sales.SetPassword("sales-demo-pass"); err != nil {
		return nil, err
	}
	if err := db.Create(&sales).Error; err != nil {
		return nil, err
	}

	log.Println("seeding 5 doctors")
	doctors := make([]models.User, 0, 5)
	for i := 0; i < 5; i++ {
		doctor := models.User{
			Name:  "Dr. " + gofakeit.Name(),
			Email: fmt.Sprintf("doctor%d@clinic.example", i+1),
			Role:  core.RoleDoctor,
		}
		if err := doctor.SetPassword("doctor-demo-pass"); err != nil {
			return nil, err
		}
		if err := db.Create(&doctor).Error; err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}

func seedPatients(db *gorm.DB, doctors []models.User, count int) error {
	log.Printf("seeding %d patients", count)

	for i := 0; i < count; i++ {
		age := gofakeit.Number(1, 90)
		patient := models.Patient{
			Name:      gofakeit.Name(),
			Age:       &age,
			Contact:   "+91 " + gofakeit.DigitN(10),
			Notes:     gofakeit.Sentence(8),
			CreatedBy: "sales@clinic.example",
		}
		// Leave some patients unassigned so the doctor-scope filter has
		// something to hide
		if rand.Intn(4) != 0 {
			doctor := doctors[rand.Intn(len(doctors))]
			patient.AssignedDoctorEmail = &doctor.Email
		}
		if err := db.Create(&patient).Error; err != nil {
			return err
		}

		if err := seedConsultations(db, patient); err != nil {
			return err
		}
	}
	return nil
}

func seedConsultations(db *gorm.DB, patient models.Patient) error {
	// A mix of visit histories: none, one, or several per patient
	for j, visits := 0, rand.Intn(3); j < visits; j++ {
		consultation := models.Consultation{
			PatientID: patient.ID,
			VideoURL:  fmt.Sprintf("https://meet.clinic.example/%s", gofakeit.LetterN(10)),
			CreatedBy: "sales@clinic.example",
			Status:    core.StatusPending,
		}
		if rand.Intn(5) != 0 {
			at := gofakeit.DateRange(time.Now().Add(-30*24*time.Hour), time.Now().Add(14*24*time.Hour))
			consultation.ScheduledAt = &at
		}
		// Past visits come completed with notes so print gating is visible
		if consultation.ScheduledAt != nil && consultation.ScheduledAt.Before(time.Now()) {
			consultation.Status = core.StatusCompleted
			consultation.DoctorNotes = gofakeit.Sentence(12)
		}
		if err := db.Create(&consultation).Error; err != nil {
			return err
		}
	}
	return nil
}
