package responses

import "predictacare-service/internal/app/models"

type AdminDashboard struct {
	Doctors            int64                `json:"doctors"`
	Appointments       int64                `json:"appointments"`
	Patients           int64                `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

type DoctorDashboard struct {
	Earnings           float64              `json:"earnings"`
	Appointments       int                  `json:"appointments"`
	Patients           int                  `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}
