package http

import (
	"net/http"

	"hospital-appointment/internal/delivery/http/handler"
	"hospital-appointment/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router                    *mux.Router
	doctorHandler             *handler.DoctorHandler
	availabilityHandler       *handler.AvailabilityHandler
	patientAppointmentHandler *handler.PatientAppointmentHandler
	doctorAppointmentHandler  *handler.DoctorAppointmentHandler
	workingHourHandler        *handler.WorkingHourHandler
	availabilityBlockHandler  *handler.AvailabilityBlockHandler
	authMiddleware            *middleware.AuthMiddleware
	corsMiddleware            *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	availabilityHandler *handler.AvailabilityHandler,
	patientAppointmentHandler *handler.PatientAppointmentHandler,
	doctorAppointmentHandler *handler.DoctorAppointmentHandler,
	workingHourHandler *handler.WorkingHourHandler,
	availabilityBlockHandler *handler.AvailabilityBlockHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                    mux.NewRouter(),
		doctorHandler:             doctorHandler,
		availabilityHandler:       availabilityHandler,
		patientAppointmentHandler: patientAppointmentHandler,
		doctorAppointmentHandler:  doctorAppointmentHandler,
		workingHourHandler:        workingHourHandler,
		availabilityBlockHandler:  availabilityBlockHandler,
		authMiddleware:            authMiddleware,
		corsMiddleware:            corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory and availability (public)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/available-dates", r.availabilityHandler.GetAvailableDates).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/available-time-slots", r.availabilityHandler.GetAvailableTimeSlots).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/availability", r.availabilityHandler.CheckAvailability).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/appointments").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("", r.patientAppointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/me", r.patientAppointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/{id:[0-9]+}/cancel", r.patientAppointmentHandler.Cancel).Methods(http.MethodPost)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.doctorAppointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id:[0-9]+}/{action}", r.doctorAppointmentHandler.Decide).Methods(http.MethodPost)

	doctor.HandleFunc("/working-hours", r.workingHourHandler.GetMine).Methods(http.MethodGet)
	doctor.HandleFunc("/working-hours", r.workingHourHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/working-hours/{id:[0-9]+}", r.workingHourHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/working-hours/{id:[0-9]+}", r.workingHourHandler.Deactivate).Methods(http.MethodDelete)

	doctor.HandleFunc("/availability-blocks", r.availabilityBlockHandler.GetMine).Methods(http.MethodGet)
	doctor.HandleFunc("/availability-blocks", r.availabilityBlockHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/availability-blocks/{id:[0-9]+}", r.availabilityBlockHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/availability-blocks/{id:[0-9]+}", r.availabilityBlockHandler.Deactivate).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
