// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	PetHandler         *handler.PetHandler
	AppointmentHandler *handler.AppointmentHandler
	VaccineHandler     *handler.VaccineHandler
	ExamHandler        *handler.ExamHandler
	MedicationHandler  *handler.MedicationHandler
	HistoryHandler     *handler.HistoryHandler
	ProfileHandler     *handler.ProfileHandler
	CompanionHandler   *handler.CompanionHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/google", r.AuthHandler.GoogleLogin)
		authGroup.POST("/password-reset", r.AuthHandler.PasswordReset)
	}

	// Public helpers; the assistant keeps no server-side state
	e.GET("/places/nearby", r.CompanionHandler.NearbyPlaces)
	assistantGroup := e.Group("/assistant")
	{
		assistantGroup.POST("/conversations", r.CompanionHandler.StartConversation)
		assistantGroup.POST("/replies", r.CompanionHandler.Reply)
	}

	profileGroup := e.Group("/profile", r.AuthMiddleware.Authenticate)
	{
		profileGroup.GET("", r.ProfileHandler.GetProfile)
		profileGroup.PATCH("", r.ProfileHandler.UpdateProfile)
		profileGroup.POST("/devices", r.ProfileHandler.RegisterDevice)
		profileGroup.GET("/contact-card.png", r.ProfileHandler.ContactCardQR)
	}

	e.POST("/reminders/dispatch", r.CompanionHandler.DispatchReminders, r.AuthMiddleware.Authenticate)

	petGroup := e.Group("/pets", r.AuthMiddleware.Authenticate)
	{
		petGroup.POST("", r.PetHandler.CreatePet)
		petGroup.GET("", r.PetHandler.ListPets)
		petGroup.GET("/:petId", r.PetHandler.GetPet)
		petGroup.PATCH("/:petId", r.PetHandler.UpdatePet)
		petGroup.POST("/:petId/gallery", r.PetHandler.AddGalleryPhotos)
		petGroup.DELETE("/:petId/gallery", r.PetHandler.RemoveGalleryPhoto)

		appointments := petGroup.Group("/:petId/appointments")
		appointments.GET("", r.AppointmentHandler.List)
		appointments.POST("", r.AppointmentHandler.Add)
		appointments.PATCH("/:id", r.AppointmentHandler.Update)
		appointments.DELETE("/:id", r.AppointmentHandler.Delete)

		vaccines := petGroup.Group("/:petId/vaccines")
		vaccines.GET("", r.VaccineHandler.List)
		vaccines.POST("", r.VaccineHandler.Add)
		vaccines.PATCH("/:id", r.VaccineHandler.Update)
		vaccines.DELETE("/:id", r.VaccineHandler.Delete)

		exams := petGroup.Group("/:petId/exams")
		exams.GET("", r.ExamHandler.List)
		exams.POST("", r.ExamHandler.Add)
		exams.PATCH("/:id", r.ExamHandler.Update)
		exams.DELETE("/:id", r.ExamHandler.Delete)
		exams.PUT("/:id/performed", r.ExamHandler.SetPerformed)
		exams.POST("/:id/files/:kind", r.ExamHandler.UploadFile)
		exams.DELETE("/:id/files/:kind", r.ExamHandler.DeleteFile)

		medications := petGroup.Group("/:petId/medications")
		medications.GET("", r.MedicationHandler.List)
		medications.POST("", r.MedicationHandler.Add)
		medications.PATCH("/:id", r.MedicationHandler.Update)
		medications.DELETE("/:id", r.MedicationHandler.Delete)
		medications.GET("/:id/status", r.HistoryHandler.MedicationStatus)

		petGroup.GET("/:petId/calendar", r.HistoryHandler.Calendar)
		petGroup.GET("/:petId/finance", r.HistoryHandler.Finance)
		petGroup.GET("/:petId/finance/stream", r.HistoryHandler.FinanceStream)
	}
}
