package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/handlers"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/middleware"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
	ucAppointment "github.com/BruksfildServices01/slot-scheduler/internal/usecase/appointment"
	ucSchedule "github.com/BruksfildServices01/slot-scheduler/internal/usecase/schedule"
)

// Deps are the singletons built in main.
type Deps struct {
	Engine   *booking.Resolver
	Services booking.ServiceCatalog
	Barbers  booking.BarberDirectory
	Sessions *session.Manager
	Audit    *audit.Dispatcher
	Metrics  *metrics.Collector
	Log      *zap.Logger
	Calendar handlers.Calendar

	// DB is nil under the memory driver; the audit log listing is then not routed.
	DB *gorm.DB
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(d.Log),
		middleware.RequestLogger(d.Log, d.Metrics),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(d.Engine, d.Audit, d.Metrics, d.Log)
	cancelUC := ucAppointment.NewCancelAppointment(d.Engine, d.Audit, d.Metrics, d.Log)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(d.Engine, d.Audit, d.Metrics, d.Log)
	confirmUC := ucAppointment.NewConfirmAppointment(d.Engine, d.Audit, d.Metrics, d.Log)
	completeUC := ucAppointment.NewCompleteAppointment(d.Engine, d.Audit, d.Metrics, d.Log)
	listUC := ucAppointment.NewListAppointments(d.Engine, d.Services, d.Barbers)
	availabilityUC := ucAppointment.NewGetAvailability(d.Engine, d.Services)

	// ======================================================
	// USE CASES: SCHEDULE
	// ======================================================
	viewUC := ucSchedule.NewViewSchedule(d.Engine)
	openUC := ucSchedule.NewOpenDay(d.Engine, d.Audit, d.Metrics, d.Log)
	addSlotUC := ucSchedule.NewAddSlot(d.Engine, d.Audit, d.Log)
	toggleUC := ucSchedule.NewToggleSlot(d.Engine, d.Audit, d.Metrics, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	sessionHandler := handlers.NewSessionHandler(d.Sessions, d.Barbers, d.Log)
	meHandler := handlers.NewMeHandler(d.Barbers)
	catalogHandler := handlers.NewCatalogHandler(d.Services, d.Barbers, availabilityUC, d.Calendar)
	appointmentHandler := handlers.NewAppointmentHandler(bookUC, cancelUC, rescheduleUC, confirmUC, completeUC, listUC)
	scheduleHandler := handlers.NewScheduleHandler(viewUC, openUC, addSlotUC, toggleUC, d.Calendar)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/session", sessionHandler.SignIn)
		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/services", catalogHandler.ListServices)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Sessions))
		{
			secured.DELETE("/session", sessionHandler.SignOut)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/barbers/:id/availability", catalogHandler.Availability)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			customer := secured.Group("/", middleware.RequireRole(session.RoleCustomer, session.RoleAdmin))
			customer.POST("/appointments", middleware.RequireRole(session.RoleCustomer), appointmentHandler.Create)
			customer.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			barber := secured.Group("/", middleware.RequireRole(session.RoleBarber, session.RoleAdmin))
			barber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// BARBER: OWN CHAIR
			// ------------------------------
			me := secured.Group("/me/schedule", middleware.RequireRole(session.RoleBarber))
			{
				me.GET("", scheduleHandler.Day)
				me.GET("/week", scheduleHandler.Week)
				me.POST("/open", scheduleHandler.Open)
				me.POST("/slots", scheduleHandler.AddSlot)
				me.PATCH("/slots/:time/toggle", scheduleHandler.Toggle)
			}

			// ------------------------------
			// ADMIN: ANY CHAIR
			// ------------------------------
			admin := secured.Group("/", middleware.RequireRole(session.RoleAdmin))
			{
				admin.GET("/barbers/:id/schedule", scheduleHandler.Day)
				admin.GET("/barbers/:id/schedule/week", scheduleHandler.Week)
				admin.POST("/barbers/:id/schedule/open", scheduleHandler.Open)
				admin.POST("/barbers/:id/schedule/slots", scheduleHandler.AddSlot)
				admin.PATCH("/barbers/:id/schedule/slots/:time/toggle", scheduleHandler.Toggle)

				if d.DB != nil {
					auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)
					admin.GET("/audit-logs", auditLogsHandler.List)
				}
			}
		}
	}
}
