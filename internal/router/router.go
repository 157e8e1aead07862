package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/handler"
	"github.com/lernia/console-backend/internal/middleware"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Session      *handler.SessionHandler
	Dashboard    *handler.DashboardHandler
	Teacher      *handler.TeacherHandler
	Student      *handler.StudentHandler
	Course       *handler.CourseHandler
	Quiz         *handler.QuizHandler
	Video        *handler.VideoHandler
	Withdrawal   *handler.WithdrawalHandler
	Verification *handler.VerificationHandler
	Support      *handler.SupportHandler
	Audit        *handler.AuditHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	manager *session.Manager,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	if cfg.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxUploadBytes
	}

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login route (30 requests per minute per IP).
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Session (login public, rest authenticated) ─────────────────
	api := router.Group("/console/v1")
	api.POST("/session/login", loginLimiter.Middleware(), handlers.Session.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireSession(manager))
	{
		authed.GET("/session/me", handlers.Session.Me)
		authed.POST("/session/logout", handlers.Session.Logout)

		// ─── 2. Dashboard ──────────────────────────────────────────────
		authed.GET("/dashboard/stats", handlers.Dashboard.Stats)

		// ─── 3. Teachers ───────────────────────────────────────────────
		authed.GET("/teachers", handlers.Teacher.List)
		authed.GET("/teachers/paid-quiz-status", handlers.Teacher.PaidQuizStatuses)
		authed.PUT("/teachers/:id", handlers.Teacher.Update)
		authed.DELETE("/teachers/:id", handlers.Teacher.Delete)
		authed.PUT("/teachers/:id/paid-quiz-permission", handlers.Teacher.SetPaidQuizPermission)

		// ─── 4. Students ───────────────────────────────────────────────
		authed.GET("/students", handlers.Student.List)
		authed.GET("/students/:id", handlers.Student.Get)
		authed.PUT("/students/:id", handlers.Student.Update)
		authed.DELETE("/students/:id", handlers.Student.Delete)

		// ─── 5. Courses & Playlists ────────────────────────────────────
		authed.GET("/courses", handlers.Course.List)
		authed.POST("/courses", handlers.Course.Create)
		authed.PUT("/courses/:id", handlers.Course.Update)
		authed.DELETE("/courses/:id", handlers.Course.Delete)
		authed.GET("/courses/:id/playlist", handlers.Course.Playlist)
		authed.POST("/courses/:id/playlist", handlers.Course.AddPlaylistItem)
		authed.DELETE("/courses/:id/playlist/:itemId", handlers.Course.DeletePlaylistItem)

		// ─── 6. Quizzes ────────────────────────────────────────────────
		authed.GET("/quizzes", handlers.Quiz.List)
		authed.POST("/quizzes", handlers.Quiz.Create)
		authed.PUT("/quizzes/:id", handlers.Quiz.Update)
		authed.DELETE("/quizzes/:id", handlers.Quiz.Delete)
		authed.GET("/quizzes/:id/attempts", handlers.Quiz.Attempts)
		authed.GET("/quizzes/:id/rankings", handlers.Quiz.Rankings)

		// ─── 7. Videos ─────────────────────────────────────────────────
		authed.GET("/videos", handlers.Video.List)
		authed.POST("/videos", handlers.Video.Create)
		authed.PUT("/videos/:id", handlers.Video.Update)
		authed.DELETE("/videos/:id", handlers.Video.Delete)

		// ─── 8. Withdrawals ────────────────────────────────────────────
		authed.GET("/withdrawals", handlers.Withdrawal.List)
		authed.PUT("/withdrawals/:id/approve", handlers.Withdrawal.Approve)
		authed.PUT("/withdrawals/:id/reject", handlers.Withdrawal.Reject)
		authed.PUT("/withdrawals/:id/complete", handlers.Withdrawal.Complete)

		// ─── 9. Verifications (KYC) ────────────────────────────────────
		authed.GET("/verification/:role/all", handlers.Verification.All)
		authed.GET("/verification/:role/pending", handlers.Verification.Pending)
		authed.PUT("/verification/:role/:id/approve", handlers.Verification.Approve)
		authed.PUT("/verification/:role/:id/reject", handlers.Verification.Reject)

		// ─── 10. Support & Feedback ────────────────────────────────────
		authed.GET("/support/content", handlers.Support.Content)
		authed.POST("/support/content", handlers.Support.CreateContent)
		authed.GET("/support/feedback", handlers.Support.Feedback)
		authed.POST("/support/feedback/:id/respond", handlers.Support.RespondFeedback)

		// ─── 11. Audit trail ───────────────────────────────────────────
		authed.GET("/audit", handlers.Audit.Recent)
	}

	return router
}
