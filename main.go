package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning-service/internal/cache"
	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/metrics"
	"learning-service/internal/middleware"
	"learning-service/internal/repository"
	"learning-service/internal/service"
	"learning-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Printf("Warning: could not create indexes: %s", err)
	}
	cancel()

	cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	defer cache.Close()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURL != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// Repositories
	courseRepo := repository.NewCourseRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	userRepo := repository.NewUserRepository(database)
	enrollmentRepo := repository.NewEnrollmentRepository(database)
	studentRepo := repository.NewStudentRepository(database)
	attendanceRepo := repository.NewAttendanceRepository(database)
	resultRepo := repository.NewTestResultRepository(database)
	academicRepo := repository.NewAcademicRecordRepository(database)

	// Services
	courseService := service.NewCourseService(courseRepo, quizRepo, enrollmentRepo)
	quizService := service.NewQuizService(quizRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo)
	studentService := service.NewStudentService(studentRepo, enrollmentRepo, attendanceRepo, academicRepo, resultRepo)
	adminService := service.NewAdminService(userRepo, studentRepo, courseRepo, enrollmentRepo, attendanceRepo, resultRepo, academicRepo)
	paymentService := service.NewPaymentService(cache.Client, cfg.RazorpaySecret, enrollmentService)

	// Handlers
	courseHandler := handlers.NewCourseHandler(courseService, cfg.UploadDir)
	quizHandler := handlers.NewQuizHandler(quizService)
	authHandler := handlers.NewAuthHandler(authService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	studentHandler := handlers.NewStudentHandler(studentService, enrollmentService)
	adminHandler := handlers.NewAdminHandler(adminService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg.RazorpayKeyID)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FEAddress},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(metrics.RequestCounter())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireStaff := middleware.RequireRole("admin", "lecturer")
	requireAdmin := middleware.RequireRole("admin")

	// Auth
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", withEvent(publisher, "user.registered", authHandler.Register))
		auth.POST("/lecturer/register", withEvent(publisher, "lecturer.registered", authHandler.LecturerRegister))
		auth.POST("/login", authHandler.Login)
		auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
	}

	// Courses: reads are public, mutations are staff-only
	courses := r.Group("/api/courses")
	{
		courses.GET("", courseHandler.ListCourses)
		courses.GET("/search", courseHandler.SearchCourses)
		courses.GET("/statistics", requireAuth, requireAdmin, courseHandler.GetStatistics)
		courses.GET("/:id", courseHandler.GetCourse)
		courses.GET("/:id/sections", courseHandler.GetSections)

		staff := courses.Group("", requireAuth, requireStaff)
		{
			staff.POST("", withEvent(publisher, "course.created", courseHandler.CreateCourse))
			staff.PUT("/:id", courseHandler.UpdateCourse)
			staff.DELETE("/:id", withEvent(publisher, "course.deleted", courseHandler.DeleteCourse))
			staff.PATCH("/:id/toggle", courseHandler.ToggleCourse)
			staff.POST("/:id/sections", courseHandler.AddSection)
			staff.DELETE("/:id/sections/:sectionId", courseHandler.DeleteSection)
			staff.PATCH("/:id/sections/:sectionId/toggle", courseHandler.ToggleSection)
			staff.POST("/:id/sections/:sectionId/lessons", courseHandler.AddLesson)
			staff.DELETE("/:id/sections/:sectionId/lessons/:lessonId", courseHandler.DeleteLesson)
			staff.PATCH("/:id/sections/:sectionId/lessons/:lessonId/toggle", courseHandler.ToggleLesson)
		}
	}

	// Quizzes
	quizzes := r.Group("/api/quizzes")
	{
		quizzes.GET("/course/:courseId", quizHandler.ListByCourse)
		quizzes.GET("/section/:sectionId", quizHandler.ListBySection)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.POST("/counts", quizHandler.QuizCounts)
		quizzes.POST("/:id/submit", requireAuth, withEvent(publisher, "quiz.submitted", quizHandler.SubmitQuiz))

		staff := quizzes.Group("", requireAuth, requireStaff)
		{
			staff.POST("", withEvent(publisher, "quiz.created", quizHandler.CreateQuiz))
			staff.PUT("/:id", quizHandler.UpdateQuiz)
			staff.DELETE("/:id", quizHandler.DeleteQuiz)
			staff.PATCH("/:id/toggle", quizHandler.ToggleQuiz)
		}
	}

	// Enrollments
	enrollments := r.Group("/api/enrollments", requireAuth)
	{
		enrollments.POST("", withEvent(publisher, "enrollment.created", enrollmentHandler.Enroll))
		enrollments.GET("/student/:studentId", enrollmentHandler.ListByStudent)
		enrollments.GET("/course/:courseId", enrollmentHandler.ListByCourse)
	}

	// Student records
	student := r.Group("/api/student", requireAuth)
	{
		student.POST("/change-password", authHandler.ChangePassword)
		student.GET("/:id/courses", studentHandler.EnrolledCourses)
		student.GET("/:id/attendance", studentHandler.AttendanceByStudent)
		student.GET("/:id/results", studentHandler.TestResultsByStudent)
		student.GET("/:id/records", studentHandler.AcademicByStudent)

		staff := student.Group("", requireStaff)
		{
			staff.GET("", studentHandler.ListStudents)
			staff.GET("/:id", studentHandler.GetStudent)
			staff.POST("", studentHandler.CreateStudent)
			staff.PUT("/:id", studentHandler.UpdateStudent)
			staff.DELETE("/:id", withEvent(publisher, "student.deleted", studentHandler.DeleteStudent))
			staff.POST("/attendance", studentHandler.RecordAttendance)
			staff.POST("/results", studentHandler.RecordTestResult)
			staff.POST("/records", studentHandler.RecordAcademic)
		}
	}

	// Admin dashboard
	admin := r.Group("/api/admin", requireAuth, requireAdmin)
	{
		admin.GET("/students/total", adminHandler.TotalStudents)
		admin.GET("/lecturers/active", adminHandler.ActiveLecturers)
		admin.GET("/students/pending-fees", adminHandler.PendingFeeStudents)
		admin.GET("/courses/total", adminHandler.TotalCourses)
		admin.GET("/enrollments/total", adminHandler.TotalEnrollments)
		admin.GET("/attendance", adminHandler.AllAttendance)
		admin.GET("/test-results", adminHandler.AllTestResults)
		admin.GET("/academic-records", adminHandler.AllAcademicRecords)
	}

	// Payments
	payments := r.Group("/api/payments")
	{
		payments.POST("/order", requireAuth, paymentHandler.CreateOrder)
		payments.POST("/verify", withEvent(publisher, "payment.verified", paymentHandler.VerifyPayment))
	}

	// Consul registration is optional; local runs skip it.
	if cfg.ConsulAddress != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Warning: consul client init failed: %s", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Warning: consul registration failed: %s", err)
		} else {
			defer registry.Deregister()
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("Listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %s", err)
	}
}

// withEvent wraps a handler so a domain event fires after it runs, when a
// publisher is configured.
func withEvent(publisher *event.EventPublisher, eventType string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c)
		if publisher != nil && c.Writer.Status() < 400 {
			publisher.Publish(eventType, gin.H{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
				"status": c.Writer.Status(),
			})
		}
	}
}
