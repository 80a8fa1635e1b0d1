package routes

import (
	"net/http"

	"clinic-portal/clients"
	"clinic-portal/config"
	"clinic-portal/controllers"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	backend := clients.New(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout)
	sessions := services.NewSessionStore()
	carts := services.NewCartStore()

	mailer, err := models.NewEmailService()
	if err != nil {
		config.Log.Warn("Email disabled", config.Field("reason", err.Error()))
	}

	authSvc := services.NewAuthService(backend, sessions, mailer)
	medicineSvc := services.NewMedicineService(backend)
	checkoutSvc := services.NewCheckoutService(backend, carts, mailer)
	appointmentSvc := services.NewAppointmentService(backend, mailer)
	labTestSvc := services.NewLabTestService(backend, mailer)
	orderSvc := services.NewOrderService(backend)
	recordSvc := services.NewRecordService(backend)
	dashboardSvc := services.NewDashboardService(backend, backend, backend, backend)

	authCtrl := controllers.NewAuthController(authSvc)
	medicineCtrl := controllers.NewMedicineController(medicineSvc)
	cartCtrl := controllers.NewCartController(carts, medicineSvc, checkoutSvc)
	appointmentCtrl := controllers.NewAppointmentController(appointmentSvc)
	labTestCtrl := controllers.NewLabTestController(labTestSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	recordCtrl := controllers.NewRecordController(recordSvc)
	clinicCtrl := controllers.NewClinicController()
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/medicines", medicineCtrl.GetAllMedicines)
	router.GET("/medicines/categories", medicineCtrl.GetCategories)
	router.GET("/medicines/:id", medicineCtrl.GetMedicineByID)

	router.GET("/clinic/services", clinicCtrl.GetServices)
	router.GET("/clinic/services/:id", clinicCtrl.GetServiceByID)
	router.GET("/clinic/doctors", clinicCtrl.GetDoctors)
	router.GET("/clinic/lab-tests", clinicCtrl.GetLabTestMenu)
	router.GET("/clinic/test-packages", clinicCtrl.GetTestPackages)
	router.GET("/clinic/test-packages/:id", clinicCtrl.GetTestPackageByID)

	// Cart works for anonymous visitors; checkout picks up the session when
	// one is present and rejects the order when it isn't.
	cart := router.Group("/cart")
	cart.Use(middleware.OptionalAuth(sessions))
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/auth/logout", authCtrl.Logout)

		auth.GET("/dashboard", dashboardCtrl.GetDashboard)

		auth.GET("/appointments", appointmentCtrl.GetAppointments)
		auth.POST("/appointments", appointmentCtrl.CreateAppointment)
		auth.PATCH("/appointments/:id/cancel", appointmentCtrl.CancelAppointment)

		auth.GET("/lab-tests", labTestCtrl.GetLabTests)
		auth.POST("/lab-tests", labTestCtrl.CreateLabTest)
		auth.PATCH("/lab-tests/:id/cancel", labTestCtrl.CancelLabTest)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.PATCH("/orders/:id/cancel", orderCtrl.CancelOrder)

		auth.GET("/medical-records", recordCtrl.GetRecords)
		auth.POST("/medical-records", recordCtrl.UploadRecord)
		auth.GET("/medical-records/:id", recordCtrl.GetRecordByID)
		auth.DELETE("/medical-records/:id", recordCtrl.DeleteRecord)
	}
}
