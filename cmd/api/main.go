package main

import (
	"fmt"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/config"
	appHTTP "github.com/distrohub/distro-backend-go/internal/handler/http"
	"github.com/distrohub/distro-backend-go/internal/pkg/cron"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/distrohub/distro-backend-go/internal/pkg/jwt"
	"github.com/distrohub/distro-backend-go/internal/repository/postgresql"
	authService "github.com/distrohub/distro-backend-go/internal/service/auth"
	damageService "github.com/distrohub/distro-backend-go/internal/service/damage"
	dashboardService "github.com/distrohub/distro-backend-go/internal/service/dashboard"
	distributorService "github.com/distrohub/distro-backend-go/internal/service/distributor"
	inquiryService "github.com/distrohub/distro-backend-go/internal/service/inquiry"
	orderService "github.com/distrohub/distro-backend-go/internal/service/order"
	productService "github.com/distrohub/distro-backend-go/internal/service/product"
	staffService "github.com/distrohub/distro-backend-go/internal/service/staff"
	taskService "github.com/distrohub/distro-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	distributorRepo := postgresql.NewDistributorRepository(db)
	shopRepo := postgresql.NewShopRepository(db)
	claimRepo := postgresql.NewClaimRepository(db)
	inquiryRepo := postgresql.NewInquiryRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	staffSvc := staffService.NewStaffService(db, userRepo)
	distributorSvc := distributorService.NewDistributorService(db, distributorRepo, shopRepo)
	damageSvc := damageService.NewClaimService(db, claimRepo, distributorRepo)
	inquirySvc := inquiryService.NewInquiryService(db, inquiryRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo, shopRepo)
	orderSvc := orderService.NewOrderService(db, orderRepo, distributorRepo, productRepo)
	productSvc := productService.NewProductService(db, productRepo)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Staff:       appHTTP.NewStaffHandler(staffSvc),
		Distributor: appHTTP.NewDistributorHandler(distributorSvc),
		Damage:      appHTTP.NewDamageHandler(damageSvc),
		Inquiry:     appHTTP.NewInquiryHandler(inquirySvc),
		Task:        appHTTP.NewTaskHandler(taskSvc),
		Order:       appHTTP.NewOrderHandler(orderSvc),
		Product:     appHTTP.NewProductHandler(productSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(jwtRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
