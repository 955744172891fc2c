package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aio-wfh/wfh-backend-go/internal/config"
	appHTTP "github.com/aio-wfh/wfh-backend-go/internal/handler/http"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/database"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/email"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/jwt"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/storage"
	"github.com/aio-wfh/wfh-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/aio-wfh/wfh-backend-go/internal/service/auth"
	fileService "github.com/aio-wfh/wfh-backend-go/internal/service/file"
	notificationService "github.com/aio-wfh/wfh-backend-go/internal/service/notification"
	requestService "github.com/aio-wfh/wfh-backend-go/internal/service/request"
	scheduleService "github.com/aio-wfh/wfh-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	credentialRepo := postgresql.NewCredentialRepository(db)
	requestRepo := postgresql.NewWFHRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	authSvc := serviceAuth.NewAuthService(credentialRepo, employeeRepo, jwtService)
	fileSvc := fileService.NewService(fileStorage)
	scheduleSvc := scheduleService.NewScheduleService(employeeRepo, requestRepo)
	wfhSvc := requestService.NewWFHService(txManager, requestRepo, employeeRepo, fileSvc, emailService, logger)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	requestHandler := appHTTP.NewRequestHandler(wfhSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		scheduleHandler,
		requestHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
