package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/config"
	appHTTP "github.com/evidencija/attendance-backend-go/internal/handler/http"
	"github.com/evidencija/attendance-backend-go/internal/pkg/cron"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
	"github.com/evidencija/attendance-backend-go/internal/pkg/nager"
	"github.com/evidencija/attendance-backend-go/internal/pkg/oauth"
	"github.com/evidencija/attendance-backend-go/internal/pkg/openmeteo"
	"github.com/evidencija/attendance-backend-go/internal/repository/postgresql"
	activityService "github.com/evidencija/attendance-backend-go/internal/service/activity"
	attendanceService "github.com/evidencija/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/evidencija/attendance-backend-go/internal/service/auth"
	holidayService "github.com/evidencija/attendance-backend-go/internal/service/holiday"
	userService "github.com/evidencija/attendance-backend-go/internal/service/user"
	weatherService "github.com/evidencija/attendance-backend-go/internal/service/weather"
	wfhService "github.com/evidencija/attendance-backend-go/internal/service/wfh"
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

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	wfhRepo := postgresql.NewWfhRepository(db)
	weatherRepo := postgresql.NewWeatherRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	adminActionRepo := postgresql.NewAdminActionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	openMeteoClient := openmeteo.NewClient(cfg.Weather.Latitude, cfg.Weather.Longitude, cfg.Weather.Timezone)
	nagerClient := nager.NewClient()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	userSvc := userService.NewUserService(db, userRepo, adminActionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, location)
	activitySvc := activityService.NewActivityService(activityRepo, userRepo)
	weatherSvc := weatherService.NewWeatherService(weatherRepo, openMeteoClient, cfg.Weather.LocationKey)
	wfhSvc := wfhService.NewWfhService(wfhRepo, weatherSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, nagerClient, cfg.Holiday.Country)

	scheduler := cron.NewScheduler()
	cron.NewWeatherJobs(weatherSvc, cfg.Weather.PastDays, cfg.Weather.AheadDays).RegisterJobs(scheduler)
	cron.NewHolidayJobs(holidaySvc, cfg.Holiday.Country).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	activityHandler := appHTTP.NewActivityHandler(activitySvc)
	wfhHandler := appHTTP.NewWfhHandler(wfhSvc)
	weatherHandler := appHTTP.NewWeatherHandler(weatherSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Environment:    cfg.App.Env,
		},
		JWTService,
		authHandler,
		userHandler,
		attendanceHandler,
		activityHandler,
		wfhHandler,
		weatherHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
