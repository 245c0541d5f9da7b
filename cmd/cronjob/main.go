package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"wheelshare-backend/internal/config"
	"wheelshare-backend/internal/jobs"
	"wheelshare-backend/internal/logger"
	"wheelshare-backend/internal/repository/postgres"
	"wheelshare-backend/internal/scheduler"
	"wheelshare-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g. 'activate-due', 'complete-ended', 'pickup-reminders', 'all-hourly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Wheelshare Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	clock := service.NewRealClock()

	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	reservationService := service.NewReservationService(
		store,
		store.ReservationRepository,
		store.ClientRepository,
		store.VehicleRepository,
		store.NotificationRepository,
		emailService,
		clock,
	)

	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:       emailService,
		Reservation: reservationService,
	}, cfg, clock)

	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Block until interrupted; sweeps run on their cron schedule.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Shutting down", "signal", sig.String())
}

func runSingleJob(jr *jobs.JobRunner, name string) {
	switch name {
	case "activate-due":
		jr.ActivateDueReservations()
	case "complete-ended":
		jr.CompleteEndedReservations()
	case "pickup-reminders":
		jr.SendPickupReminders()
	case "all-hourly":
		jr.RunAllHourlyJobs()
	default:
		log.Fatalf("Unknown job: %s", name)
	}
}
