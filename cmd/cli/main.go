package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"work-program-scheduler/config"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/entity"
	"work-program-scheduler/internal/infrastructure/cache"
	"work-program-scheduler/internal/infrastructure/database"
	"work-program-scheduler/internal/repository"
	"work-program-scheduler/internal/service"
	"work-program-scheduler/internal/usecase"
)

// App holds the dependencies the commands share
type App struct {
	cfg         *config.Config
	db          *gorm.DB
	redisClient *redis.Client
	logger      *logrus.Logger
	ctx         context.Context
}

var app *App

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Work program scheduler CLI - manage schema, seed data, and schedule runs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, and Redis
func initApp() error {
	app = &App{
		ctx: context.Background(),
	}

	app.logger = logrus.StandardLogger()
	app.logger.SetLevel(logrus.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.cfg = cfg

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.db = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.redisClient = redisClient

	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	if app.db != nil {
		if sqlDB, err := app.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if app.redisClient != nil {
		app.redisClient.Close()
	}
}

// Command definitions

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parents before children so foreign keys resolve.
			err := app.db.AutoMigrate(
				&entity.User{},
				&entity.Department{},
				&entity.Qualification{},
				&entity.Shift{},
				&entity.Role{},
				&entity.Resident{},
				&entity.ResidentQualification{},
				&entity.AvailabilityWindow{},
				&entity.Appointment{},
				&entity.WorkLimit{},
				&entity.SchedulePeriod{},
				&entity.ShiftAssignment{},
				&entity.ScheduleConflict{},
				&entity.AuditLog{},
			)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("Database migration completed")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the scheduling catalog and accounts from a seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")

			file, err := service.LoadSeedFile(path)
			if err != nil {
				return fmt.Errorf("failed to load seed file: %w", err)
			}

			seedService := service.NewSeedService(app.db, app.logger)
			if err := seedService.Apply(file); err != nil {
				return fmt.Errorf("failed to apply seed file: %w", err)
			}

			fmt.Printf("\nSeed applied from %s\n\n", path)
			fmt.Printf("Departments:    %d\n", len(file.Departments))
			fmt.Printf("Qualifications: %d\n", len(file.Qualifications))
			fmt.Printf("Shifts:         %d\n", len(file.Shifts))
			fmt.Printf("Users:          %d\n", len(file.Users))
			fmt.Printf("Residents:      %d\n", len(file.Residents))
			fmt.Printf("Work limits:    %d\n", len(file.WorkLimits))
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("file", "database/seed.yaml", "Path to the seed file")

	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run shift assignment generation for a schedule period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID, _ := cmd.Flags().GetInt("period")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			generationUsecase := newGenerationUsecase()

			var req *dto.GenerateScheduleRequest
			if from != "" || to != "" {
				req = &dto.GenerateScheduleRequest{StartDate: from, EndDate: to}
			}

			result, err := generationUsecase.GenerateSchedule(app.ctx, periodID, req)
			if err != nil {
				return err
			}

			fmt.Printf("\nSchedule generated for period %d (%s)\n\n", result.Period.ID, result.Period.Name)
			fmt.Printf("Assignments created: %d\n", result.Stats.AssignmentsCreated)
			fmt.Printf("Conflicts found:     %d\n", result.Stats.ConflictsFound)
			fmt.Printf("Dates processed:     %d\n", result.Stats.DatesProcessed)
			fmt.Printf("Scheduled hours:     %s\n", result.Stats.ScheduledHours)
			fmt.Printf("Duration:            %dms\n", result.Stats.DurationMS)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("period", 0, "Schedule period ID (required)")
	cmd.Flags().String("from", "", "Start date YYYY-MM-DD (defaults to the period start)")
	cmd.Flags().String("to", "", "End date YYYY-MM-DD (defaults to the period end)")
	cmd.MarkFlagRequired("period")

	return cmd
}

// newGenerationUsecase wires the same generation graph the HTTP server
// uses, minus the delivery layer.
func newGenerationUsecase() usecase.ScheduleGenerationUsecase {
	periodRepo := repository.NewSchedulePeriodRepository()
	shiftRepo := repository.NewShiftRepository()
	residentRepo := repository.NewResidentRepository()
	workLimitRepo := repository.NewWorkLimitRepository()
	assignmentRepo := repository.NewShiftAssignmentRepository()
	conflictRepo := repository.NewScheduleConflictRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	store := repository.NewGenerationStore(app.db, periodRepo, shiftRepo, residentRepo, workLimitRepo, assignmentRepo, conflictRepo)
	auditService := service.NewAuditService(app.db, app.logger, auditLogRepo)
	seriesService := service.NewAppointmentSeriesService(app.logger)
	lockService := service.NewPeriodLockService(app.redisClient, app.logger, app.cfg.Scheduler.GenerationLockTTL)

	return usecase.NewScheduleGenerationUsecase(app.db, app.logger, store, lockService, seriesService, auditService)
}
