// Command seed populates sample mentorships, tasks, sessions and
// resources for existing accounts. Run it after creating at least one
// mentor and one mentee through /signup.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/internal/config"
	pgInfra "github.com/mentortrack/backend/internal/infrastructure/postgres"
	"github.com/mentortrack/backend/pkg/logger"
	"github.com/mentortrack/backend/repository/postgres"
	"github.com/mentortrack/backend/usecase/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.Logger.Level, Encoding: "console"})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	mentorshipRepo := postgres.NewMentorshipRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	scheduleUseCase := schedule.New(sessionRepo, mentorshipRepo, zapLogger)

	mentors, err := userRepo.ListByRole(ctx, domain.RoleMentor)
	if err != nil {
		zapLogger.Fatal("listing mentors failed", zap.Error(err))
	}
	mentees, err := userRepo.ListByRole(ctx, domain.RoleMentee)
	if err != nil {
		zapLogger.Fatal("listing mentees failed", zap.Error(err))
	}
	if len(mentors) == 0 || len(mentees) == 0 {
		zapLogger.Fatal("create at least one mentor and one mentee account first (POST /signup)")
	}

	// Distribute mentees among mentors round-robin.
	for i, mentee := range mentees {
		mentor := mentors[i%len(mentors)]

		created, err := mentorshipRepo.Create(ctx, &domain.Mentorship{
			MentorID: mentor.ID,
			MenteeID: mentee.ID,
			Status:   domain.MentorshipActive,
			Progress: 25,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateMentorship) {
				zapLogger.Info("mentorship already exists, skipping",
					zap.Int64("mentor_id", mentor.ID),
					zap.Int64("mentee_id", mentee.ID),
				)
				continue
			}
			zapLogger.Fatal("creating mentorship failed", zap.Error(err))
		}

		deadline := time.Now().AddDate(0, 0, 14)
		sampleTasks := []domain.Task{
			{Title: "Complete Go Basics", Description: "Work through the language fundamentals", Status: domain.TaskAssigned},
			{Title: "Build a Web Scraper", Description: "Fetch and parse a page with the standard library", Status: domain.TaskInProgress},
			{Title: "Data Analysis Project", Description: "Analyze a dataset and summarize findings", Status: domain.TaskAssigned},
		}
		for _, t := range sampleTasks {
			t.MentorshipID = created.ID
			t.Deadline = &deadline
			if _, err := taskRepo.Create(ctx, &t); err != nil {
				zapLogger.Fatal("creating task failed", zap.Error(err))
			}
		}

		if _, err := scheduleUseCase.Create(ctx, schedule.CreateInput{
			MentorshipID: created.ID,
			Title:        "Weekly Check-in",
			SessionDate:  time.Now().AddDate(0, 0, 3),
			MeetingLink:  "https://meet.example.com/sample",
		}); err != nil {
			zapLogger.Fatal("creating session failed", zap.Error(err))
		}

		zapLogger.Info("created mentorship",
			zap.String("mentor", mentor.FullName),
			zap.String("mentee", mentee.FullName),
			zap.Int64("mentorship_id", created.ID),
		)
	}

	for _, mentor := range mentors {
		sampleResources := []domain.Resource{
			{Title: "Go Documentation", URL: "https://go.dev/doc/", ResourceType: "documentation"},
			{Title: "Web Development Course", URL: "https://www.youtube.com/watch?v=example", ResourceType: "video"},
		}
		for _, res := range sampleResources {
			res.MentorID = mentor.ID
			if _, err := resourceRepo.Create(ctx, &res); err != nil {
				zapLogger.Fatal("creating resource failed", zap.Error(err))
			}
		}
		zapLogger.Info("added resources", zap.String("mentor", mentor.FullName))
	}
}
