package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/config"
	"github.com/stemsi/exstem-console/internal/console"
	"github.com/stemsi/exstem-console/internal/handler"
	"github.com/stemsi/exstem-console/internal/logger"
	"github.com/stemsi/exstem-console/internal/repository"
	"github.com/stemsi/exstem-console/internal/router"
	"github.com/stemsi/exstem-console/internal/service"
	"github.com/stemsi/exstem-console/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("log_level", cfg.LogLevel).
		Strs("subjects", cfg.SeedSubjects).
		Msg("Starting ExStem Console")

	// ─── Initialize Validator ──────────────────────────────────────────
	validate := validator.New()

	// ─── Initialize Repositories ───────────────────────────────────────
	subjectRepo := repository.NewSubjectRepository(cfg.SeedSubjects)
	examRepo := repository.NewExamRepository()
	questionRepo := repository.NewQuestionRepository()

	// ─── Initialize Services ──────────────────────────────────────────
	subjectService := service.NewSubjectService(subjectRepo, log)
	examService := service.NewExamService(examRepo, questionRepo, validate, log)
	gradingService := service.NewGradingService(log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	p := console.NewPrompter(os.Stdin, os.Stdout)
	student := handler.NewStudentHandler(p, examService, gradingService, log)
	handlers := &router.Handlers{
		Doctor:  handler.NewDoctorHandler(p, subjectService, examService, student, log),
		Student: student,
	}

	// ─── Run Session ───────────────────────────────────────────────────
	r := router.SetupRouter(p, handlers, log)
	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("Session failed")
	}

	log.Info().Msg("Session ended")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
