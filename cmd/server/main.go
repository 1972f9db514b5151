package main

import (
	"fmt"
	"log"

	_ "klagedok/docs"
	"klagedok/internal/accesspolicy"
	"klagedok/internal/config"
	"klagedok/internal/handler"
	"klagedok/internal/repository/postgres"
	"klagedok/internal/router"
	"klagedok/internal/service"
	s3storage "klagedok/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	caseRepo := postgres.NewCaseRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Load the access-policy rule table and build the evaluator
	ruleStore := accesspolicy.NewStore()
	table, err := ruleStore.Load(cfg.Policy.RulePath)
	if err != nil {
		return fmt.Errorf("failed to load access rules: %w", err)
	}
	catalog := accesspolicy.NewMessageCatalog()
	eval, err := accesspolicy.NewEvaluator(table, catalog)
	if err != nil {
		return fmt.Errorf("failed to build access evaluator: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	docSvc := service.NewDocumentService(docRepo, caseRepo, s3Client, eval, &cfg.S3)
	caseSvc := service.NewCaseService(caseRepo)
	accessSvc := service.NewAccessService(docRepo, caseRepo, userRepo, eval)
	reportSvc := service.NewReportService(docRepo, accessSvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	caseH := handler.NewCaseHandler(caseSvc)
	docH := handler.NewDocumentHandler(docSvc)
	accessH := handler.NewAccessHandler(accessSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db, ruleStore)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, authSvc, authH, caseH, docH, accessH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
