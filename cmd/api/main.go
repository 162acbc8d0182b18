// PillPal API
//
// REST API for medication adherence tracking.
//
//	@title			PillPal API
//	@version		1.0
//	@description	Track medications and doses, score adherence risk, and surface weekly insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			medications
//	@tag.description	Medication regimen endpoints
//
//	@tag.name			doses
//	@tag.description	Dose scheduling and outcome endpoints
//
//	@tag.name			risk
//	@tag.description	Adherence risk and insights endpoints
//
//	@tag.name			alerts
//	@tag.description	Caregiver alert endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/pillpal/pillpal-api/internal/api"
	"github.com/pillpal/pillpal-api/internal/api/handler"
	"github.com/pillpal/pillpal-api/internal/config"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/langfuse"
	"github.com/pillpal/pillpal-api/internal/llm"
	"github.com/pillpal/pillpal-api/internal/notify"
	"github.com/pillpal/pillpal-api/internal/repository"
	"github.com/pillpal/pillpal-api/internal/seed"
	"github.com/pillpal/pillpal-api/internal/service"
	"github.com/pillpal/pillpal-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Medication{}, &domain.Dose{}, &domain.Alert{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize OpenTelemetry (exports to Langfuse when configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "pillpal-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer shutdownTracer(ctx)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	doseRepo := repository.NewDoseRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIRiskModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, risk scoring will use the heuristic fallback")
	}

	// Load prompt overrides from Langfuse prompt management
	promptCfg := langfuse.PromptLoaderConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
	}
	if openaiClient != nil {
		promptCfg.PromptName = "pillpal-risk-scorer"
		promptCfg.SavePath = "prompts/risk_scorer.txt"
		if prompt, err := langfuse.LoadPrompt(ctx, promptCfg); err == nil {
			openaiClient.SetRiskPrompt(prompt)
		}

		promptCfg.PromptName = "pillpal-insight-narrator"
		promptCfg.SavePath = "prompts/insight_narrator.txt"
		if prompt, err := langfuse.LoadPrompt(ctx, promptCfg); err == nil {
			openaiClient.SetNarratePrompt(prompt)
		}
	}

	// Initialize Langfuse ingestion client (no-op if not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize Twilio SMS sender (nil if not configured)
	smsSender := notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	if smsSender == nil {
		log.Println("Warning: Twilio not configured, insights SMS endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	medicationService := service.NewMedicationService(medicationRepo, userRepo)
	doseService := service.NewDoseService(doseRepo, medicationRepo, alertRepo, userRepo)
	alertService := service.NewAlertService(alertRepo, userRepo)
	featureService := service.NewFeatureService(doseRepo, medicationRepo, alertRepo)
	riskService := service.NewRiskService(featureService, openaiClient, userRepo)
	insightsService := service.NewInsightsService(featureService, openaiClient, doseRepo, userRepo)
	exportService := service.NewExportService(doseRepo, medicationRepo, userRepo)
	notifyService := service.NewNotifyService(insightsService, smsSender, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	medicationHandler := handler.NewMedicationHandler(medicationService)
	doseHandler := handler.NewDoseHandler(doseService)
	riskHandler := handler.NewRiskHandler(riskService, insightsService, langfuseClient)
	alertHandler := handler.NewAlertHandler(alertService)
	exportHandler := handler.NewExportHandler(exportService)
	notifyHandler := handler.NewNotifyHandler(notifyService)

	// Setup router
	router := api.NewRouter(userHandler, medicationHandler, doseHandler, riskHandler, alertHandler, exportHandler, notifyHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
