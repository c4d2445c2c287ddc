// cmd/server/main.go
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/l27labs/dca-engine/internal/agent"
	"github.com/l27labs/dca-engine/internal/config"
	"github.com/l27labs/dca-engine/internal/controller"
	"github.com/l27labs/dca-engine/internal/logging"
	"github.com/l27labs/dca-engine/internal/monitoring"
	"github.com/l27labs/dca-engine/internal/repository"
	"github.com/l27labs/dca-engine/internal/service"
	"github.com/l27labs/dca-engine/internal/store"
)

const serviceName = "dca-engine"
const version = "1.0.0"

func main() {
	logger := logging.NewLoggerWithService(serviceName)
	config.LoadEnv(logger)

	fileStore := store.New(config.GetEnv("DATA_DIR", "data"), logger)
	draftRepo := repository.NewDraftRepository(fileStore)
	eventRepo := repository.NewEventRepository(fileStore)

	gateway := agent.NewClient(agent.Config{
		GatewayURL: config.GetEnv("AGENT_GATEWAY_URL", ""),
		Timeout:    config.GetEnvDuration("AGENT_TIMEOUT", 60*time.Second),
	}, logger)

	contentAgentID := config.GetEnv("CONTENT_AGENT_ID", agent.DefaultContentAgentID)
	crisisAgentID := config.GetEnv("CRISIS_AGENT_ID", agent.DefaultCrisisAgentID)
	strategyAgentID := config.GetEnv("STRATEGY_AGENT_ID", agent.DefaultStrategyAgentID)

	metrics := monitoring.NewMetrics()
	health := monitoring.NewHealthChecker(serviceName, version)
	appState := service.NewAppState()

	contentService := service.NewContentService(gateway, contentAgentID, draftRepo, eventRepo, metrics, logger)
	contentService.Activity = appState.SetAgentActivity
	crisisService := service.NewCrisisService(gateway, crisisAgentID, metrics, logger)
	crisisService.Activity = appState.SetAgentActivity
	strategyService := service.NewStrategyService(gateway, strategyAgentID, metrics, logger)
	strategyService.Activity = appState.SetAgentActivity

	calendarService := service.NewCalendarService(eventRepo)
	dashboardService := service.NewDashboardService(draftRepo, eventRepo)

	shellController := &controller.ShellController{
		AppState: appState,
		Agents:   agent.Roster(contentAgentID, crisisAgentID, strategyAgentID),
	}
	contentController := &controller.ContentController{Service: contentService}
	crisisController := &controller.CrisisController{Service: crisisService}
	strategyController := &controller.StrategyController{Service: strategyService}
	calendarController := &controller.CalendarController{
		Calendar:  calendarService,
		Dashboard: dashboardService,
		AppState:  appState,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(controller.Recoverer(logger))

	r.Get("/healthz", health.Handler())
	r.Handle("/metrics", metrics.Handler())

	// Shell
	r.Get("/state", shellController.GetState)
	r.Post("/state/navigate", shellController.Navigate)
	r.Post("/state/sidebar", shellController.ToggleSidebar)
	r.Post("/state/sample", shellController.SetSampleData)

	// Dashboard & collections
	r.Get("/dashboard", calendarController.GetDashboard)
	r.Get("/drafts", calendarController.ListDrafts)
	r.Get("/calendar", calendarController.GetCalendar)

	// Content Studio
	r.Get("/content", contentController.GetPanel)
	r.Post("/content/generate", contentController.Generate)
	r.Post("/content/post-text", contentController.SetPostText)
	r.Post("/content/approve", contentController.Approve)
	r.Post("/content/reject", contentController.Reject)

	// Rapid Response
	r.Get("/crisis", crisisController.GetPanel)
	r.Post("/crisis/analyze", crisisController.Analyze)
	r.Post("/crisis/response", crisisController.SetResponse)
	r.Post("/crisis/reset-edit", crisisController.ResetEdit)
	r.Post("/crisis/approve", crisisController.Approve)
	r.Post("/crisis/silence", crisisController.AdoptSilence)

	// Strategy & Analytics
	r.Get("/strategy", strategyController.GetPanel)
	r.Post("/strategy/analyze", strategyController.Analyze)
	r.Post("/strategy/sections/{key}", strategyController.ToggleSection)
	r.Post("/strategy/actions/{id}", strategyController.ToggleAction)

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.WithField("addr", addr).Info("server running")
	logger.Fatal(http.ListenAndServe(addr, r))
}
