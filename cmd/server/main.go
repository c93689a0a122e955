package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vipgraph/internal/config"
	"vipgraph/internal/handler"
	"vipgraph/internal/hub"
	"vipgraph/internal/repository/sqlite"
	"vipgraph/internal/service"
)

func main() {
	// Command line flags override the config file
	addr := flag.String("addr", "", "HTTP listen address")
	dbPath := flag.String("db", "", "SQLite database path")
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting vipgraph server...")

	// Load configuration
	var cfg *config.Config
	var cfgSource string
	var err error
	if *configPath != "" {
		cfg, cfgSource, err = config.LoadFromPath(*configPath)
	} else {
		cfg, cfgSource, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgSource != "" {
		log.Printf("Config loaded: %s", cfgSource)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	// Initialize SQLite repository
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()
	log.Printf("Database opened: %s", cfg.Database.Path)

	// Initialize event bus
	eventBus := service.NewEventBus()

	// Initialize SSE hub
	sseHub := hub.New()
	go sseHub.Run()

	// Connect event bus to SSE hub
	eventChan := make(chan service.Event, 100)
	eventBus.Subscribe(eventChan)
	go func() {
		for event := range eventChan {
			sseHub.Broadcast(event.CompanyID, event)
		}
	}()

	// Initialize services
	recordSvc := service.NewRecordService(repo, eventBus)
	graphSvc := service.NewGraphService(repo)
	adminSvc := service.NewAdminService(repo)
	authSvc := service.NewAuthService(repo, cfg.Session.TTL)

	// Create the initial superadmin so a fresh installation can log in
	if err := adminSvc.EnsureSuperadmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("Failed to ensure superadmin: %v", err)
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authSvc)
	graphHandler := handler.NewGraphHandler(graphSvc, recordSvc, sseHub)
	adminHandler := handler.NewAdminHandler(adminSvc)

	login := func(h http.HandlerFunc) http.Handler { return authHandler.RequireLogin(h) }
	superadmin := func(h http.HandlerFunc) http.Handler { return authHandler.RequireSuperadmin(h) }

	// Setup routes
	mux := http.NewServeMux()

	// Session endpoints
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)

	// Graph endpoints
	mux.Handle("GET /api/graph", login(graphHandler.GetGraph))
	mux.Handle("GET /api/events", login(graphHandler.Events))

	// Record endpoints
	mux.Handle("GET /api/records", login(graphHandler.ListRecords))
	mux.Handle("POST /api/records", login(graphHandler.CreateRecord))

	// Relation endpoints
	mux.Handle("GET /api/relations", login(graphHandler.ListRelations))
	mux.Handle("POST /api/relations", login(graphHandler.CreateRelation))
	mux.Handle("DELETE /api/relations/{id}", login(graphHandler.DeleteRelation))

	// Admin endpoints
	mux.Handle("GET /api/admin/companies", superadmin(adminHandler.ListCompanies))
	mux.Handle("POST /api/admin/companies", superadmin(adminHandler.CreateCompany))
	mux.Handle("GET /api/admin/users", superadmin(adminHandler.ListUsers))
	mux.Handle("POST /api/admin/users", superadmin(adminHandler.CreateUser))

	// Apply middleware
	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS,
		handler.Logger,
	)

	// Create server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE connections stay open
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
