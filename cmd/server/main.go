package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"pitchjury/config"
	"pitchjury/controllers"
	"pitchjury/db"
	"pitchjury/middlewares"
	"pitchjury/routes"
	"pitchjury/services"
	"pitchjury/sheets"
	"pitchjury/utils"
	"pitchjury/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	evaluator, err := services.NewGeminiEvaluator(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini evaluator: %v", err)
	}

	mongoClient, err := db.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	var store services.ResultStore = db.NewEvaluationStore(mongoClient, db.DatabaseName(cfg.Database.URI))
	if cfg.Sheets.SpreadsheetId != "" {
		sheetStore, err := sheets.NewStore(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetId)
		if err != nil {
			log.Printf("Sheets mirror disabled: %v", err)
		} else {
			store = services.NewMultiStore(store, sheetStore)
			log.Println("Mirroring evaluations to organizer spreadsheet")
		}
	}

	if cfg.Database.SeedSampleData {
		utils.SeedSampleEvaluations(ctx, store)
	}

	timeout := time.Duration(cfg.Evaluator.TimeoutSeconds) * time.Second
	manager := services.NewSessionManager(evaluator, store, timeout)

	evaluationController := controllers.NewEvaluationController(manager, cfg.Upload.MaxSizeMB*1024*1024)
	dashboardController := controllers.NewDashboardController(store)

	router := setupRouter(cfg, evaluationController, dashboardController)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, evaluation *controllers.EvaluationController, dashboard *controllers.DashboardController) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	public := router.Group("/")
	{
		routes.SetupEvaluationRoutes(public, evaluation)
		public.GET("/ws/transcript", websocket.TranscriptHandler)
	}

	organizer := router.Group("/")
	organizer.Use(middlewares.OrganizerAuth(cfg.Organizer.AccessToken))
	{
		routes.SetupDashboardRoutes(organizer, dashboard)
	}

	return router
}
