/*
Copyright © 2025 nextute
*/
package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nextute/chatbot-be/config"
	"github.com/nextute/chatbot-be/database"
	"github.com/nextute/chatbot-be/handler"
	"github.com/nextute/chatbot-be/middleware"
	"github.com/nextute/chatbot-be/repository"
	"github.com/nextute/chatbot-be/service"
	"github.com/spf13/cobra"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat server",
	Long:  `Starts the HTTP server that answers support-chat queries`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient := database.DefaultMongoClient
		if err := mongoClient.Ping(context.Background(), nil); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.Database)

		// init repos
		instituteRepo := repository.NewInstituteRepo(mongoDb.Collection("institutes"))
		userRepo := repository.NewUserRepo(mongoDb.Collection("users"))

		// init services
		userService := service.NewUserService(userRepo)
		knowledgeStore := service.NewKnowledgeStore(instituteRepo)
		if _, err := knowledgeStore.Rebuild(context.Background()); err != nil {
			// the store stays empty until the first successful refresh
			log.Printf("Initial knowledge rebuild failed: %v", err)
		}

		var embeddingIndex *service.EmbeddingIndex
		if cfg.OpenAIAPIKey != "" {
			embedder := service.NewOpenAIEmbedder(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel)
			embeddingIndex = service.NewEmbeddingIndex(embedder)
		} else {
			log.Println("No embedding provider configured, semantic search disabled")
		}
		retriever := service.NewRetriever(knowledgeStore, embeddingIndex, cfg.TopK)

		var aiService service.AIService
		switch cfg.AIProvider {
		case "gemini":
			keys := strings.Split(cfg.GeminiAPIKeys, ",")
			aiService, err = service.NewGeminiService(keys, cfg.Model)
			if err != nil {
				log.Fatalf("Failed to create Gemini service: %v", err)
			}
		default:
			aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
		}

		chatService := service.NewChatService(retriever, aiService)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		chatHandler := handler.NewChatHandler(chatService)
		knowledgeHandler := handler.NewKnowledgeHandler(knowledgeStore)
		instituteHandler := handler.NewInstituteHandler(instituteRepo)
		loginHandler := handler.NewLoginHandler(userService)
		userHandler := handler.NewUserHandler(userService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		// Public routes
		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)
		apiV1.POST("/chat", chatHandler.HandleChat)
		apiV1.GET("/ws/chat", wsService.HandleChat)
		apiV1.GET("/institutes", instituteHandler.HandleListInstitutes)

		// Admin routes - require admin authentication
		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AdminAuthMiddleware)
		{
			adminRoutes.POST("/knowledge/refresh", knowledgeHandler.HandleRefresh)
			adminRoutes.POST("/institutes/create", instituteHandler.HandleCreateInstitute)
			adminRoutes.GET("/institutes/get", instituteHandler.HandleGetInstitute)
			adminRoutes.PUT("/institutes/update", instituteHandler.HandleUpdateInstitute)
			adminRoutes.DELETE("/institutes/delete", instituteHandler.HandleDeleteInstitute)
			adminRoutes.POST("/users/create", userHandler.HandleCreateUser)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
