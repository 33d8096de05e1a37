/*
Copyright © 2025 nextute
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/nextute/chatbot-be/config"
	"github.com/nextute/chatbot-be/database"
	"github.com/nextute/chatbot-be/repository"
	"github.com/nextute/chatbot-be/service"
	"github.com/spf13/cobra"
)

// refreshKnowledgeCmd rebuilds the knowledge base once and prints the entry
// count. Useful for checking the institute data before starting the server.
var refreshKnowledgeCmd = &cobra.Command{
	Use:   "refresh-knowledge",
	Short: "Rebuild the chatbot knowledge base from current institute records",
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

		instituteRepo := repository.NewInstituteRepo(mongoDb.Collection("institutes"))
		knowledgeStore := service.NewKnowledgeStore(instituteRepo)

		count, err := knowledgeStore.Rebuild(context.Background())
		if err != nil {
			log.Fatalf("Failed to rebuild knowledge base: %v", err)
		}
		fmt.Println("knowledge base rebuilt with", count, "entries")
	},
}

func init() {
	rootCmd.AddCommand(refreshKnowledgeCmd)
}
