package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"go-bovine/ai"
	"go-bovine/config"
	"go-bovine/db"
	"go-bovine/fetchers"
	"go-bovine/routes"
	"go-bovine/scheduler"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	if cfg.OpenAIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	fmt.Println("CLIENT_URL: ", cfg.ClientURL)

	// Init the signal store: Firestore when credentials are present,
	// otherwise an in-process store for local development.
	var store db.SignalStore
	if cfg.FirebaseCredentials != "" {
		firestoreClient, err := db.InitFirestore()
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer db.CloseFirestore() // Firestore client is closed on exit
		store = db.NewFirestoreStore(firestoreClient)
	} else {
		log.Println("FIREBASE_CREDENTIALS not set, using in-memory store")
		store = db.NewMemoryStore()
	}

	sched := scheduler.New(store, fetchers.All(store, cfg), cfg.RefreshInterval)
	sched.StartCron()
	sched.TriggerAsync(context.Background())

	analyst := ai.NewAnalyst(cfg.OpenAIKey, store)

	r := routes.SetupRouter(store, sched, analyst, cfg.ClientURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
