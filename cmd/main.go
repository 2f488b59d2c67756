package main

import (
	"log"
	"net/http"
	"os"
	"sciencepress/database"
	"sciencepress/internal/cache"
	"sciencepress/internal/controllers"
	"sciencepress/internal/filestore"
	"sciencepress/internal/repository"
	"sciencepress/internal/storage"
	"sciencepress/internal/utils"
	"sciencepress/routes"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// The file store is the fallback when no database is configured,
	// and can be forced with DATA_FILE.
	useFileStore := os.Getenv("DATA_FILE") != "" || os.Getenv("DB_HOST") == ""
	log.Printf("File store mode: %v", useFileStore)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if useFileStore {
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = "./data.json"
		}

		store, err := filestore.Open(dataFile)
		if err != nil {
			log.Fatalf("Failed to open data file: %v", err)
		}
		log.Printf("Using JSON file store at %s", dataFile)

		datasetController := controllers.NewDatasetController(store, utils.LoadMailConfig())
		routes.RegisterDatasetRoutes(router, datasetController)
	} else {
		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		// Article reads go through redis when REDIS_URL is reachable.
		var articleRepo repository.ArticleRepository
		if os.Getenv("REDIS_URL") != "" {
			redisClient, err := cache.NewClient()
			if err != nil {
				log.Printf("Warning: redis unavailable, serving uncached: %v", err)
				articleRepo = repository.NewArticleRepository(database.DB)
			} else {
				articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
				log.Println("Article cache enabled")
			}
		} else {
			articleRepo = repository.NewArticleRepository(database.DB)
		}

		userRepo := repository.NewUserRepository(database.DB)
		imageRepo := repository.NewImageRepository(database.DB)
		favoriteRepo := repository.NewFavoriteRepository(database.DB)
		commentRepo := repository.NewCommentRepository(database.DB)
		ratingRepo := repository.NewRatingRepository(database.DB)

		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		baseURL := os.Getenv("BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:" + listenPort()
		}

		blobs, err := storage.NewLocalStorage(uploadDir, baseURL)
		if err != nil {
			log.Fatalf("Failed to set up upload storage: %v", err)
		}
		router.Static("/uploads", uploadDir)

		routes.RegisterArticleRoutes(router, controllers.NewArticleController(articleRepo))
		routes.RegisterUserRoutes(router, controllers.NewUserController(userRepo))
		routes.RegisterImageRoutes(router, controllers.NewImageController(imageRepo, blobs))
		routes.RegisterFavoriteRoutes(router, controllers.NewFavoriteController(favoriteRepo))
		routes.RegisterCommentRoutes(router, controllers.NewCommentController(commentRepo))
		routes.RegisterRatingRoutes(router, controllers.NewRatingController(ratingRepo))
	}

	port := listenPort()
	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func listenPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
