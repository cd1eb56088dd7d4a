package main

import (
	"context"
	"log"
	"os"
	"time"

	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"apartio/internal/adapter/api"
	"apartio/internal/adapter/api/handler"
	apimiddleware "apartio/internal/adapter/api/middleware"
	"apartio/internal/adapter/api/router"
	"apartio/internal/adapter/repository"
	"apartio/internal/infrastructure/auth"
	"apartio/internal/infrastructure/storage"
	"apartio/internal/usecase"
	"apartio/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account JSON in the environment wins (production); a file path
	// is the local-development fallback.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	apartmentRepo := repository.NewFirestoreApartmentRepository(firestoreClient)
	galleryRepo := repository.NewFirestoreGalleryRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(cfg.AdminPassword, cfg.AdminPasswordHash, tokenManager)
	apartmentUseCase := usecase.NewApartmentUseCase(apartmentRepo)
	galleryUseCase := usecase.NewGalleryUseCase(galleryRepo, storageClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, storageClient)
	contactUseCase := usecase.NewContactUseCase(contactRepo)

	handler.Setup(authUseCase, apartmentUseCase, galleryUseCase, profileUseCase, contactUseCase)
	handler.SetupMediaHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	requestTimeout := time.Duration(cfg.RequestTimeout) * time.Second
	e.Server.ReadTimeout = requestTimeout
	e.Server.WriteTimeout = requestTimeout

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
