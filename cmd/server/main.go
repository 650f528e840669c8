package main

import (
	"context"
	"net/http"

	"staffhub/config"
	"staffhub/db"
	"staffhub/db/mongo"
	"staffhub/db/postgres"
	"staffhub/handlers"
	"staffhub/repository"
	"staffhub/routes"
	"staffhub/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET not set in environment")
	}

	var userRepo repository.UserRepository
	var employeeRepo repository.EmployeeRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logrus.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		employeeRepo = repository.NewPostgresEmployeeRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDB)
		if err := mg.Connect(); err != nil {
			logrus.Fatalf("failed to connect to mongo: %v", err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client, cfg.MongoDB)
		employeeRepo = repository.NewMongoEmployeeRepo(mg.Client, cfg.MongoDB)

	default:
		logrus.Fatalf("DB_TYPE %q not supported", cfg.DBType)
	}

	var imageStore storage.ImageStore
	uploadDir := ""
	switch cfg.StorageType {
	case "r2":
		store, err := storage.NewR2Store(context.Background(), storage.R2Config{
			Bucket:          cfg.R2Bucket,
			AccountID:       cfg.R2AccountID,
			PublicURL:       cfg.R2PublicURL,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
		})
		if err != nil {
			logrus.Fatalf("failed to set up R2 storage: %v", err)
		}
		imageStore = store
	default:
		store, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			logrus.Fatalf("failed to set up local storage: %v", err)
		}
		imageStore = store
		uploadDir = cfg.UploadDir
	}

	userHandler := &handlers.UserHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret}
	employeeHandler := &handlers.EmployeeHandler{Repo: employeeRepo, Store: imageStore}

	router := routes.New(routes.Options{
		UserHandler:     userHandler,
		EmployeeHandler: employeeHandler,
		JWTSecret:       cfg.JWTSecret,
		ClientOrigin:    cfg.ClientOrigin,
		UploadDir:       uploadDir,
	})

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
