package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Prajwal-sudo-600/AEGIS/cache"
	"github.com/Prajwal-sudo-600/AEGIS/config"
	database "github.com/Prajwal-sudo-600/AEGIS/db"
	"github.com/Prajwal-sudo-600/AEGIS/handler"
	natsClient "github.com/Prajwal-sudo-600/AEGIS/nats"
	"github.com/Prajwal-sudo-600/AEGIS/pkg/jwt"
	"github.com/Prajwal-sudo-600/AEGIS/publisher"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
	"github.com/Prajwal-sudo-600/AEGIS/service"
	"github.com/Prajwal-sudo-600/AEGIS/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	dbCfg, err := config.LoadDatabaseConfig("")
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbConn, err := database.NewConnection(database.Config{
		Host:         dbCfg.Host,
		Port:         dbCfg.Port,
		User:         dbCfg.User,
		Password:     dbCfg.Password,
		DBName:       dbCfg.DBName,
		SSLMode:      dbCfg.SSLMode,
		MaxOpenConns: dbCfg.MaxOpenConns,
		MaxIdleConns: dbCfg.MaxIdleConns,
		MaxLifetime:  dbCfg.MaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	log.Println("Successfully connected to database")

	serverCfg := config.LoadServerConfig()
	redisCfg := config.LoadRedisConfig()
	natsCfg := config.LoadNATSConfig()
	storageCfg := config.LoadStorageConfig()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	defer redisClient.Close()

	nats, err := natsClient.NewClient(natsClient.Config{
		URL:           natsCfg.URL,
		MaxReconnects: natsCfg.MaxReconnects,
		ReconnectWait: natsCfg.ReconnectWait,
		ClientID:      natsCfg.ClientID,
	})
	if err != nil {
		log.Fatalf("Failed to initialize NATS client: %v", err)
	}
	defer nats.Close()
	log.Println("NATS client initialized successfully")

	objectStore, err := storage.NewMinioStore(storage.Config{
		Endpoint:  storageCfg.Endpoint,
		AccessKey: storageCfg.AccessKey,
		SecretKey: storageCfg.SecretKey,
		UseSSL:    storageCfg.UseSSL,
		PublicURL: storageCfg.PublicURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewCache := cache.NewViewCache(redisClient, redisCfg.ViewTTL)
	invalidator := cache.NewInvalidator(nats, viewCache, ctx)
	if err := invalidator.Start(); err != nil {
		log.Fatalf("Failed to start view cache invalidator: %v", err)
	}

	eventPublisher := publisher.NewEventPublisher(nats)

	userRepo := repository.NewUserRepository(dbConn.DB)
	postRepo := repository.NewPostRepository(dbConn.DB)
	commentRepo := repository.NewCommentRepository(dbConn.DB)
	followRepo := repository.NewFollowRepository(dbConn.DB)
	likeRepo := repository.NewLikeRepository(dbConn.DB)

	graphSvc := service.NewSocialGraph(followRepo, eventPublisher)
	engagementSvc := service.NewEngagement(likeRepo, commentRepo, postRepo, eventPublisher, eventPublisher)
	contentSvc := service.NewContent(postRepo, eventPublisher)
	feedSvc := service.NewFeed(postRepo, likeRepo, commentRepo)
	networkSvc := service.NewNetwork(userRepo, followRepo)
	profileSvc := service.NewProfile(userRepo, graphSvc, objectStore, storageCfg.AvatarBucket, storageCfg.PostBucket, eventPublisher)

	jwtManager := jwt.NewManager(serverCfg.JWTSecret)

	router := handler.NewRouter(
		jwtManager,
		handler.NewFeedHandler(feedSvc, contentSvc, engagementSvc, viewCache),
		handler.NewNetworkHandler(networkSvc, graphSvc, viewCache),
		handler.NewProfileHandler(profileSvc),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverCfg.Port),
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer healthCancel()

		if err := dbConn.HealthCheck(healthCtx); err == nil {
			_ = dbConn.Close()
			log.Println("Database connection closed")
		}

		log.Println("Server stopped")
	}()

	log.Printf("Aegis HTTP server listening on port %s", serverCfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve: %v", err)
	}
}
