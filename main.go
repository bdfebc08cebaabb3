package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	youtubeclient "github.com/omkar342/youtube-dashboard-server/infrastructure/clients/youtube"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/configuration"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/persistence"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/pubsub"
	httpHandler "github.com/omkar342/youtube-dashboard-server/interfaces/http"
	"github.com/omkar342/youtube-dashboard-server/server"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoDb := initiateMongo(ctx)

	auditLog := initiateAuditLog(mongoDb)

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - audit events will not be broadcast")
		pubSubClient = nil
	}
	if pubSubClient != nil {
		auditLog = pubsub.NewBroadcastingAuditLog(auditLog, pubSubClient, configuration.C.Pubsub.Topic)
	}

	clientFactory := youtubeclient.NewClientFactory(
		time.Duration(configuration.C.YouTube.TimeoutSeconds) * time.Second,
	)

	youtubeUseCase := usecase.NewYouTubeUseCase(clientFactory, auditLog)
	youtubeHandler := httpHandler.NewYouTubeHandler(youtubeUseCase)

	// Notes need MongoDB; without it the note routes are not registered.
	var noteHandler httpHandler.INoteHandler
	if mongoDb != nil {
		noteRepository := persistence.NewNoteRepository(mongoDb, configuration.C.Database.Mongo.Name)
		noteUseCase := usecase.NewNoteUseCase(noteRepository, auditLog)
		noteHandler = httpHandler.NewNoteHandler(noteUseCase)
	} else {
		logger.GetLogger().Info("MongoDB not available in this environment; note routes disabled")
	}

	aiHandler := httpHandler.NewAIHandler(usecase.NewSuggestionUseCase())

	router := server.InitiateRouter(youtubeHandler, noteHandler, aiHandler, configuration.C.Client.URL)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

func initiateMongo(ctx context.Context) *mongo.Client {
	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without Mongo features")
		return nil
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := mongoDb.Ping(pingCtx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - continuing without Mongo features")
		return nil
	}

	logger.GetLogger().Info("MongoDB connected successfully")
	return mongoDb
}

// initiateAuditLog picks the durable sink per configuration and falls back to
// the logger-backed sink when no store is reachable. Mutations still succeed
// when the sink is degraded; appends surface as response warnings instead.
func initiateAuditLog(mongoDb *mongo.Client) repository.IAuditLog {
	switch configuration.C.Audit.Backend {
	case "postgres":
		psqlDb, err := persistence.NewPostgreSQLDB()
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PostgreSQL not available - falling back to logger audit sink")
			break
		}
		if err := persistence.EnsureAuditLogSchema(psqlDb); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring audit log schema")
			break
		}
		return persistence.NewPostgresAuditLogRepository(psqlDb)
	default:
		if mongoDb != nil {
			return persistence.NewMongoAuditLogRepository(mongoDb, configuration.C.Database.Mongo.Name)
		}
		logger.GetLogger().Warn("MongoDB not available - falling back to logger audit sink")
	}
	return persistence.NewLoggerAuditLogRepository()
}
