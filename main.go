package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/cruzjeff225/GastoApp/api"
	"github.com/cruzjeff225/GastoApp/internal/config"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/operator"
	"github.com/cruzjeff225/GastoApp/internal/service"
	"github.com/cruzjeff225/GastoApp/internal/storage"
	"github.com/cruzjeff225/GastoApp/internal/storage/docstore"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("gastoapp starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx := context.Background()
	app, err := docstore.NewApp(ctx, envConfig.FirestoreProjectID, envConfig.FirebaseCredentialsFile)
	if err != nil {
		logrus.WithError(err).Fatal("docstore.NewApp")
		return
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("firebase.Firestore")
		return
	}
	defer firestoreClient.Close()

	authClient, err := app.Auth(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("firebase.Auth")
		return
	}

	store := storage.NewStorage(firestoreClient)

	delegator := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	delegator.Start()

	svc := service.NewService(store, delegator, envConfig.StoreTimeout)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Verifier: middleware.NewFirebaseVerifier(authClient),
	}
	server := httpRest.Server()

	go func() {
		logger.WithField("port", envConfig.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HttpServer.Serve.listen error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("gastoapp shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), envConfig.StoreTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}

	// Drain pending deposits before closing the store client.
	delegator.Stop()

	logger.Info("gastoapp stopped")
}
