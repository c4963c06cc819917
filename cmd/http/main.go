package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-skill/internal/app/setup"

	"go.uber.org/zap"
)

func main() {
	bootstrap, err := setup.NewBootstrap(context.Background())
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	skillUsecase, err := setup.NewSkillUsecase(context.Background(), bootstrap)
	if err != nil {
		bootstrap.Logger.Fatal("Error wiring the skill", zap.Error(err))
	}
	router := setup.NewRouter(bootstrap, skillUsecase)

	internalConfig := bootstrap.InternalConfig
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: router,
	}

	go func() {
		bootstrap.Logger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			bootstrap.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrap.Logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrap.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing backing services: %v", err)
	}

	log.Println("Server exiting")
}
