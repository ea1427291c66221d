package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stakeit-app/stakeit-api/internal/container"
	"github.com/stakeit-app/stakeit-api/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		GoalHandler:      c.GoalContainer.Handler,
		CheckinHandler:   c.CheckinContainer.Handler,
		LedgerHandler:    c.LedgerContainer.Handler,
		AnalyticsHandler: c.AnalyticsContainer.Handler,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := c.SettlementContainer.Sweeper
	if err := sweeper.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to start settlement sweeper")
	}
	defer sweeper.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		logrus.WithField("port", port).Info("StakeIt API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	sweeper.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Forced shutdown")
	}
}
