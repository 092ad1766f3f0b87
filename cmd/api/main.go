package main

import (
	"fmt"
	"net/http"
	"time"

	"ig-advisor-go/internal/advisor"
	"ig-advisor-go/internal/config"
	"ig-advisor-go/internal/dataset"
	"ig-advisor-go/internal/logger"
	"ig-advisor-go/internal/processor"
)

func main() {
	log := logger.New()
	log.WithField("service", "ig-advisor-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	// the workbook is re-read per request; this only reports what is there
	log.WithField("dataset_path", cfg.DatasetPath).Info("loading dataset summary")
	if summary, err := dataset.LoadAndSummarize(cfg.DatasetPath); err != nil {
		log.WithError(err).Warn("dataset not readable yet")
	} else {
		log.WithField("total_videos", summary.TotalVideos).Info("dataset summary loaded")
	}

	adv := advisor.New(advisor.Config{
		GatewayURL: cfg.LLM.GatewayURL,
		Model:      cfg.LLM.Model,
		APIKey:     cfg.LLM.APIKey,
		UseMock:    cfg.LLM.UseMock,
	})
	svc := processor.New(processor.Config{
		DatasetPath:   cfg.DatasetPath,
		DefaultUserID: cfg.DefaultUserID,
		Timeout:       cfg.RequestTimeout,
		Engine:        cfg.EngineOptions(),
	}, adv)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newMux(svc, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
