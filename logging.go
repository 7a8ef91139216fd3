package main

import (
	log "github.com/sirupsen/logrus"

	"clipfeed/config"
)

// setupLogging configures the process-wide logger from config.
func setupLogging(cfg *config.Config) {
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, defaulting to info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
