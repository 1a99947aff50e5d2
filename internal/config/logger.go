package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogger sets up the process-wide logrus logger
func ConfigureLogger(level, format string) {
	log.SetOutput(os.Stdout)

	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, defaulting to info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
