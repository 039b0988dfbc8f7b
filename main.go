package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mrossi/rendiconti/cmd/brand"
	"mrossi/rendiconti/cmd/dashboard"
	"mrossi/rendiconti/cmd/importcsv"
	"mrossi/rendiconti/cmd/property"
	"mrossi/rendiconti/cmd/record"
	"mrossi/rendiconti/cmd/reset"
	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/cmd/statement"
	"mrossi/rendiconti/cmd/template"
)

func init() {
	// Load environment variables before any logging happens, then set the
	// global log level so every logger picks it up.
	loadEnvSilently()
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(statement.Cmd)
	root.Cmd.AddCommand(property.Cmd)
	root.Cmd.AddCommand(record.Cmd)
	root.Cmd.AddCommand(brand.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
	root.Cmd.AddCommand(template.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global log level for all logrus instances.
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
