package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/warp/payroll-engine/commands"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rootCmd := commands.New(&commands.Config{Log: log})
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("payroll run failed")
		os.Exit(1)
	}
}
