package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chordsheet/config"
)

var log = logrus.New()

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "chordsheet, parse chord charts and print them to pdf",
}

var configFlag string

func init() {
	RootCmd.PersistentFlags().StringVar(
		&configFlag, "config", "",
		"path to config file (yaml)")
}

func loadConfig() *config.Config {
	if configFlag == "" {
		return config.Default()
	}
	cfg, err := config.Load(configFlag)
	if err != nil {
		log.WithError(err).Warn("Could not load config, using defaults")
		return config.Default()
	}
	return cfg
}
