// Package cmd is for command line interactions with the PrimerPioneer
// application.
package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Mochibw/PrimerPioneer/config"
	"github.com/Mochibw/PrimerPioneer/internal/digest"
	"github.com/Mochibw/PrimerPioneer/logger"
)

var (
	enzymeDB = digest.NewEnzymeDB()

	conf = &config.Config{}

	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "primerpioneer",
	Short: `Simulate wet-lab DNA manipulation steps over JSON sequence records:
restriction digestion, PCR amplification and ligation/circularization`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig loads .env, viper settings and the logger, then merges any
// user enzyme file over the built-in table.
func initConfig() {
	_ = godotenv.Load() // missing .env is fine

	config.SetDefaults()
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("pioneer")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings: %v", err)
		}
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if err := logger.Init(level); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	c, err := config.New()
	if err != nil {
		logger.Fatal(err.Error())
	}
	conf = c

	if conf.EnzymeFile != "" {
		if err := enzymeDB.LoadEnzymeFile(conf.EnzymeFile); err != nil {
			logger.Fatal(err.Error())
		}
	}
}
