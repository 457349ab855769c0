package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kevindurb/datadir-picker/internal/config"
	"github.com/kevindurb/datadir-picker/internal/logger"
	"github.com/kevindurb/datadir-picker/internal/picker"
)

var (
	cfg     *config.Config
	log     *logger.Logger
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "datadir-picker [app-name]",
	Short: "Choose and initialize an application data directory",
	Long: `Resolves the directory where an application stores its persistent data.
Checks free space at the candidate location in the background while the user
types, creates the directory on confirmation, and remembers the choice for
subsequent runs.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		cfg = config.NewConfig()
		if len(args) == 1 {
			cfg.AppName = args[0]
		}

		// Initialize logger
		var err error
		log, err = logger.NewLogger(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Close()

		if !cfg.NonInteractive && cfg.DataDir == "" {
			log.ShowHeader(cfg.AppName, cfg.RecommendedFreeBytes/config.GB)
		}

		dataDir, err := picker.New(cfg, log).Run()
		if err != nil {
			return err
		}

		log.Success(fmt.Sprintf("Data directory: %s", dataDir))
		fmt.Println(dataDir)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Configuration file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.datadir-picker.yaml)")

	// Core flags
	rootCmd.Flags().String("datadir", "", "Use this data directory and skip the selection dialog")
	rootCmd.Flags().Bool("choose-datadir", false, "Show the selection dialog even if a data directory already exists")
	rootCmd.Flags().Bool("non-interactive", false, "Never prompt; create the resolved directory if missing")
	rootCmd.Flags().Uint64("min-free-gb", config.DefaultRecommendedFreeBytes/config.GB, "Recommended free space in GB (warning only)")
	rootCmd.Flags().String("log-file", "", "Append log output to this file")

	// Bind flags to viper
	viper.BindPFlag("datadir", rootCmd.Flags().Lookup("datadir"))
	viper.BindPFlag("choose_datadir", rootCmd.Flags().Lookup("choose-datadir"))
	viper.BindPFlag("non_interactive", rootCmd.Flags().Lookup("non-interactive"))
	viper.BindPFlag("min_free_gb", rootCmd.Flags().Lookup("min-free-gb"))
	viper.BindPFlag("log_file", rootCmd.Flags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".datadir-picker")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
