package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/fakebank/internal/config"
)

var (
	cfgFile   string
	configErr error
	Version   = "0.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"  ███████╗ █████╗ ██╗  ██╗███████╗██████╗  █████╗ ███╗   ██╗██╗  ██╗",
		"  ██╔════╝██╔══██╗██║ ██╔╝██╔════╝██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝",
		"  █████╗  ███████║█████╔╝ █████╗  ██████╔╝███████║██╔██╗ ██║█████╔╝ ",
		"  ██╔══╝  ██╔══██║██╔═██╗ ██╔══╝  ██╔══██╗██╔══██║██║╚██╗██║██╔═██╗ ",
		"  ██║     ██║  ██║██║  ██╗███████╗██████╔╝██║  ██║██║ ╚████║██║  ██╗",
		"  ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝",
		"",
		"           🏦 Synthetic bank data with consistent references",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "fakebank",
	Short: "Generate referentially consistent synthetic bank data",
	Long: `
fakebank synthesizes a relational dataset for a fictional bank: customers,
former customers, contracts, contacts, addresses, transfers and fraud holds.
Every dependent row references an existing customer and every date respects
the customer's lifecycle.

Outputs:
- CSV (default), JSON, XLSX or a SQLite file
- PostgreSQL, MySQL or SQLite databases via 'fakebank seed'`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("fakebank version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the CLI. The caller prints the returned error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fakebank.config.json or .yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log.level":        "log-level",
		"log.format":       "log-format",
		"metrics.textfile": "metrics-textfile",
	})

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// earlier files win; neither overrides the real environment
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(config.ConfigName)
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine; flags and env still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			configErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fakebank version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fakebank version %s\n", Version)
	},
}
