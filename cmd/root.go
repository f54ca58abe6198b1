package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "licitia"
)

type Config struct {
	Documents    *DocumentsConfig `mapstructure:"documents"`
	ProcessValue float64          `mapstructure:"process-value"`
	Pricing      *PricingConfig   `mapstructure:"pricing"`
}

// DocumentsConfig points to the text files of the three documents to
// analyze. PDF extraction happens before licitia runs.
type DocumentsConfig struct {
	Certificate string `mapstructure:"certificate"`
	RUT         string `mapstructure:"rut"`
	Notice      string `mapstructure:"notice"`
}

type PricingConfig struct {
	UserType string `mapstructure:"user-type"`
	Annexes  int    `mapstructure:"annexes"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "licitia analyzes tender documents and scores how fit a bidder is for a public process",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is licitia.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional when every input comes from flags.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
