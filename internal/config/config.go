package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyNWSBaseURL, "https://api.weather.gov")
	viper.SetDefault(KeyUserAgent, "weather-app/1.0")
	viper.SetDefault(KeyLogLevel, "info")
}

func NWSBaseURL() string { return viper.GetString(KeyNWSBaseURL) }
func UserAgent() string  { return viper.GetString(KeyUserAgent) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
