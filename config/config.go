package config

import (
	"umdev/internal/logger"

	"github.com/spf13/viper"
)

// Settings holds the resolved tool configuration. The defaults reproduce the
// fixed constants of the original launcher; config.yaml can override them.
type Settings struct {
	Host           string
	Port           int
	PythonBinary   string
	PythonMinimum  string
	VenvDir        string
	Requirements   string
	AppImport      string
	ComposeFiles   []string
	CoverageSource string
}

func Init() {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		logger.Log.Info("No config file found; using defaults.")
	}

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("python.binary", "python3")
	viper.SetDefault("python.minimum", "3.11")
	viper.SetDefault("venv.dir", "venv")
	viper.SetDefault("requirements", "requirements.txt")
	viper.SetDefault("app.import", "app.main:app")
	viper.SetDefault("compose.files", []string{"docker-compose.yml"})
	viper.SetDefault("coverage.source", "app")
}

// Load reads the resolved settings out of viper. Init must run first.
func Load() Settings {
	return Settings{
		Host:           viper.GetString("server.host"),
		Port:           viper.GetInt("server.port"),
		PythonBinary:   viper.GetString("python.binary"),
		PythonMinimum:  viper.GetString("python.minimum"),
		VenvDir:        viper.GetString("venv.dir"),
		Requirements:   viper.GetString("requirements"),
		AppImport:      viper.GetString("app.import"),
		ComposeFiles:   viper.GetStringSlice("compose.files"),
		CoverageSource: viper.GetString("coverage.source"),
	}
}
