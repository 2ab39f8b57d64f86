package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	Debug        bool
	TestMode     bool
	AppName      string
	Build        string
	DataFile     string
	OutputDir    string
	RollbarToken string

	PDF struct {
		ChromePath string
		Timeout    time.Duration
	}
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", false)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Portfolio Document Manager")
	conf.SetDefault("build", "v1.0.5")
	conf.SetDefault("dataFile", "portfolio_data.json")
	conf.SetDefault("outputDir", ".")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("pdf.chromePath", "")
	conf.SetDefault("pdf.timeout", 30*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		DataFile:     conf.GetString("dataFile"),
		OutputDir:    conf.GetString("outputDir"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	cfg.PDF.ChromePath = conf.GetString("pdf.chromePath")
	cfg.PDF.Timeout = conf.GetDuration("pdf.timeout")
	return cfg
}
