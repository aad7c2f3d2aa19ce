package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Session session
	CardApp cardApp
}

type db struct {
	Path string `env:"DATABASE_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type session struct {
	TTLHours int `env:"SESSION_TTL"`
}

type cardApp struct {
	Dir string `env:"CARD_APP_DIR"`
}

type defaultConfig struct {
	RunAddress string
	DBPath     string
	CardAppDir string
	SessionTTL int
	Env        string
}

func NewConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress: viper.GetString("run_address"),
		DBPath:     viper.GetString("database_path"),
		CardAppDir: viper.GetString("card_app_dir"),
		SessionTTL: viper.GetInt("session_ttl"),
		Env:        viper.GetString("app_env"),
	}
	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.DBPath == "" {
		d.DBPath = "./data/questbuilder.db"
	}
	if d.CardAppDir == "" {
		d.CardAppDir = "./card-builder/out"
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = 24
	}
	if d.Env == "" {
		d.Env = EnvLocal
	}

	return &Config{
		Env:     d.Env,
		DB:      db{Path: d.DBPath},
		Server:  server{RunAddress: d.RunAddress},
		Session: session{TTLHours: d.SessionTTL},
		CardApp: cardApp{Dir: d.CardAppDir},
	}
}
