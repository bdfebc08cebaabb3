package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Client   Client   `json:"client"`
	YouTube  YouTube  `json:"youtube"`
	Audit    Audit    `json:"audit"`
	Pubsub   Pubsub   `json:"pubsub"`
}

type App struct {
	Port int `json:"port"`
}

type Database struct {
	Mongo Db `json:"mongo"`
	Psql  Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Client holds frontend origins allowed through CORS.
type Client struct {
	URL string `json:"url"`
}

// YouTube holds provider-client boundary settings. Credentials are NOT
// configured here: every request carries its own bearer token.
type YouTube struct {
	TimeoutSeconds int `json:"timeoutSeconds"`
}

// Audit selects the audit sink backend: "mongo" (default) or "postgres".
type Audit struct {
	Backend string `json:"backend"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = envOr("MONGO_HOST", "127.0.0.1")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = envOr("MONGO_PORT", "27017")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = envOr("MONGO_DB_NAME", "youtube-dashboard")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = envOr("DB_PORT", "5432")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 5000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 5000
	}

	if v := os.Getenv("CLIENT_URL"); v != "" {
		C.Client.URL = v
	}
	if C.Client.URL == "" {
		C.Client.URL = "http://localhost:5174"
	}

	if C.YouTube.TimeoutSeconds == 0 {
		C.YouTube.TimeoutSeconds = 30
	}

	if v := os.Getenv("AUDIT_BACKEND"); v != "" {
		C.Audit.Backend = v
	}
	if C.Audit.Backend == "" {
		C.Audit.Backend = "mongo"
	}

	if v := os.Getenv("PUBSUB_PROJECT_ID"); v != "" {
		C.Pubsub.ProjectID = v
	}
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = "audit-events"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
