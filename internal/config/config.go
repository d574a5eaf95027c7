package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Postgres DBConfig
	Redis    RedisConfig
	S3       S3Config
	OpenAI   OpenAIConfig
	Veo      VeoConfig
	Bible    BibleConfig
	Logger   Logger
}

type ServerConfig struct {
	AppVersion   string
	Port         string
	Mode         string
	JwtSecretKey string
	ReadTimeout  int
	WriteTimeout int
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	PgDriver string
}

type RedisConfig struct {
	RedisAddr         string
	RedisPassword     string
	DB                int
	MinIdleConns      int
	PoolSize          int
	PoolTimeout       int
	VideoCachePrefix  string
	VideoCacheSeconds int
}

type S3Config struct {
	Endpoint             string
	Region               string
	AccessKey            string
	SecretKey            string
	VideoBucket          string
	PresignExpireMinutes int
}

type OpenAIConfig struct {
	APIKey      string
	ScriptModel string
	ChatModel   string
}

type VeoConfig struct {
	APIKey               string
	Model                string
	PollIntervalSeconds  int
	PollTimeoutSeconds   int
	WatchIntervalSeconds int
	StaleAfterMinutes    int
}

type BibleConfig struct {
	SourceURL       string
	ImportBatchSize int
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
