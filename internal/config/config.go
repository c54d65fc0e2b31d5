package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeScript      = "script"
	ModeInteractive = "interactive"
)

type Config struct {
	LogLevel    string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Mode        string   `yaml:"mode" env:"TICTACTOE_MODE" env-default:"script"`
	Board       Board    `yaml:"board"`
	Players     []Player `yaml:"players"`
	Moves       []Move   `yaml:"moves"`
	Redis       Redis    `yaml:"redis"`
	FeedEnabled bool     `yaml:"feed-enabled" env:"TICTACTOE_FEED_ENABLED" env-default:"false"`
}

type Board struct {
	Rows    int `yaml:"rows" env-default:"3"`
	Columns int `yaml:"columns" env-default:"3"`
}

type Player struct {
	Name string `yaml:"name"`
	Sign string `yaml:"sign"`
}

type Move struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Config) IsInteractive() bool {
	return that.Mode == ModeInteractive
}
