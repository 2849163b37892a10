package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken          string   `env:"DISCORD_TOKEN,required,notEmpty"`
	CommandPrefix         string   `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath           string   `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogFilePath           string   `env:"LOG_FILE_PATH" envDefault:"bot.log"`
	RosterPath            string   `env:"ROSTER_PATH"`
	DeveloperID           string   `env:"DEVELOPER_ID"`
	InitSlashCommands     bool     `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	DiscordGuildBlacklist []string `env:"DISCORD_GUILD_BLACKLIST" envSeparator:","`
}

// New parses the environment into a Config. A missing or empty DISCORD_TOKEN
// aborts startup.
func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("[ERR] Config: ", err)
	}
	return cfg
}

// IsDeveloper reports whether userID matches the configured developer.
func IsDeveloper(cfg *Config, userID string) bool {
	return cfg != nil && cfg.DeveloperID != "" && cfg.DeveloperID == userID
}
