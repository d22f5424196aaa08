package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config собирает все настройки приложения из переменных окружения.
// Передается явно в конструкторы, глобального состояния нет.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Postgres struct {
		// Пустой URL означает, что хранилище не настроено: сервисы
		// отвечают STORE_UNAVAILABLE вместо падения при старте.
		URL             string        `env:"DATABASE_URL"`
		MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	}

	Telegram struct {
		BotToken      string `env:"BOT_TOKEN"`
		AdminUsername string `env:"ADMIN_USERNAME" envDefault:"prosto_993"`
		PollTimeout   int    `env:"POLL_TIMEOUT" envDefault:"20"`
	}

	School struct {
		WebsiteURL    string `env:"WEBSITE_URL" envDefault:"https://sites.google.com/view/wwwspeakzycom"`
		FAQURL        string `env:"FAQ_URL" envDefault:"http://localhost:8080"`
		BotURL        string `env:"BOT_URL" envDefault:"https://t.me/speakyz_bot"`
		CardNumber    string `env:"CARD_NUMBER" envDefault:"9860 3501 0188 0457"`
		SupportHandle string `env:"SUPPORT_HANDLE" envDefault:"@Dream565758"`
	}
}

// Load читает .env (если есть) и разбирает окружение.
func Load() (*Config, error) {
	// В production окружении переменные устанавливаются напрямую,
	// отсутствие .env файла не является ошибкой.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
