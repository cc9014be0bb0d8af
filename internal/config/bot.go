package config

import "time"

// Bot is optional: without a token neither the command bot nor the sale
// notifier is started.
type Bot struct {
	Token   string `env:"BOT_TOKEN" json:"-"`
	ChatID  int64  `env:"BOT_CHAT_ID"`
	AdminID int64  `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Reporter struct {
	Interval time.Duration `env:"REPORTER_INTERVAL" envDefault:"30s"`
}
