package config

import "time"

type Config struct {
	HTTPConfig
	DBConfig
	BrevoConfig
	SchedulerConfig
	AuthConfig
	TelegramConfig
	GoogleSheetConfig
}

type HTTPConfig struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// DBConfig описывает оба хранилища: сетевой PostgreSQL и встроенный SQLite.
// Driver выбирает, какое из них используется.
type DBConfig struct {
	Driver string `envconfig:"DB_DRIVER" default:"postgres"`

	User   string `envconfig:"DBUSER" masked:"true"`
	Pass   string `envconfig:"DBPASS" masked:"true"`
	Host   string `envconfig:"DBHOST" default:"localhost"`
	DBName string `envconfig:"DBNAME" default:"debt_collection"`

	Port    string `envconfig:"DBPORT" default:"5432"`
	SSLMode string `envconfig:"DBSSLMODE" default:"disable"`

	SQLitePath string `envconfig:"SQLITE_PATH" default:"debt_collection.db"`
}

type BrevoConfig struct {
	APIKey      string        `envconfig:"BREVO_API_KEY" masked:"true"`
	APIURL      string        `envconfig:"BREVO_API_URL" default:"https://api.brevo.com/v3/smtp/email"`
	SenderEmail string        `envconfig:"SENDER_EMAIL" required:"true"`
	Timeout     time.Duration `envconfig:"BREVO_TIMEOUT" default:"15s"`
}

type SchedulerConfig struct {
	Interval   time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"600s"`
	Hours      []int         `envconfig:"SCHEDULER_HOURS" default:"8,14,18"`
	Timezone   string        `envconfig:"SCHEDULER_TIMEZONE" default:"Local"`
	AlertPause time.Duration `envconfig:"ALERT_PAUSE" default:"1s"`
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true" masked:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
	OTPTTL    time.Duration `envconfig:"OTP_TTL" default:"10m"`
}

// TelegramConfig необязателен: без токена сводки в чат не отправляются.
type TelegramConfig struct {
	BotToken    string `envconfig:"BOT_TOKEN" masked:"true"`
	AdminChatID int64  `envconfig:"ADMIN_CHAT_ID"`
}

// GoogleSheetConfig необязателен: без SHEET_ID журнал уведомлений в таблицу не зеркалируется.
type GoogleSheetConfig struct {
	SheetID           string `envconfig:"SHEET_ID" masked:"true"`
	SheetName         string `envconfig:"SHEET_NAME" default:"Notifications"`
	CredentialsBase64 string `envconfig:"CREDENTIALS_BASE64" masked:"true"`
	PauseMs           int    `envconfig:"SHEET_PAUSE_MS"`
}
