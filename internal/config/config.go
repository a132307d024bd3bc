package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"raidbot/pkg/tz"
)

type Config struct {
	Token         string `env:"TOKEN"`
	GuildID       string `env:"GUILD_ID"`
	RaidChannelID string `env:"RAID_CHANNEL_ID"`
	DatabaseURL   string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/raidbot?sslmode=disable"`
	Locale        string `env:"LOCALE" envDefault:"fr"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"LOG_CONSOLE" envDefault:"true"`

	CycleWeekday    string        `env:"CYCLE_WEEKDAY" envDefault:"wednesday"`
	CycleHour       int           `env:"CYCLE_HOUR" envDefault:"5"`
	CycleTimezone   string        `env:"CYCLE_TIMEZONE" envDefault:"Europe/Paris"`
	ProximityWindow time.Duration `env:"PROXIMITY_WINDOW" envDefault:"90m"`

	AdminRoleID string `env:"ADMIN_ROLE_ID"`
	OwnerRoleID string `env:"OWNER_ROLE_ID"`

	// NotifyRate is the number of raid post refreshes per second sent to Discord.
	NotifyRate float64 `env:"NOTIFY_RATE" envDefault:"2"`

	weekday  time.Weekday
	location *time.Location
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Weekday is the parsed CYCLE_WEEKDAY.
func (c *Config) Weekday() time.Weekday { return c.weekday }

// Location is the loaded CYCLE_TIMEZONE.
func (c *Config) Location() *time.Location { return c.location }

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.RaidChannelID) == "" {
		return fmt.Errorf("config: RAID_CHANNEL_ID est requis et ne peut pas être vide")
	}
	for name, id := range map[string]string{
		"RAID_CHANNEL_ID": c.RaidChannelID,
		"GUILD_ID":        c.GuildID,
		"ADMIN_ROLE_ID":   c.AdminRoleID,
		"OWNER_ROLE_ID":   c.OwnerRoleID,
	} {
		if !isSnowflake(id) {
			return fmt.Errorf("config: %s doit être un ID Discord (chiffres uniquement)", name)
		}
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	wd, ok := parseWeekday(c.CycleWeekday)
	if !ok {
		return fmt.Errorf("config: CYCLE_WEEKDAY invalide (%q)", c.CycleWeekday)
	}
	c.weekday = wd

	if c.CycleHour < 0 || c.CycleHour > 23 {
		return fmt.Errorf("config: CYCLE_HOUR doit être compris entre 0 et 23 (reçu %d)", c.CycleHour)
	}

	loc, err := tz.Load(c.CycleTimezone)
	if err != nil {
		return fmt.Errorf("config: CYCLE_TIMEZONE invalide (%q): %w", c.CycleTimezone, err)
	}
	c.location = loc

	if c.ProximityWindow <= 0 {
		return fmt.Errorf("config: PROXIMITY_WINDOW doit être positif (reçu %s)", c.ProximityWindow)
	}
	if c.NotifyRate <= 0 {
		return fmt.Errorf("config: NOTIFY_RATE doit être positif (reçu %g)", c.NotifyRate)
	}
	return nil
}

// isSnowflake accepts an empty value (optional ids) or digits only.
func isSnowflake(id string) bool {
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "dimanche": time.Sunday,
	"monday": time.Monday, "lundi": time.Monday,
	"tuesday": time.Tuesday, "mardi": time.Tuesday,
	"wednesday": time.Wednesday, "mercredi": time.Wednesday,
	"thursday": time.Thursday, "jeudi": time.Thursday,
	"friday": time.Friday, "vendredi": time.Friday,
	"saturday": time.Saturday, "samedi": time.Saturday,
}

func parseWeekday(raw string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(raw))]
	return wd, ok
}
