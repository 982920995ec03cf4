package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Map     MapConfig
	Booking BookingConfig
	Search  SearchConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
	// SessionPath is where the bearer credential is persisted between runs.
	SessionPath string
	// ServePort is only used by the bundled development server.
	ServePort string
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type MapConfig struct {
	ProviderKey      string
	DefaultCenterLat float64
	DefaultCenterLon float64
}

type BookingConfig struct {
	MaxRentalHours int
	BufferMinutes  int
}

type SearchConfig struct {
	RadiusKm float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "locker-rental")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SESSION_PATH", ".locker-rental/session.json")
	viper.SetDefault("SERVE_PORT", "8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MAP_DEFAULT_CENTER_LAT", 33.7490)
	viper.SetDefault("MAP_DEFAULT_CENTER_LON", -84.3880)
	viper.SetDefault("MAX_RENTAL_HOURS", 24)
	viper.SetDefault("BOOKING_BUFFER_MINUTES", 15)
	viper.SetDefault("SEARCH_RADIUS_KM", 10)

	// .env is optional; environment variables alone are fine.
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			SessionPath: viper.GetString("SESSION_PATH"),
			ServePort:   viper.GetString("SERVE_PORT"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
		Map: MapConfig{
			ProviderKey:      viper.GetString("MAP_PROVIDER_KEY"),
			DefaultCenterLat: viper.GetFloat64("MAP_DEFAULT_CENTER_LAT"),
			DefaultCenterLon: viper.GetFloat64("MAP_DEFAULT_CENTER_LON"),
		},
		Booking: BookingConfig{
			MaxRentalHours: viper.GetInt("MAX_RENTAL_HOURS"),
			BufferMinutes:  viper.GetInt("BOOKING_BUFFER_MINUTES"),
		},
		Search: SearchConfig{
			RadiusKm: viper.GetFloat64("SEARCH_RADIUS_KM"),
		},
	}

	return config, nil
}
