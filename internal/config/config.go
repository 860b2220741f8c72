package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Address     string `envconfig:"SERVER_ADDRESS" default:":8000"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Host           string `envconfig:"REDIS_HOST" default:"localhost"`
	Port           string `envconfig:"REDIS_PORT" default:"6379"`
	DB             int    `envconfig:"REDIS_DB" default:"0"`
	WeatherTTLMin  int    `envconfig:"REDIS_WEATHER_TTL_MIN" default:"10"`
	StationsTTLSec int    `envconfig:"REDIS_STATIONS_TTL_SEC" default:"90"`
	GeocodeTTLHour int    `envconfig:"REDIS_GEOCODE_TTL_HOUR" default:"168"`
}

// Rules holds the default recommendation thresholds; per-request prefs
// override them.
type Rules struct {
	HeadwindThresholdMPH float64 `envconfig:"EBIKE_HEADWIND_THRESHOLD_MPH" default:"9.0"`
	HumidityThresholdPct float64 `envconfig:"HUMIDITY_THRESHOLD_PCT" default:"80.0"`
	WalkRadiusM          float64 `envconfig:"STATION_WALK_RADIUS_M" default:"700"`
	MinDocks             int     `envconfig:"STATION_MIN_DOCKS" default:"3"`
	BikeSpeedMPH         float64 `envconfig:"BIKE_SPEED_MPH" default:"12.0"`
}

type Config struct {
	PublicAPIKey string `envconfig:"PUBLIC_API_KEY" required:"true"`

	CitibikeGBFSBase string `envconfig:"CITIBIKE_GBFS_BASE" default:"https://gbfs.citibikenyc.com/gbfs/en"`

	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY" default:""`
	OpenWeatherURL    string `envconfig:"OPENWEATHER_URL" default:"https://api.openweathermap.org/data/2.5/weather"`

	NWSPointsURL string `envconfig:"NWS_POINTS_URL" default:"https://api.weather.gov/points"`

	MTAAPIKey  string `envconfig:"MTA_API_KEY" default:""`
	MTAFeedURL string `envconfig:"MTA_FEED_URL" default:"https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs"`

	NominatimURL string `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org/search"`

	StationRefreshSpec string `envconfig:"STATION_REFRESH_SPEC" default:"@every 1m"`

	Server  Server
	Breaker Breaker
	Redis   Redis
	Rules   Rules

	LogsPath string `envconfig:"LOGS_PATH" default:"./log/get2wurk.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	// envconfig's required tag passes a variable that is set but empty; an
	// empty key would let header-less requests through the auth gate.
	if cfg.PublicAPIKey == "" {
		return nil, errors.New("PUBLIC_API_KEY must not be empty")
	}
	return &cfg, nil
}

func (c *Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
