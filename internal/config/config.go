package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven configuration.
// Tags like `envconfig:"SHOP_ADDR"` specify the environment variable name and
// `default:""` the value used when the variable is not set.
type Config struct {
	Addr      string `envconfig:"SHOP_ADDR" default:":4000"`
	DataDir   string `envconfig:"SHOP_DATA_DIR" default:"./data"`
	PublicDir string `envconfig:"SHOP_PUBLIC_DIR" default:"./public"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// AdminEmails lists the registered accounts that receive the admin role.
	AdminEmails []string `envconfig:"ADMIN_EMAILS" default:"admin@ir7.com"`

	Shipping ShippingSchedule
}

// ShippingSchedule is the flat-fee shipping model: orders at or above the
// threshold ship free, everything else pays the flat fee.
type ShippingSchedule struct {
	FreeThreshold int `envconfig:"FREE_SHIPPING_THRESHOLD" default:"3000"`
	FlatFee       int `envconfig:"FLAT_SHIPPING_FEE" default:"110"`
}

// Fee returns the shipping fee for the given order subtotal.
func (s ShippingSchedule) Fee(subtotal int) int {
	if subtotal >= s.FreeThreshold {
		return 0
	}
	return s.FlatFee
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process configuration: %w", err)
	}
	return cfg, nil
}
