package configs

// Redis configures the redis driver. Prefix is prepended to every key so
// several deployments can share a database.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"admanager:"`
}
