package configs

// SQLite configures the file-backed driver. The file is created on first use.
type SQLite struct {
	Path string `env:"PATH" envDefault:"admanager.db"`
}
