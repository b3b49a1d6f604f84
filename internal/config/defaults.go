package config

const (
	defaultBind      = "127.0.0.1:8787"
	defaultDatabase  = "~/.local/share/showboat/showboat.db"
	defaultLogFormat = ""
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind: defaultBind,
		},
		Storage: Storage{
			Database: defaultDatabase,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
