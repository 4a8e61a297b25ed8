package config

const (
	defaultProjectDir       = "devlog"
	defaultDataDir          = "~/.local/share/devlog"
	defaultAPIBind          = "127.0.0.1:7499"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultDefaultTailLines = 20
	defaultMaxTailLines     = 1000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir: defaultProjectDir,
			DataDir:    defaultDataDir,
			APIBind:    defaultAPIBind,
		},
		Limits: Limits{
			DefaultTailLines: defaultDefaultTailLines,
			MaxTailLines:     defaultMaxTailLines,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
