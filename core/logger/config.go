package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the log encoding: console for CLI use, json for servers.
	Format string `mapstructure:"format" default:"console"`
}
