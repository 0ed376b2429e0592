package config

import "go.uber.org/zap/zapcore"

type Config interface {
	LogLevel() zapcore.Level
	LogJSON() bool

	EchoBody() bool
	ServerName() string
}

// Load reads an optional .env file from the working directory and then the
// process environment.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) LogLevel() zapcore.Level { return c.logLevel }
func (c *config) LogJSON() bool           { return c.logJSON }
func (c *config) EchoBody() bool          { return c.echoBody }
func (c *config) ServerName() string      { return c.serverName }
