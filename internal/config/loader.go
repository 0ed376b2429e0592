package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/2ndDerivative/HttpLibrary/internal/headers"
)

type config struct {
	logLevel zapcore.Level
	logJSON  bool

	echoBody   bool
	serverName string
}

func parse() (*config, error) {
	level, err := parseLevel()
	if err != nil {
		return nil, err
	}

	logJSON, err := getenvBool("HTTPMSG_LOG_JSON", false)
	if err != nil {
		return nil, err
	}

	echoBody, err := getenvBool("HTTPMSG_ECHO_BODY", true)
	if err != nil {
		return nil, err
	}

	serverName := getenv("HTTPMSG_SERVER", "httpmsg")
	if _, err := headers.NewValue(serverName); err != nil {
		return nil, errors.Wrap(err, "invalid HTTPMSG_SERVER value")
	}

	return &config{
		logLevel:   level,
		logJSON:    logJSON,
		echoBody:   echoBody,
		serverName: serverName,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseLevel() (zapcore.Level, error) {
	raw := getenv("HTTPMSG_LOG_LEVEL", "info")
	level, err := zapcore.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "invalid HTTPMSG_LOG_LEVEL value %q", raw)
	}
	return level, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def, errors.Errorf("invalid %s value %q", key, val)
	}
	return b, nil
}
