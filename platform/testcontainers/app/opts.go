package app

import (
	"io"
	"maps"

	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type Option func(*Config)

type Config struct {
	Name          string
	DockerfileDir string
	Dockerfile    string
	Port          string
	ReadyPath     string
	Env           map[string]string
	Networks      []string
	LogOutput     io.Writer
	StartupWait   wait.Strategy
	Logger        Logger
}

func defaultConfig() *Config {
	return &Config{
		Name:          defaultName,
		DockerfileDir: ".",
		Dockerfile:    "Dockerfile",
		Port:          defaultPort,
		ReadyPath:     defaultReadyPath,
		Env:           make(map[string]string),
		LogOutput:     io.Discard,
		Logger:        &logger.NoopLogger{},
	}
}

func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithDockerfile builds the image from file, relative to the dir build context.
func WithDockerfile(dir, file string) Option {
	return func(c *Config) {
		c.DockerfileDir = dir
		c.Dockerfile = file
	}
}

// WithPort sets the container port and the HTTP_PORT the service listens on.
func WithPort(port string) Option {
	return func(c *Config) {
		c.Port = port
		c.Env["HTTP_PORT"] = port
	}
}

func WithReadyPath(path string) Option {
	return func(c *Config) { c.ReadyPath = path }
}

func WithNetwork(name string) Option {
	return func(c *Config) { c.Networks = append(c.Networks, name) }
}

// WithEnv merges env into the container environment; later values win.
func WithEnv(env map[string]string) Option {
	return func(c *Config) { maps.Copy(c.Env, env) }
}

func WithLogOutput(out io.Writer) Option {
	return func(c *Config) { c.LogOutput = out }
}

func WithStartupWait(strategy wait.Strategy) Option {
	return func(c *Config) { c.StartupWait = strategy }
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}
