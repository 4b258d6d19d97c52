package mongo

import (
	"github.com/you-humble/restaurant-inventory/platform/logger"
	"github.com/you-humble/restaurant-inventory/platform/testcontainers"
)

const (
	defaultImage    = "mongo:8.0"
	defaultDatabase = "restaurant-inventory"
	defaultUser     = "root"
	defaultPassword = "root"
	defaultAuthDB   = "admin"
)

type Option func(*Config)

type Config struct {
	ContainerName string
	Image         string
	NetworkName   string
	NetworkAlias  string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger
}

func defaultConfig() *Config {
	return &Config{
		ContainerName: testcontainers.MongoContainerName,
		Image:         defaultImage,
		NetworkAlias:  testcontainers.MongoNetworkAlias,
		Database:      defaultDatabase,
		Username:      defaultUser,
		Password:      defaultPassword,
		AuthDB:        defaultAuthDB,
		Logger:        &logger.NoopLogger{},
	}
}

// WithNetwork attaches the container to network under alias. An empty alias
// keeps the default one.
func WithNetwork(network, alias string) Option {
	return func(c *Config) {
		c.NetworkName = network
		if alias != "" {
			c.NetworkAlias = alias
		}
	}
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

func WithImage(image string) Option {
	return func(c *Config) { c.Image = image }
}

func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

func WithCredentials(username, password, authDB string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
		if authDB != "" {
			c.AuthDB = authDB
		}
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// AppEnv is the environment a restaurant container on the same network needs
// to reach this instance.
func (c *Config) AppEnv() map[string]string {
	return map[string]string{
		testcontainers.MongoHostKey:     c.NetworkAlias,
		testcontainers.MongoPortKey:     testcontainers.MongoPort,
		testcontainers.MongoDatabaseKey: c.Database,
		testcontainers.MongoUsernameKey: c.Username,
		testcontainers.MongoPasswordKey: c.Password,
		testcontainers.MongoAuthDBKey:   c.AuthDB,
	}
}
