package mongo

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	tcconst "github.com/you-humble/restaurant-inventory/platform/testcontainers"
)

const startupTimeout = time.Minute

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Container is a running mongo instance plus a client connected through the
// host-mapped port.
type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	port := tcconst.MongoPort + "/tcp"
	req := testcontainers.ContainerRequest{
		Name:         cfg.ContainerName,
		Image:        cfg.Image,
		ExposedPorts: []string{port},
		Env: map[string]string{
			tcconst.MongoUsernameKey: cfg.Username,
			tcconst.MongoPasswordKey: cfg.Password,
			"MONGO_INITDB_DATABASE":  cfg.Database,
		},
		WaitingFor: wait.ForListeningPort(nat.Port(port)).WithStartupTimeout(startupTimeout),
		HostConfigModifier: func(hc *container.HostConfig) {
			hc.AutoRemove = true
		},
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{cfg.NetworkName: {cfg.NetworkAlias}}
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	client, err := connect(ctx, c, cfg)
	if err != nil {
		if terr := c.Terminate(ctx); terr != nil {
			cfg.Logger.Error(ctx, "terminate mongo container", zap.Error(terr))
		}
		return nil, err
	}

	cfg.Logger.Info(ctx, "mongo container started", zap.String("database", cfg.Database))

	return &Container{container: c, client: client, cfg: cfg}, nil
}

func connect(ctx context.Context, c testcontainers.Container, cfg *Config) (*mongo.Client, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "mongo container host")
	}
	mapped, err := c.MappedPort(ctx, tcconst.MongoPort+"/tcp")
	if err != nil {
		return nil, errors.Wrap(err, "mongo mapped port")
	}

	u := url.URL{
		Scheme:   "mongodb",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(host, mapped.Port()),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"authSource": {cfg.AuthDB}}.Encode(),
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(u.String()).
		SetBSONOptions(&options.BSONOptions{ObjectIDAsHexString: true}))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping mongo")
	}

	return client, nil
}

func (c *Container) Client() *mongo.Client {
	return c.client
}

func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Config() *Config {
	return c.cfg
}

// Reset empties the given collections, keeping their indexes.
func (c *Container) Reset(ctx context.Context, collections ...string) error {
	for _, name := range collections {
		if _, err := c.Database().Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return errors.Wrapf(err, "reset collection %s", name)
		}
	}
	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "disconnect mongo client", zap.Error(err))
	}
	if err := c.container.Terminate(ctx); err != nil {
		return errors.Wrap(err, "terminate mongo container")
	}
	c.cfg.Logger.Info(ctx, "mongo container terminated")
	return nil
}
