package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	defaultName           = "restaurant"
	defaultPort           = "3000"
	defaultReadyPath      = "/ready"
	defaultStartupTimeout = 2 * time.Minute
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Container is the service image built from a Dockerfile and started on the
// test network.
type Container struct {
	container testcontainers.Container
	address   string
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	port := nat.Port(cfg.Port + "/tcp")
	strategy := cfg.StartupWait
	if strategy == nil {
		strategy = wait.ForHTTP(cfg.ReadyPath).
			WithPort(port).
			WithStartupTimeout(defaultStartupTimeout)
	}

	req := testcontainers.ContainerRequest{
		Name: cfg.Name,
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    cfg.DockerfileDir,
			Dockerfile: cfg.Dockerfile,
		},
		Networks:     cfg.Networks,
		Env:          cfg.Env,
		ExposedPorts: []string{string(port)},
		WaitingFor:   strategy,
		LogConsumerCfg: &testcontainers.LogConsumerConfig{
			Consumers: []testcontainers.LogConsumer{writerConsumer{out: cfg.LogOutput}},
		},
		HostConfigModifier: func(hc *container.HostConfig) {
			hc.AutoRemove = true
		},
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start app container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "app container host")
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return nil, errors.Wrap(err, "app mapped port")
	}

	address := net.JoinHostPort(host, mapped.Port())
	cfg.Logger.Info(ctx, "app container started", zap.String("address", address))

	return &Container{container: c, address: address}, nil
}

func (a *Container) Address() string {
	return a.address
}

func (a *Container) BaseURL() string {
	return fmt.Sprintf("http://%s", a.address)
}

// URL joins path onto the base URL.
func (a *Container) URL(path string) string {
	return a.BaseURL() + path
}

func (a *Container) Terminate(ctx context.Context) error {
	return a.container.Terminate(ctx)
}

type writerConsumer struct {
	out io.Writer
}

func (w writerConsumer) Accept(l testcontainers.Log) {
	_, _ = w.out.Write(l.Content)
}
