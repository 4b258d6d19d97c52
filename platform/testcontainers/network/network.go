package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is an attachable bridge network shared by the mongo and app
// containers of one test run.
type Network struct {
	dn *testcontainers.DockerNetwork
}

func New(ctx context.Context, project string) (*Network, error) {
	dn, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{"project": project}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create network for %s", project)
	}
	return &Network{dn: dn}, nil
}

func (n *Network) Name() string {
	return n.dn.Name
}

func (n *Network) Remove(ctx context.Context) error {
	return n.dn.Remove(ctx)
}
