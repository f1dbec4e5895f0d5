package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"profassist/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	School        string
	Upstreams     map[string]bool
	Ready         func() bool
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:      p.Name,
			Version:   p.Version,
			School:    p.School,
			Upstreams: p.Upstreams,
			Ready:     p.Ready,
		},
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
