package domain

import "context"

// Sampler evaluates sample requests, either in process or against vertexfxd.
type Sampler interface {
	Sample(ctx context.Context, req SampleRequest) (SampleResult, error)
}

// PathStore persists named paths.
type PathStore interface {
	SavePath(p Path) error
	LoadPath(name string) (Path, bool, error)
	ListPaths() ([]Path, error)
	DeletePath(name string) (bool, error)
}

// PathService records sampled paths and checks stored ones.
type PathService interface {
	Record(ctx context.Context, name string, req SampleRequest) (Path, error)
	Verify(name string) (Path, bool, error)
}

// RemoteClient is how the CLI talks to a vertexfxd instance.
type RemoteClient interface {
	Sampler
	Kinds(ctx context.Context) ([]string, error)
}
