package sampler

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/pkg/errors"

	"vertexfx/internal/curve"
	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
	"vertexfx/internal/sample"
)

// DefaultCacheSize is the number of results kept when New is given a negative size.
const DefaultCacheSize = 64

var (
	// ErrNoMode is returned when a request sets neither Step nor Count.
	ErrNoMode = errors.New("either step or count must be set")
	// ErrBothModes is returned when a request sets both Step and Count.
	ErrBothModes = errors.New("step and count are mutually exclusive")
	// ErrEmptyName is returned by Record for an empty path name.
	ErrEmptyName = errors.New("path name must not be empty")
	// ErrPathNotFound is returned by Verify for an unknown path.
	ErrPathNotFound = errors.New("path not found")
	// ErrNoStore is returned by Record and Verify when the Service has no store.
	ErrNoStore = errors.New("no path store configured")
	// ErrNonFinite is returned when a curve evaluates to NaN or infinite
	// coordinates, or its length overflows.
	ErrNonFinite = errors.New("curve produced non-finite values")
)

// Service samples curves in process, caches recent results and, when given a
// store, records and verifies named paths.
type Service struct {
	store domain.PathStore
	cache *cache
	log   *slog.Logger
	now   func() time.Time
}

// New returns a Service. store may be nil if Record and Verify are not used.
// cacheSize 0 disables caching; a negative size selects DefaultCacheSize.
func New(store domain.PathStore, cacheSize int, log *slog.Logger) *Service {
	if cacheSize < 0 {
		cacheSize = DefaultCacheSize
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store: store,
		cache: newCache(cacheSize),
		log:   log,
		now:   time.Now,
	}
}

// Sample builds the requested curve and samples it.
func (s *Service) Sample(ctx context.Context, req domain.SampleRequest) (domain.SampleResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SampleResult{}, err
	}

	k, cacheable := key(req)
	if cacheable {
		if r, ok := s.cache.get(k); ok {
			s.log.Debug("sample cache hit", "kind", req.Spec.Kind, "points", len(r.Points))
			return r, nil
		}
	}

	c, err := curve.Build(req.Spec)
	if err != nil {
		return domain.SampleResult{}, err
	}
	pts, err := run(c, req)
	if err != nil {
		return domain.SampleResult{}, err
	}
	if req.Round != nil {
		sample.Round(pts, *req.Round)
	}

	for i, p := range pts {
		if !p.IsFinite() {
			return domain.SampleResult{}, errors.Wrapf(ErrNonFinite, "point %d is %s", i, p)
		}
	}
	length := sample.Length(pts)
	if math.IsInf(length, 0) {
		return domain.SampleResult{}, errors.Wrap(ErrNonFinite, "length overflows")
	}

	r := domain.SampleResult{
		Points:      pts,
		Fingerprint: sample.Fingerprint(pts),
		Length:      length,
	}
	if cacheable {
		s.cache.add(k, r)
	}
	s.log.Debug("sampled curve", "kind", req.Spec.Kind, "points", len(pts), "fingerprint", r.Fingerprint)
	return r, nil
}

func run(c curve.Curve, req domain.SampleRequest) ([]geom.Point, error) {
	switch {
	case req.Step != 0 && req.Count != 0:
		return nil, ErrBothModes
	case req.Step != 0:
		return sample.Step(c, req.Step)
	case req.Count != 0 && req.Inclusive:
		return sample.Inclusive(c, req.Count)
	case req.Count != 0:
		return sample.Count(c, req.Count)
	default:
		return nil, ErrNoMode
	}
}

// Record samples req and saves the result under name.
func (s *Service) Record(ctx context.Context, name string, req domain.SampleRequest) (domain.Path, error) {
	if name == "" {
		return domain.Path{}, ErrEmptyName
	}
	if s.store == nil {
		return domain.Path{}, ErrNoStore
	}
	r, err := s.Sample(ctx, req)
	if err != nil {
		return domain.Path{}, err
	}
	p := domain.Path{
		Name:        name,
		Request:     req,
		Points:      r.Points,
		Fingerprint: r.Fingerprint,
		Length:      r.Length,
		CreatedUTC:  s.now().UTC().Unix(),
	}
	if err := s.store.SavePath(p); err != nil {
		return domain.Path{}, errors.Wrapf(err, "save path %q", name)
	}
	s.log.Info("recorded path", "name", name, "points", len(p.Points), "fingerprint", p.Fingerprint)
	return p, nil
}

// Verify loads the named path and reports whether both its stored points
// and a fresh sampling of its request still match the stored fingerprint.
func (s *Service) Verify(name string) (domain.Path, bool, error) {
	if s.store == nil {
		return domain.Path{}, false, ErrNoStore
	}
	p, found, err := s.store.LoadPath(name)
	if err != nil {
		return domain.Path{}, false, err
	}
	if !found {
		return domain.Path{}, false, errors.Wrapf(ErrPathNotFound, "%q", name)
	}
	if sample.Fingerprint(p.Points) != p.Fingerprint {
		s.log.Warn("stored points do not match fingerprint", "name", name)
		return p, false, nil
	}
	r, err := s.Sample(context.Background(), p.Request)
	if err != nil {
		return p, false, errors.Wrapf(err, "resample %q", name)
	}
	if r.Fingerprint != p.Fingerprint {
		s.log.Warn("resampled path differs", "name", name, "stored", p.Fingerprint, "now", r.Fingerprint)
		return p, false, nil
	}
	return p, true, nil
}

// Compile-time assertions that Service implements the domain contracts.
var (
	_ domain.Sampler     = (*Service)(nil)
	_ domain.PathService = (*Service)(nil)
)
