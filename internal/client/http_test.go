package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertexfx/internal/client"
	"vertexfx/internal/curve"
	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
	"vertexfx/internal/httpapi"
	"vertexfx/internal/services/sampler"
)

func newClient(t *testing.T) (*client.HTTP, *sampler.Service) {
	t.Helper()
	local := sampler.New(nil, 0, nil)
	ts := httptest.NewServer(httpapi.New(local, nil))
	t.Cleanup(ts.Close)
	return client.NewHTTP(ts.URL+"/", ts.Client()), local
}

func TestHTTP_Kinds(t *testing.T) {
	c, _ := newClient(t)
	kinds, err := c.Kinds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, curve.Kinds(), kinds)
}

func TestHTTP_SampleMatchesLocal(t *testing.T) {
	c, local := newClient(t)
	req := domain.SampleRequest{
		Spec:  curve.Spec{Kind: curve.KindSpiral, Center: geom.Point{X: 1}, Radius: 2, Height: 3},
		Count: 50,
	}

	remote, err := c.Sample(context.Background(), req)
	require.NoError(t, err)
	want, err := local.Sample(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, want.Fingerprint, remote.Fingerprint, "JSON round trip keeps every bit")
	assert.Equal(t, want.Points, remote.Points)
}

func TestHTTP_ServerError(t *testing.T) {
	c, _ := newClient(t)
	_, err := c.Sample(context.Background(), domain.SampleRequest{Spec: curve.Spec{Kind: "blob"}, Step: 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertexfxd post /sample: 400 Bad Request")
	assert.Contains(t, err.Error(), "unknown curve kind")
}

func TestHTTP_PlainStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := client.NewHTTP(ts.URL, nil).Kinds(context.Background())
	require.Error(t, err)
	assert.Equal(t, "vertexfxd get /kinds: 404 Not Found", err.Error())
}

func TestHTTP_Context(t *testing.T) {
	c, _ := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Kinds(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
