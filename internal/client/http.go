package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"vertexfx/internal/domain"
)

// HTTP talks to a vertexfxd instance.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil hc selects http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Sample asks the server to sample req.
func (c *HTTP) Sample(ctx context.Context, req domain.SampleRequest) (domain.SampleResult, error) {
	var out domain.SampleResult
	if err := c.post(ctx, "/sample", req, &out); err != nil {
		return domain.SampleResult{}, err
	}
	return out, nil
}

// Kinds lists the curve kinds the server supports.
func (c *HTTP) Kinds(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/kinds", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return errors.Wrap(err, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(req, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decode %s %s", req.Method, req.URL.Path)
		}
	}
	return nil
}

// statusError names the method, path and status, plus the server's message if it sent one.
func statusError(req *http.Request, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if json.Unmarshal(b, &body) == nil && body.Error != "" {
		return errors.Errorf("vertexfxd %s %s: %s: %s", strings.ToLower(req.Method), req.URL.Path, resp.Status, body.Error)
	}
	return errors.Errorf("vertexfxd %s %s: %s", strings.ToLower(req.Method), req.URL.Path, resp.Status)
}

var _ domain.RemoteClient = (*HTTP)(nil)
