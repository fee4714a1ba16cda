package msapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/go-resty/resty/v2"
)

// Client talks to the backend measurement API. Requests are not retried.
type Client struct {
	rc *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(clog.UsingCtx(clog.CtxAPI))

	return &Client{rc: rc}
}

func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	r := c.rc.R().SetContext(ctx)

	for name, values := range req.Header {
		for _, v := range values {
			r.Header.Add(name, v)
		}
	}

	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("api %s %s: unable to encode body: %w", req.Method, req.Path, err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(b)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		clog.UsingCtx(clog.CtxAPI).WithFields(log.Fields{"method": req.Method, "path": req.Path}).Errorf("request failed: %s", err)
		return nil, fmt.Errorf("api %s %s: %w", req.Method, req.Path, err)
	}

	clog.UsingCtx(clog.CtxAPI).WithFields(log.Fields{
		"method":  req.Method,
		"path":    req.Path,
		"status":  resp.StatusCode(),
		"latency": time.Since(start),
	}).Debug("api request")

	return &Response{
		StatusCode: resp.StatusCode(),
		StatusText: StatusText(resp.StatusCode(), resp.Status()),
		Body:       resp.Body(),
	}, nil
}
