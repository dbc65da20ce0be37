package health

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ProbeClient performs one synthetic health request against a backend.
type ProbeClient interface {
	Probe(ctx context.Context, protocol string, host string, port int) ProbeResult
}

// ProbeResult classifies a single probe. Transport failures land in Err;
// status/body mismatches are reported through Success with the observed
// status code kept for logging.
type ProbeResult struct {
	Success    bool
	StatusCode int
	Err        error
	Duration   time.Duration
	Timestamp  time.Time
}

type probeClient struct {
	client *http.Client
	cfg    config.HealthCheckConfig
}

func NewProbeClient(cfg config.HealthCheckConfig) ProbeClient {
	return &probeClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

func (p *probeClient) Probe(ctx context.Context, protocol string, host string, port int) ProbeResult {
	path := p.cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if protocol == "" {
		protocol = "http"
	}
	requestURL := fmt.Sprintf("%s://%s:%d%s", protocol, host, port, path)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return ProbeResult{Err: fmt.Errorf("ProbeClient.Probe creating request: %w", err), Duration: time.Since(start), Timestamp: time.Now()}
	}
	for key, value := range p.cfg.Headers {
		req.Header.Set(key, value)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return ProbeResult{Err: fmt.Errorf("ProbeClient.Probe: %w", err), Duration: time.Since(start), Timestamp: time.Now()}
	}
	defer resp.Body.Close()

	result := ProbeResult{
		StatusCode: resp.StatusCode,
		Duration:   time.Since(start),
		Timestamp:  time.Now(),
	}
	if !p.statusExpected(resp.StatusCode) {
		return result
	}
	if p.cfg.ExpectedResponse != "" {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			result.Err = fmt.Errorf("ProbeClient.Probe reading body: %w", err)
			result.Duration = time.Since(start)
			return result
		}
		result.Duration = time.Since(start)
		if !strings.Contains(string(body), p.cfg.ExpectedResponse) {
			return result
		}
	}
	result.Success = true
	return result
}

func (p *probeClient) statusExpected(statusCode int) bool {
	if len(p.cfg.ExpectedStatus) == 0 {
		return statusCode >= 200 && statusCode < 300
	}
	for _, expected := range p.cfg.ExpectedStatus {
		if statusCode == expected {
			return true
		}
	}
	return false
}
