// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/database"
	"internship-matcher/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Client wraps the Zeebe gRPC client and the job workers opened on it.
type Client struct {
	client         zbc.Client
	requestTimeout time.Duration
	logger         logger.Logger

	mu      sync.Mutex
	workers []worker.JobWorker
}

// Dial connects to the broker, retrying transient failures until the
// topology request succeeds.
func Dial(ctx context.Context, cfg config.CamundaConfig, log logger.Logger) (*Client, error) {
	if cfg.BrokerAddress == "" {
		return nil, fmt.Errorf("camunda broker address is required")
	}

	var c *Client
	err := database.RetryWithBackoff(ctx, func() error {
		zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.BrokerAddress,
			UsePlaintextConnection: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create Zeebe client: %w", err)
		}

		candidate := New(zeebeClient, cfg, log)
		if err := candidate.HealthCheck(ctx); err != nil {
			zeebeClient.Close()
			return err
		}
		c = candidate
		return nil
	}, 10, 2*time.Second, log, "Zeebe client initialization")
	if err != nil {
		return nil, err
	}
	return c, nil
}

// New wraps an existing Zeebe client.
func New(zeebeClient zbc.Client, cfg config.CamundaConfig, log logger.Logger) *Client {
	timeout := config.GetDuration(cfg.RequestTimeout)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:         zeebeClient,
		requestTimeout: timeout,
		logger:         log,
	}
}

// GetClient returns the raw Zeebe client.
func (c *Client) GetClient() zbc.Client {
	return c.client
}

// HealthCheck sends a topology request to the broker.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

// Close stops every opened worker and releases the gRPC connection.
func (c *Client) Close() error {
	c.mu.Lock()
	workers := c.workers
	c.workers = nil
	c.mu.Unlock()

	for _, w := range workers {
		w.Close()
		w.AwaitClose()
	}
	return c.client.Close()
}
