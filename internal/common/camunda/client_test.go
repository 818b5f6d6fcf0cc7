package camunda

import (
	"context"
	"testing"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_RequiresBrokerAddress(t *testing.T) {
	c, err := Dial(context.Background(), config.CamundaConfig{}, logger.NewNoOpLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker address is required")
	assert.Nil(t, c)
}

func TestNew_RequestTimeout(t *testing.T) {
	c := New(nil, config.CamundaConfig{RequestTimeout: 1500}, logger.NewNoOpLogger())
	assert.Equal(t, 1500*time.Millisecond, c.requestTimeout)

	c = New(nil, config.CamundaConfig{}, logger.NewNoOpLogger())
	assert.Equal(t, 30*time.Second, c.requestTimeout)
	assert.Nil(t, c.GetClient())
}

func TestStartWorker_Disabled(t *testing.T) {
	c := New(nil, config.CamundaConfig{}, logger.NewTestLogger(t))

	started := c.StartWorker("compute-match-score", config.WorkerConfig{Enabled: false}, func(worker.JobClient, entities.Job) {})

	assert.False(t, started)
	assert.Empty(t, c.workers)
}
