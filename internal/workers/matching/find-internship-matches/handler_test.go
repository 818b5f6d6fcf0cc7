package findinternshipmatches

import (
	"context"
	"testing"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/repository"
	"internship-matcher/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

func createTestConfig() *config.Config {
	return &config.Config{
		Matching: config.MatchingConfig{DefaultTopN: 10, DefaultMinScore: 0.3},
		Workers: map[string]config.WorkerConfig{
			TaskType: {Enabled: true, MaxJobsActive: 3, Timeout: 5000},
		},
	}
}

// createSeededStore stores the sample records under predictable ids.
func createSeededStore(t *testing.T) *repository.Store {
	t.Helper()
	ctx := context.Background()

	data, err := seed.Records()
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	for i, c := range data.Candidates {
		c.ID = []string{"cand-arjun", "cand-priya", "cand-raj", "cand-ananya"}[i]
		require.NoError(t, store.Candidates.Put(ctx, c))
	}
	for i, in := range data.Internships {
		in.ID = []string{"int-techcorp", "int-financehub", "int-creative", "int-dmp"}[i]
		require.NoError(t, store.Internships.Put(ctx, in))
	}
	return store
}

func createTestHandler(t *testing.T, store *repository.Store) *Handler {
	t.Helper()
	h, err := NewHandler(HandlerOptions{
		AppConfig: createTestConfig(),
		Store:     store,
		Logger:    logger.NewTestLogger(t),
	})
	require.NoError(t, err)
	return h
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// ==========================
// Handler Creation Tests
// ==========================

func TestNewHandler(t *testing.T) {
	h := createTestHandler(t, repository.NewMemoryStore())

	assert.Equal(t, 3, h.Config().MaxJobsActive)
	assert.Equal(t, 5*time.Second, h.Config().Timeout)
	assert.Equal(t, 10, h.defaults.DefaultTopN)

	_, err := NewHandler(HandlerOptions{CustomConfig: &Config{Timeout: time.Second}, Store: repository.NewMemoryStore()})
	assert.ErrorContains(t, err, "max_jobs_active must be positive")

	_, err = NewHandler(HandlerOptions{AppConfig: createTestConfig()})
	assert.ErrorContains(t, err, "requires a record store")

	h, err = NewHandler(HandlerOptions{Store: repository.NewMemoryStore(), Logger: logger.NewNoOpLogger()})
	require.NoError(t, err)
	assert.Equal(t, 0.3, h.defaults.DefaultMinScore)
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := createTestHandler(t, repository.NewMemoryStore())

	input, err := h.parseInput(`{"candidateId": "cand-arjun", "topN": 2, "minScoreThreshold": 0.5, "processVar": "x"}`)
	require.NoError(t, err)
	assert.Equal(t, "cand-arjun", input.CandidateID)
	assert.Equal(t, 2, *input.TopN)
	assert.Equal(t, 0.5, *input.MinScoreThreshold)

	input, err = h.parseInput(`{}`)
	require.NoError(t, err)
	assert.Nil(t, input.TopN)
	assert.Nil(t, input.MinScoreThreshold)

	_, err = h.parseInput(`{"topN": 0}`)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidMatchRequest, stdErr.Code)

	_, err = h.parseInput(`{"minScoreThreshold": 2}`)
	require.Error(t, err)

	_, err = h.parseInput(`not json`)
	stdErr, ok = errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeParseError, stdErr.Code)
}

func TestHandler_ToRequest(t *testing.T) {
	h := createTestHandler(t, repository.NewMemoryStore())

	req := h.toRequest(&Input{InternshipID: "int-dmp"})
	assert.Equal(t, matching.ModeInternship, req.Mode())
	assert.Equal(t, 10, req.TopN)
	assert.Equal(t, 0.3, req.MinScoreThreshold)

	req = h.toRequest(&Input{TopN: intPtr(1), MinScoreThreshold: floatPtr(0)})
	assert.Equal(t, matching.ModeAll, req.Mode())
	assert.Equal(t, 1, req.TopN)
	assert.Equal(t, 0.0, req.MinScoreThreshold)
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	ctx := context.Background()
	h := createTestHandler(t, createSeededStore(t))

	tests := []struct {
		name      string
		input     *Input
		mode      string
		wantCount int
		first     [2]string
		firstMax  float64
	}{
		{
			name:      "candidate",
			input:     &Input{CandidateID: "cand-raj"},
			mode:      "candidate",
			wantCount: 4,
			first:     [2]string{"cand-raj", "int-financehub"},
			firstMax:  1.0,
		},
		{
			name:      "internship with threshold",
			input:     &Input{InternshipID: "int-creative", MinScoreThreshold: floatPtr(0.6)},
			mode:      "internship",
			wantCount: 3,
			first:     [2]string{"cand-ananya", "int-creative"},
			firstMax:  0.948,
		},
		{
			name:      "all pairs top two",
			input:     &Input{TopN: intPtr(2)},
			mode:      "all",
			wantCount: 2,
			first:     [2]string{"cand-priya", "int-dmp"},
			firstMax:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.mode, output.Mode)
			assert.Equal(t, tt.wantCount, output.TotalMatches)
			require.Len(t, output.Matches, tt.wantCount)
			assert.Equal(t, tt.first[0], output.Matches[0].CandidateID)
			assert.Equal(t, tt.first[1], output.Matches[0].InternshipID)
			assert.Equal(t, tt.firstMax, output.Matches[0].MatchScore.OverallScore)
		})
	}
}

func TestHandler_Execute_NotFound(t *testing.T) {
	h := createTestHandler(t, createSeededStore(t))

	_, err := h.Execute(context.Background(), &Input{CandidateID: "cand-nobody"})

	require.Error(t, err)
	stdErr, _ := errors.AsStandardError(err)
	assert.Equal(t, errors.ErrCodeCandidateNotFound, stdErr.Code)

	bpmnErr := errors.ConvertToBPMNError(stdErr)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestHandler_Execute_EmptyStore(t *testing.T) {
	h := createTestHandler(t, repository.NewMemoryStore())

	output, err := h.Execute(context.Background(), &Input{})

	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalMatches)
	assert.NotNil(t, output.Matches)
}
