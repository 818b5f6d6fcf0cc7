// internal/workers/matching/find-internship-matches/handler.go
package findinternshipmatches

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/common/metrics"
	"internship-matcher/internal/common/observability"
	"internship-matcher/internal/common/validation"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/repository"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "find-internship-matches"

type Handler struct {
	config     *Config
	defaults   config.MatchingConfig
	store      *repository.Store
	engine     *matching.Engine
	errHandler *errors.ErrorHandler
	obs        *observability.Observability
	logger     logger.Logger
}

type HandlerOptions struct {
	AppConfig    *config.Config
	CustomConfig *Config
	Store        *repository.Store
	Engine       *matching.Engine
	Obs          *observability.Observability
	Logger       logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("%s requires a record store", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"worker": TaskType})

	engine := opts.Engine
	if engine == nil {
		engine = matching.Default
	}

	defaults := config.MatchingConfig{DefaultTopN: 10, DefaultMinScore: 0.3}
	if opts.AppConfig != nil {
		defaults = opts.AppConfig.Matching
	}

	return &Handler{
		config:     workerConfig,
		defaults:   defaults,
		store:      opts.Store,
		engine:     engine,
		errHandler: errors.NewErrorHandler(log),
		obs:        opts.Obs,
		logger:     log,
	}, nil
}

func (h *Handler) Config() *Config {
	return h.config
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	status := "failed"
	defer func() {
		h.obs.RecordJobProcessed(ctx, status)
		h.obs.RecordJobDuration(ctx, time.Since(startTime), status)
	}()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
	})

	input, err := h.parseInput(job.GetVariables())
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	status = "completed"
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) parseInput(variables string) (*Input, error) {
	result, err := validation.MatchJob.Validate([]byte(variables))
	if err != nil {
		return nil, errors.NewParseError(err)
	}
	if !result.Valid {
		return nil, errors.NewInvalidMatchRequestError(fmt.Sprintf("Validation errors: %v", result.GetErrorMessages()))
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewParseError(err)
	}
	return &input, nil
}

func (h *Handler) toRequest(input *Input) matching.MatchRequest {
	req := matching.MatchRequest{
		CandidateID:       input.CandidateID,
		InternshipID:      input.InternshipID,
		TopN:              h.defaults.DefaultTopN,
		MinScoreThreshold: h.defaults.DefaultMinScore,
	}
	if input.TopN != nil {
		req.TopN = *input.TopN
	}
	if input.MinScoreThreshold != nil {
		req.MinScoreThreshold = *input.MinScoreThreshold
	}
	return req
}

// Execute runs the bulk match over a snapshot of the record store.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	req := h.toRequest(input)
	mode := string(req.Mode())
	start := time.Now()

	candidates, internships, err := h.store.Snapshot(ctx)
	if err != nil {
		metrics.MatchRequests.WithLabelValues(mode, "error").Inc()
		if _, ok := errors.AsStandardError(err); ok {
			return nil, err
		}
		return nil, errors.NewStorageReadFailedError("snapshot", err)
	}

	matches, err := h.engine.FindMatches(req, candidates, internships)
	if err != nil {
		metrics.MatchRequests.WithLabelValues(mode, "not_found").Inc()
		return nil, err
	}

	metrics.MatchRequests.WithLabelValues(mode, "success").Inc()
	metrics.MatchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	metrics.MatchResultsReturned.WithLabelValues(mode).Observe(float64(len(matches)))

	h.logger.Info("matches generated", map[string]interface{}{
		"mode":      mode,
		"matches":   len(matches),
		"topN":      req.TopN,
		"threshold": req.MinScoreThreshold,
	})

	return &Output{
		Mode:         mode,
		TotalMatches: len(matches),
		Matches:      matches,
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	variables := map[string]interface{}{
		"matchMode":    output.Mode,
		"totalMatches": output.TotalMatches,
		"matches":      output.Matches,
	}
	if len(output.Matches) > 0 {
		variables["bestMatch"] = output.Matches[0]
	}

	request, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromMap(variables)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		return
	}

	if _, err := request.Send(ctx); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		return
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":       job.GetKey(),
		"totalMatches": output.TotalMatches,
	})
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.Normalize(err).Code)).Inc()
	h.errHandler.HandleJobError(ctx, client, job, err)
}
