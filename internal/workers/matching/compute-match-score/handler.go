// internal/workers/matching/compute-match-score/handler.go
package computematchscore

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/common/metrics"
	"internship-matcher/internal/common/observability"
	"internship-matcher/internal/common/validation"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/models"
	"internship-matcher/internal/repository"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "compute-match-score"

type Handler struct {
	config     *Config
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

	return &Handler{
		config:     workerConfig,
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
	result, err := validation.ScoreJob.Validate([]byte(variables))
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

// Execute resolves both records and scores the pair.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	candidate, err := h.resolveCandidate(ctx, input)
	if err != nil {
		return nil, err
	}
	internship, err := h.resolveInternship(ctx, input)
	if err != nil {
		return nil, err
	}

	breakdown := h.engine.ComputeMatch(candidate, internship)

	h.logger.Info("match score calculated", map[string]interface{}{
		"candidateId":  candidate.ID,
		"internshipId": internship.ID,
		"score":        breakdown.OverallScore,
	})

	return &Output{
		CandidateID:  candidate.ID,
		InternshipID: internship.ID,
		OverallScore: breakdown.OverallScore,
		MatchScore:   breakdown,
	}, nil
}

func (h *Handler) resolveCandidate(ctx context.Context, input *Input) (models.Candidate, error) {
	if input.Candidate != nil {
		return *input.Candidate, nil
	}
	c, err := h.store.Candidates.Get(ctx, input.CandidateID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return c, errors.NewCandidateNotFoundError(input.CandidateID)
	}
	return c, asStorageError("candidate", err)
}

func (h *Handler) resolveInternship(ctx context.Context, input *Input) (models.Internship, error) {
	if input.Internship != nil {
		return *input.Internship, nil
	}
	i, err := h.store.Internships.Get(ctx, input.InternshipID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return i, errors.NewInternshipNotFoundError(input.InternshipID)
	}
	return i, asStorageError("internship", err)
}

func asStorageError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsStandardError(err); ok {
		return err
	}
	return errors.NewStorageReadFailedError(entity, err)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	variables := map[string]interface{}{
		"overallScore": output.OverallScore,
		"matchScore":   output.MatchScore,
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
		"overallScore": output.OverallScore,
	})
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.Normalize(err).Code)).Inc()
	h.errHandler.HandleJobError(ctx, client, job, err)
}
