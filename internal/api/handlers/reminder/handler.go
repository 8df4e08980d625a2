package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/api/dto"
	"github.com/aliskhannn/birthday-notifier/internal/api/respond"
	"github.com/aliskhannn/birthday-notifier/internal/pipeline"
	"github.com/aliskhannn/birthday-notifier/internal/scheduler"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks

type pipelineRunner interface {
	RunNow(ctx context.Context, clearance time.Duration) (pipeline.Report, error)
	Running() bool
}

type Handler struct {
	runner    pipelineRunner
	validator *validator.Validate
	clearance time.Duration
}

func NewHandler(r pipelineRunner, v *validator.Validate, clearance time.Duration) *Handler {
	return &Handler{runner: r, validator: v, clearance: clearance}
}

// Run triggers a pipeline run and responds with its report.
func (h *Handler) Run(c *ginext.Context) {
	var req dto.RunRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	clearance := h.clearance
	if req.ClearanceHours != nil {
		clearance = time.Duration(*req.ClearanceHours) * time.Hour
	}

	// The run outlives a client that disconnects.
	report, err := h.runner.RunNow(context.WithoutCancel(c.Request.Context()), clearance)
	if err != nil {
		if errors.Is(err, scheduler.ErrRunInProgress) {
			respond.Fail(c.Writer, http.StatusConflict, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("manual run failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, report)
}

// Health reports liveness and whether a run is in progress.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, map[string]any{
		"status":  "ok",
		"running": h.runner.Running(),
	})
}
