package action

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/context7/upsert-action/internal/config"
	"github.com/context7/upsert-action/internal/logger"
	"github.com/context7/upsert-action/internal/models"
	"github.com/context7/upsert-action/internal/output"
	"github.com/context7/upsert-action/internal/services"
)

// Runner executes one action run end to end: validate the resolved inputs,
// dispatch the selected operation, and emit the outcome as action outputs.
type Runner struct {
	cfg *config.Config
	svc *services.Context7Service
	out *output.Writer
}

// NewRunner creates a Runner over an already-resolved configuration.
func NewRunner(cfg *config.Config, svc *services.Context7Service, out *output.Writer) *Runner {
	return &Runner{cfg: cfg, svc: svc, out: out}
}

// Run performs the configured operation and returns the process exit code:
// 0 on success, 1 on any failure.
func (r *Runner) Run(ctx context.Context) int {
	log := logger.WithField("run_id", uuid.NewString())
	log.Info("Starting Upsert Context7 action")
	log.Infof("Operation: %s", r.cfg.Operation)
	log.Infof("Library name: %s", r.cfg.LibraryName)
	log.Infof("Repository URL: %s", r.cfg.RepoURL)
	log.Infof("Request timeout: %d seconds (%d minutes)", r.cfg.TimeoutSeconds, r.cfg.TimeoutSeconds/60)

	if err := r.cfg.Validate(); err != nil {
		logger.ErrorAnnotated(err.Error())
		r.emit(models.Outcome{Succeeded: false, StatusCode: 0, Message: "Invalid inputs"})
		return 1
	}

	var outcome models.Outcome
	if r.cfg.Operation == config.OperationAdd {
		outcome = r.svc.AddLibrary(ctx, r.cfg.RepoURL)
	} else {
		outcome = r.svc.RefreshLibrary(ctx, r.cfg.LibraryName)
	}

	r.emit(outcome)

	if !outcome.Succeeded {
		logger.ErrorAnnotated("Action failed!")
		return 1
	}
	logger.Notice("Action completed successfully!")
	return 0
}

// emit writes the three output pairs the action contract promises.
func (r *Runner) emit(o models.Outcome) {
	r.out.Set("success", strconv.FormatBool(o.Succeeded))
	r.out.Set("status-code", strconv.Itoa(o.StatusCode))
	r.out.Set("message", o.Message)
}
