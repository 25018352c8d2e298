package appearance

import (
	"context"
	"runtime"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ParamsValidateCases struct {
	Cases  []TestCase  `valid:"required"`
	Logger *zap.Logger `valid:"-"`

	Workers int
}

func (params *ParamsValidateCases) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Appearance",
			Caller:      "ValidateCases",
			Issue:       errValidation,
		}
	}

	if params.Workers < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsValidateCases",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Workers",
			},
		}
	}

	return nil
}

type CaseResult struct {
	Connections []TimeInterval

	Index    int
	Got      int64
	Expected int64
}

func (r CaseResult) Passed() bool {
	return r.Got == r.Expected
}

type ValidationReport struct {
	RunID   string
	Results []CaseResult

	Elapsed time.Duration
}

func (r *ValidationReport) Mismatches() []CaseResult {
	var result []CaseResult

	for _, caseResult := range r.Results {
		if !caseResult.Passed() {
			result = append(result, caseResult)
		}
	}

	return result
}

func (r *ValidationReport) Failed() bool {
	return len(r.Mismatches()) > 0
}

// ValidateCases computes every case and compares it with the expected answer.
// Cases are independent and run in parallel, results keep the case order.
// Workers = 0 means one worker per CPU.
func ValidateCases(ctx context.Context, params *ParamsValidateCases) (*ValidationReport, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := params.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	report := ValidationReport{
		RunID:   uuid.New().String(),
		Results: make([]CaseResult, len(params.Cases)),
	}

	logger.Debug(
		"validating cases",

		zap.String("run_id", report.RunID),
		zap.Int("cases", len(params.Cases)),
		zap.Int("workers", workers),
	)

	timeStart := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for ix := range params.Cases {
		g.Go(
			func() error {
				if errCtx := gctx.Err(); errCtx != nil {
					return errCtx
				}

				connections, errConnections := params.Cases[ix].Intervals.Connections()
				if errConnections != nil {
					return errConnections
				}

				report.Results[ix] = CaseResult{
					Index:       ix,
					Got:         SumDurations(connections),
					Expected:    params.Cases[ix].Answer,
					Connections: connections,
				}

				return nil
			},
		)
	}

	if errWait := g.Wait(); errWait != nil {
		return nil,
			errWait
	}

	report.Elapsed = time.Since(timeStart)

	for _, mismatch := range report.Mismatches() {
		logger.Warn(
			"case mismatch",

			zap.String("run_id", report.RunID),
			zap.Int("case", mismatch.Index),
			zap.Int64("got", mismatch.Got),
			zap.Int64("expected", mismatch.Expected),
		)
	}

	logger.Info(
		"cases validated",

		zap.String("run_id", report.RunID),
		zap.Int("total", len(report.Results)),
		zap.Int("failed", len(report.Mismatches())),
		zap.Duration("elapsed", report.Elapsed),
	)

	return &report,
		nil
}
