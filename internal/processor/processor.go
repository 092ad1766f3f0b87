package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ig-advisor-go/internal/actionable"
	"ig-advisor-go/internal/advisor"
	"ig-advisor-go/internal/aggregator"
	"ig-advisor-go/internal/dataset"
	"ig-advisor-go/internal/logger"
	"ig-advisor-go/internal/prompt"
	"ig-advisor-go/internal/types"
)

// WarnManualColumnsMissing is appended when the export predates the manual
// metric columns.
const WarnManualColumnsMissing = "manual metric columns (reach/shares/profile_visits/follows) are missing from the videos data."

var (
	// ErrDataset wraps failures to read the export.
	ErrDataset = errors.New("dataset unavailable")
	// ErrAdvice wraps failures of the advice generator.
	ErrAdvice = errors.New("advice generation failed")
)

// LoadFunc reads an export workbook.
type LoadFunc func(ctx context.Context, path string) (*dataset.Dataset, error)

type Config struct {
	DatasetPath   string
	DefaultUserID string
	Timeout       time.Duration
	Engine        aggregator.Options
}

// Service runs one advisor request: load, window, aggregate, render and
// optionally ask for advice.
type Service struct {
	cfg     Config
	load    LoadFunc
	advisor advisor.Advisor
	log     *logger.Logger
}

func New(cfg Config, adv advisor.Advisor) *Service {
	return NewWithLoader(cfg, adv, dataset.LoadContext)
}

func NewWithLoader(cfg Config, adv advisor.Advisor, load LoadFunc) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Engine.Now == nil {
		cfg.Engine.Now = time.Now
	}
	return &Service{
		cfg:     cfg,
		load:    load,
		advisor: adv,
		log:     logger.New().Component("processor"),
	}
}

// PromptResult is returned by /account/prompt-input
type PromptResult struct {
	PromptText       string                     `json:"prompt_text"`
	AccountInputJSON types.AccountInputDocument `json:"account_input_json"`
	DataWarnings     []string                   `json:"data_warnings"`
}

// AdviceResult is returned by /account/advice
type AdviceResult struct {
	PromptResult
	Advice      string                  `json:"advice"`
	ActionCards []actionable.ActionCard `json:"action_cards"`
	DurationMs  int64                   `json:"duration_ms"`
	Error       string                  `json:"error,omitempty"`
}

// BuildPrompt assembles the account input document for userID and renders
// the prompt. An empty userID falls back to the configured default.
func (s *Service) BuildPrompt(ctx context.Context, userID string, params types.PromptParams) (PromptResult, error) {
	if userID == "" {
		userID = s.cfg.DefaultUserID
	}
	log := s.log.WithField("user_id", userID).WithField("window_days", params.WindowDays)

	loadCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	ds, err := s.load(loadCtx, s.cfg.DatasetPath)
	if err != nil {
		log.WithError(err).Error("dataset load failed")
		return PromptResult{}, fmt.Errorf("%w: %v", ErrDataset, err)
	}

	window := dataset.FilterWindow(ds.Data, userID, params.WindowDays, s.cfg.Engine.Now())
	doc := aggregator.BuildAccountInput(params, window, s.cfg.Engine)
	if !ds.ManualColumns {
		doc.DataWarnings = append(doc.DataWarnings, WarnManualColumnsMissing)
	}

	text, err := prompt.Render(doc)
	if err != nil {
		return PromptResult{}, fmt.Errorf("render prompt: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"videos":        doc.ContentOverview.VideoCount,
		"data_warnings": len(doc.DataWarnings),
	}).Info("account input built")

	return PromptResult{
		PromptText:       text,
		AccountInputJSON: doc,
		DataWarnings:     doc.DataWarnings,
	}, nil
}

// Advise builds the prompt and asks the advisor. When the advisor fails the
// result still carries the prompt and action cards, and the error wraps
// ErrAdvice.
func (s *Service) Advise(ctx context.Context, userID string, params types.PromptParams) (AdviceResult, error) {
	start := time.Now()

	pr, err := s.BuildPrompt(ctx, userID, params)
	if err != nil {
		return AdviceResult{Error: err.Error(), DurationMs: time.Since(start).Milliseconds()}, err
	}
	res := AdviceResult{
		PromptResult: pr,
		ActionCards:  actionable.Generate(pr.AccountInputJSON),
	}

	adviceCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	advice, err := s.advisor.Advise(adviceCtx, pr.PromptText)
	res.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		s.log.WithError(err).Warn("advisor returned error")
		res.Error = fmt.Sprintf("advice error: %v", err)
		return res, fmt.Errorf("%w: %v", ErrAdvice, err)
	}
	res.Advice = advice
	return res, nil
}
