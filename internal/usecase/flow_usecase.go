package usecase

import (
	"context"
	"errors"
	"fmt"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFlowSessionNotFound  = errors.New("flow session not found")
	ErrInvalidFlowSessionID = errors.New("invalid flow session id")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

// FlowView is what the presentation layer needs to render a session: the
// quote while confirming, the form defaults while collecting.
type FlowView struct {
	Session entities.FlowSession `json:"session"`
	Quote   *entities.Quote      `json:"quote,omitempty"`
	Form    *IntakeForm          `json:"form,omitempty"`
}

// IFlowUseCase drives the collecting/confirming state machine of a visitor.
//
//   - SubmitIntake fires Validated on a valid form.
//   - Confirm submits the quote and fires Completed only when the relay
//     reports success.

type IFlowUseCase interface {
	Start(ctx context.Context) (FlowView, error)
	Get(ctx context.Context, id string) (FlowView, error)
	SubmitIntake(ctx context.Context, id string, form IntakeForm) (FlowView, error)
	Confirm(ctx context.Context, id string) (FlowView, error)
}

type FlowUseCase struct {
	repo      interfaces.IFlowSessionRepository
	guard     interfaces.ISubmissionGuard
	submitter ISubmissionUseCase
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ IFlowUseCase = (*FlowUseCase)(nil)

func NewFlowUseCase(repo interfaces.IFlowSessionRepository, guard interfaces.ISubmissionGuard, submitter ISubmissionUseCase, logger *zap.Logger) *FlowUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlowUseCase{
		repo:      repo,
		guard:     guard,
		submitter: submitter,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *FlowUseCase) Start(ctx context.Context) (FlowView, error) {
	s := entities.NewFlowSession(u.newID(), u.now())
	if err := u.repo.Save(ctx, s); err != nil {
		u.logger.Error("[flow][usecase] save new session failed", zap.Error(err))
		return FlowView{}, err
	}
	u.logger.Debug("[flow][usecase] session started", zap.String("session_id", s.ID))
	return viewOf(s), nil
}

func (u *FlowUseCase) Get(ctx context.Context, id string) (FlowView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return FlowView{}, err
	}
	return viewOf(s), nil
}

// SubmitIntake validates the form. A validation failure leaves the session
// untouched and returns the *ValidationError.
func (u *FlowUseCase) SubmitIntake(ctx context.Context, id string, form IntakeForm) (FlowView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return FlowView{}, err
	}
	if s.Stage != entities.FlowStageCollecting {
		return viewOf(s), fmt.Errorf("%w: validated on %s", entities.ErrInvalidFlowTransition, s.Stage)
	}

	record, err := ValidateIntake(form)
	if err != nil {
		u.logger.Debug("[flow][usecase] intake rejected", zap.String("session_id", s.ID), zap.Error(err))
		return viewOf(s), err
	}

	next, err := s.Validated(record, u.now())
	if err != nil {
		return viewOf(s), err
	}
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("[flow][usecase] save confirming session failed", zap.String("session_id", s.ID), zap.Error(err))
		return viewOf(s), err
	}
	u.logger.Info("[flow][usecase] intake validated", zap.String("session_id", s.ID))
	return viewOf(next), nil
}

// Confirm forwards the quote held by a confirming session. At most one
// submission per session is in flight; a concurrent call gets
// ErrSubmissionInProgress. On any failure the session keeps its record so the
// visitor can retry.
func (u *FlowUseCase) Confirm(ctx context.Context, id string) (FlowView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return FlowView{}, ErrInvalidFlowSessionID
	}

	acquired, err := u.guard.Acquire(ctx, id)
	if err != nil {
		u.logger.Error("[flow][usecase] acquire submission guard failed", zap.String("session_id", id), zap.Error(err))
		return FlowView{}, err
	}
	if !acquired {
		u.logger.Warn("[flow][usecase] submission already in flight", zap.String("session_id", id))
		return FlowView{}, ErrSubmissionInProgress
	}
	defer func() {
		if err := u.guard.Release(context.WithoutCancel(ctx), id); err != nil {
			u.logger.Error("[flow][usecase] release submission guard failed", zap.String("session_id", id), zap.Error(err))
		}
	}()

	s, err := u.load(ctx, id)
	if err != nil {
		return FlowView{}, err
	}
	if s.Stage != entities.FlowStageConfirming || s.Record == nil {
		return viewOf(s), fmt.Errorf("%w: completed on %s", entities.ErrInvalidFlowTransition, s.Stage)
	}

	if _, err := u.submitter.SubmitQuote(ctx, *s.Record); err != nil {
		return viewOf(s), err
	}

	next, err := s.Completed(u.now())
	if err != nil {
		return viewOf(s), err
	}
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("[flow][usecase] save reset session failed", zap.String("session_id", id), zap.Error(err))
		return viewOf(s), err
	}
	u.logger.Info("[flow][usecase] quote confirmed, flow reset", zap.String("session_id", id))
	return viewOf(next), nil
}

func (u *FlowUseCase) load(ctx context.Context, id string) (entities.FlowSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FlowSession{}, ErrInvalidFlowSessionID
	}
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.FlowSession{}, err
	}
	if s.ID == "" {
		return entities.FlowSession{}, ErrFlowSessionNotFound
	}
	return s, nil
}

func viewOf(s entities.FlowSession) FlowView {
	if s.Stage == entities.FlowStageConfirming && s.Record != nil {
		q := Estimate(*s.Record)
		return FlowView{Session: s, Quote: &q}
	}
	form := DefaultIntakeForm()
	return FlowView{Session: s, Form: &form}
}
