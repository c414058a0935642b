package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"cashback-advisor/internal/conversation"
	pkgLog "cashback-advisor/pkg/log"
)

// Run answers one user message: Reason → Act → Observe until the model
// replies with text or the round limit is reached. Calls for the same session
// are serialized; the history is persisted only when Run succeeds.
func (o *Orchestrator) Run(ctx context.Context, input RunInput) (RunOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return RunOutput{}, ErrEmptyMessage
	}

	sessionID := conversation.NormalizeSessionID(input.SessionID)
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	unlock, err := o.locker.Lock(ctx, sessionID)
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixRun, err)
		return RunOutput{}, err
	}
	defer unlock()

	history, err := o.history.Load(ctx, sessionID)
	if err != nil {
		o.l.Errorf(ctx, "%s: "+LogMsgHistoryFailure, LogPrefixRun, err)
		return RunOutput{}, err
	}

	working := history.Clone()
	next := conversation.UserTurn(text)

	for round := 0; ; round++ {
		resp, err := o.model.Send(ctx, working, next)
		if err != nil {
			o.l.Errorf(ctx, "%s: "+LogMsgModelFailed, LogPrefixRun, round, err)
			return RunOutput{}, fmt.Errorf("%w: %v", ErrModelFailure, err)
		}
		working = append(working, next)

		if resp.IsTerminal() {
			working = append(working, conversation.ModelTextTurn(resp.Text))
			o.persist(ctx, sessionID, working)
			o.l.Infof(ctx, "%s: "+LogMsgFinished, LogPrefixRun, round)
			return RunOutput{Text: resp.Text, Rounds: round}, nil
		}

		if round >= o.opt.MaxToolRounds {
			// The unanswered call turn is dropped so the stored history stays replayable.
			o.l.Warnf(ctx, "%s: "+LogMsgMaxRounds, LogPrefixRun, o.opt.MaxToolRounds)
			working = append(working, conversation.ModelTextTurn(FallbackMessage))
			o.persist(ctx, sessionID, working)
			return RunOutput{Text: FallbackMessage, Rounds: round, LoopBoundExceeded: true}, nil
		}

		o.l.Infof(ctx, "%s: "+LogMsgRound, LogPrefixRun, round+1, len(resp.Calls))
		results := o.dispatch(ctx, resp.Calls)

		working = append(working, conversation.ModelCallTurn(resp.Calls))
		next = conversation.ToolResultTurn(results)
	}
}

// Reset deletes the history of a session once no Run holds it.
func (o *Orchestrator) Reset(ctx context.Context, sessionID string) error {
	sessionID = conversation.NormalizeSessionID(sessionID)
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	unlock, err := o.locker.Lock(ctx, sessionID)
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixReset, err)
		return err
	}
	defer unlock()

	if err := o.history.Clear(ctx, sessionID); err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixReset, err)
		return err
	}
	return nil
}

// persist saves the history. The answer is already computed, so a failed
// write is logged and not surfaced to the caller.
func (o *Orchestrator) persist(ctx context.Context, sessionID string, history conversation.History) {
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := o.history.Save(sctx, sessionID, history); err != nil {
		o.l.Errorf(ctx, "%s: "+LogMsgSaveFailed, LogPrefixRun, err)
	}
}
