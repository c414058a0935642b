package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"cashback-advisor/internal/agent"
	"cashback-advisor/internal/conversation"
)

// dispatch runs every call of a round concurrently and returns one result
// per call, in call order. A failing call never affects its siblings.
func (o *Orchestrator) dispatch(ctx context.Context, calls []conversation.ToolCall) []conversation.ToolResult {
	return iter.Map(calls, func(call *conversation.ToolCall) conversation.ToolResult {
		return o.invoke(ctx, *call)
	})
}

func (o *Orchestrator) invoke(ctx context.Context, call conversation.ToolCall) conversation.ToolResult {
	result := conversation.ToolResult{CallID: call.ID, Name: call.Name}

	tool, err := o.registry.Resolve(call.Name)
	if err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgUnknownTool, LogPrefixDispatch, call.Name)
		result.Result = errorResult(ErrMsgUnknownTool)
		return result
	}

	if err := agent.ValidateArgs(tool, call.Args); err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgToolFailed, LogPrefixDispatch, call.Name, err)
		result.Result = errorResult(err.Error())
		return result
	}

	o.l.Infof(ctx, "%s: "+LogMsgCallingTool, LogPrefixDispatch, call.Name, call.Args)
	out, err := o.execute(ctx, tool, call.Args)
	if err != nil {
		o.l.Errorf(ctx, "%s: "+LogMsgToolFailed, LogPrefixDispatch, call.Name, err)
		result.Result = errorResult(err.Error())
		return result
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	result.Result = out
	return result
}

type toolOutcome struct {
	result map[string]interface{}
	err    error
}

// execute runs a handler on a context detached from the caller and bounded by
// the tool timeout. A handler that overruns keeps running; its result is dropped.
func (o *Orchestrator) execute(ctx context.Context, tool agent.Tool, args map[string]interface{}) (map[string]interface{}, error) {
	tctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.opt.ToolTimeout)
	defer cancel()

	done := make(chan toolOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- toolOutcome{err: fmt.Errorf("%w: panic: %v", agent.ErrHandlerFailure, r)}
			}
		}()
		out, err := tool.Execute(tctx, args)
		done <- toolOutcome{result: out, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil && !errors.Is(res.err, agent.ErrInvalidArguments) && !errors.Is(res.err, agent.ErrHandlerFailure) {
			res.err = fmt.Errorf("%w: %v", agent.ErrHandlerFailure, res.err)
		}
		return res.result, res.err
	case <-tctx.Done():
		return nil, fmt.Errorf("%w: %s timed out after %s", agent.ErrHandlerFailure, tool.Name(), o.opt.ToolTimeout)
	}
}

func errorResult(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}
