package modelclient

import (
	"context"
	"fmt"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/llmprovider"
)

// Send asks the model for the turn following conversation + next. Every
// function call of the answer is returned, in order; text next to calls is ignored.
func (c *implModelClient) Send(ctx context.Context, history conversation.History, next conversation.Turn) (conversation.ModelResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opt.Timeout)
	defer cancel()

	resp, err := c.gen.GenerateContent(ctx, c.buildRequest(history, next))
	if err != nil {
		c.l.Errorf(ctx, "conversation.modelclient.Send: %v", err)
		return conversation.ModelResponse{}, err
	}
	if resp == nil || len(resp.Content.Parts) == 0 {
		return conversation.ModelResponse{}, conversation.ErrEmptyModelResponse
	}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		out := make([]conversation.ToolCall, len(calls))
		for i, fc := range calls {
			args := fc.Args
			if args == nil {
				args = map[string]interface{}{}
			}
			out[i] = conversation.ToolCall{ID: fc.ID, Name: fc.Name, Args: args}
		}
		return conversation.ModelResponse{Calls: out}, nil
	}

	text := resp.Text()
	if text == "" {
		return conversation.ModelResponse{}, fmt.Errorf("%w: no text and no function call", conversation.ErrEmptyModelResponse)
	}
	return conversation.ModelResponse{Text: text}, nil
}

func (c *implModelClient) buildRequest(history conversation.History, next conversation.Turn) *llmprovider.Request {
	turns := history.TrimLeading()
	messages := make([]llmprovider.Message, 0, len(turns)+1)
	for _, t := range turns {
		messages = append(messages, toMessage(t))
	}
	messages = append(messages, toMessage(next))

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: c.opt.SystemPrompt + buildTimeContext(c.opt.Timezone, c.now())}},
		},
		Messages:    messages,
		Tools:       c.tools.Definitions(),
		Temperature: c.opt.Temperature,
	}
}

// toMessage maps a turn onto the provider-neutral message shape. Tool results
// travel as a user message made of function responses.
func toMessage(t conversation.Turn) llmprovider.Message {
	switch t.Role {
	case conversation.RoleModel:
		if len(t.ToolCalls) == 0 {
			return llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: t.Text}}}
		}
		parts := make([]llmprovider.Part, len(t.ToolCalls))
		for i, call := range t.ToolCalls {
			parts[i] = llmprovider.Part{FunctionCall: &llmprovider.FunctionCall{
				ID:   call.ID,
				Name: call.Name,
				Args: call.Args,
			}}
		}
		return llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: parts}

	case conversation.RoleToolResult:
		parts := make([]llmprovider.Part, len(t.ToolResults))
		for i, res := range t.ToolResults {
			parts[i] = llmprovider.Part{FunctionResponse: &llmprovider.FunctionResponse{
				ID:       res.CallID,
				Name:     res.Name,
				Response: res.Result,
			}}
		}
		return llmprovider.Message{Role: llmprovider.RoleUser, Parts: parts}

	default:
		return llmprovider.Message{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: t.Text}}}
	}
}
