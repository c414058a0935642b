package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"
)

// newClientImpl creates a new client implementation
func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the chat completions endpoint
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("openaicompat: %w", err)
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("openaicompat: failed to decode response: %w", err)
	}

	return c.transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

// transformRequest converts request to the chat completions format
func (c *clientImpl) transformRequest(req *Request) *openAIRequest {
	openAIReq := &openAIRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = roleSystem
		openAIReq.Messages = append(openAIReq.Messages, systemMsg)
	}

	for i := range req.Messages {
		msg := &req.Messages[i]
		if hasFunctionResponses(msg) {
			openAIReq.Messages = append(openAIReq.Messages, transformToolMessages(msg)...)
			continue
		}
		openAIReq.Messages = append(openAIReq.Messages, transformMessage(msg))
	}

	if len(req.Tools) > 0 {
		openAIReq.Tools = make([]openAITool, len(req.Tools))
		for i, tool := range req.Tools {
			openAIReq.Tools[i] = openAITool{
				Type: toolTypeFunction,
				Function: openAIFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
	}

	return openAIReq
}

func hasFunctionResponses(msg *Content) bool {
	for _, part := range msg.Parts {
		if part.FunctionResponse != nil {
			return true
		}
	}
	return false
}

// transformMessage converts a text or function-call content into one message.
// Calls without a provider id get the positional id call_<i>.
func transformMessage(msg *Content) openAIMessage {
	openAIMsg := openAIMessage{Role: msg.Role}

	callIdx := 0
	for _, part := range msg.Parts {
		if part.Text != "" {
			if openAIMsg.Content != "" {
				openAIMsg.Content += "\n"
			}
			openAIMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			openAIMsg.ToolCalls = append(openAIMsg.ToolCalls, openAIToolCall{
				ID:   callID(part.FunctionCall.ID, callIdx),
				Type: toolTypeFunction,
				Function: openAIFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
			callIdx++
		}
	}

	return openAIMsg
}

// transformToolMessages emits one "tool" message per function response,
// correlated positionally with the calls of the preceding assistant message.
func transformToolMessages(msg *Content) []openAIMessage {
	msgs := make([]openAIMessage, 0, len(msg.Parts))
	idx := 0
	for _, part := range msg.Parts {
		if part.FunctionResponse == nil {
			continue
		}
		responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
		msgs = append(msgs, openAIMessage{
			Role:       roleTool,
			Name:       part.FunctionResponse.Name,
			ToolCallID: callID(part.FunctionResponse.ID, idx),
			Content:    string(responseJSON),
		})
		idx++
	}
	return msgs
}

func callID(id string, idx int) string {
	if id != "" {
		return id
	}
	return "call_" + strconv.Itoa(idx)
}

func (c *clientImpl) transformResponse(resp *openAIResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	if len(resp.Choices) == 0 {
		return &Response{Usage: usage}
	}

	choice := resp.Choices[0]
	role := choice.Message.Role
	if role == "" {
		role = roleAssistant
	}
	message := Content{
		Role:  role,
		Parts: make([]Part, 0, len(choice.Message.ToolCalls)+1),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "" && toolCall.Type != toolTypeFunction {
			continue
		}
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil || args == nil {
			args = make(map[string]interface{})
		}

		message.Parts = append(message.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   toolCall.ID,
				Name: toolCall.Function.Name,
				Args: args,
			},
		})
	}

	return &Response{
		Content:      message,
		FinishReason: choice.FinishReason,
		Usage:        usage,
	}
}
