package llmprovider

import (
	"context"

	"cashback-advisor/pkg/gemini"
	"cashback-advisor/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat to llmprovider.Provider interface.
// One adapter type serves every OpenAI-compatible vendor; name tells them apart in logs.
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new OpenAI-compatible adapter
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openaicompat.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

func convertUsage(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

// Conversion helpers for Gemini
func toGeminiRole(role string) string {
	if role == RoleAssistant {
		return gemini.RoleModel
	}
	return gemini.RoleUser
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: toGeminiRole(msg.Role), Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// Conversion helpers for OpenAI-compatible providers
func convertToOpenAIContent(msg *Message) *openaicompat.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openaicompat.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openaicompat.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openaicompat.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openaicompat.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &openaicompat.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openaicompat.Content {
	contents := make([]openaicompat.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToOpenAIContent(&msgs[i])
	}
	return contents
}

func convertToOpenAITools(tools []Tool) []openaicompat.Tool {
	oaTools := make([]openaicompat.Tool, len(tools))
	for i, t := range tools {
		oaTools[i] = openaicompat.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return oaTools
}

func convertFromOpenAIContent(content openaicompat.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}
