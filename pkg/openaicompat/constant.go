package openaicompat

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the default OpenAI-compatible endpoint (DashScope compatible mode)
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// OpenAIBaseURL is the OpenAI endpoint
	OpenAIBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
	roleTool      = "tool"

	toolTypeFunction = "function"
)
