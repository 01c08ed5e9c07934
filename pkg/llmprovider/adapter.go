package llmprovider

import (
	"context"

	"github.com/pKa1/loveSonia/pkg/aitunnel"
)

// ChatAdapter adapts an OpenAI-compatible pkg/aitunnel client to the
// Provider interface. name tells providers sharing the client apart.
type ChatAdapter struct {
	name   string
	client aitunnel.IAITunnel
}

// NewChatAdapter creates a new adapter
func NewChatAdapter(name string, client aitunnel.IAITunnel) *ChatAdapter {
	return &ChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &aitunnel.Request{
		Messages:  convertToChatMessages(req),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		temperature := req.Temperature
		chatReq.Temperature = &temperature
	}
	if req.JSONOnly {
		chatReq.ResponseFormat = &aitunnel.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: classify(err)}
	}

	return convertFromChatResponse(a.name, a.client.Model(), resp), nil
}

// Name returns the provider name
func (a *ChatAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *ChatAdapter) Model() string {
	return a.client.Model()
}

func convertToChatMessages(req *Request) []aitunnel.Message {
	messages := make([]aitunnel.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			messages = append(messages, aitunnel.Message{Role: "system", Content: text})
		}
	}
	for _, msg := range req.Messages {
		messages = append(messages, aitunnel.Message{Role: msg.Role, Content: msg.Text()})
	}
	return messages
}

func convertFromChatResponse(name, model string, resp *aitunnel.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Choices[0].Message.Content})
	}
	return out
}
