package aitunnel

import "context"

// IAITunnel defines the interface for the AITunnel client
type IAITunnel interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Transcribe(ctx context.Context, req *TranscriptionRequest) (string, error)
	Model() string
}
