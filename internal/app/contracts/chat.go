package contracts

import "context"

type ChatCompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type ChatUsecase interface {
	Reply(ctx context.Context, message string) (string, error)
}
