package chat

import (
	"context"
	"predictacare-service/internal/app/contracts"
	"sync"
)

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

type chatUsecase struct {
	ChatClient contracts.ChatCompletionClient
}

func NewChatUsecase(chatClient contracts.ChatCompletionClient) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{ChatClient: chatClient}
	})
	return chatUsecaseInstance
}

func (uc *chatUsecase) Reply(ctx context.Context, message string) (string, error) {
	return uc.ChatClient.Complete(ctx, systemPrompt, message)
}
