package chat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	chatClientInstance contracts.ChatCompletionClient
	onceChatClient     sync.Once
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chatClient talks to any OpenAI-compatible chat completions endpoint.
type chatClient struct {
	BaseUrl     string
	APIKey      string
	Model       string
	Temperature float64
	Client      *http.Client
	Log         *zap.Logger
}

func NewChatClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.ChatCompletionClient {
	onceChatClient.Do(func() {
		timeout := time.Duration(cfg.Chat.TimeoutInSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		chatClientInstance = &chatClient{
			BaseUrl:     cfg.Chat.BaseUrl,
			APIKey:      cfg.Chat.APIKey,
			Model:       cfg.Chat.Model,
			Temperature: cfg.Chat.Temperature,
			Client:      &http.Client{Timeout: timeout},
			Log:         logger,
		}
	})
	return chatClientInstance
}

func (c *chatClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("chatClient.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := chatCompletionRequest{
		Model:       c.Model,
		Temperature: c.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := c.BaseUrl + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("chatClient.Complete error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("chatClient.Complete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrChatUpstream(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrChatUpstream(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("chatClient.Complete upstream returned non-200",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrChatUpstream(fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", exceptions.ErrChatUpstream(err)
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrChatUpstream(fmt.Errorf("completion carries no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}
