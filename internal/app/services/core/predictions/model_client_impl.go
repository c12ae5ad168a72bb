package predictions

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
	"golang.org/x/time/rate"
)

var (
	modelClientInstance contracts.PredictionModelClient
	onceModelClient     sync.Once
)

type modelClient struct {
	BaseUrl string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

// NewModelClient builds the relay to the external model service. Outbound
// calls are throttled with a token-bucket limiter so a burst of prediction
// requests cannot overwhelm the inference host.
func NewModelClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.PredictionModelClient {
	onceModelClient.Do(func() {
		timeout := time.Duration(cfg.Prediction.TimeoutInSeconds) * time.Second
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		modelClientInstance = &modelClient{
			BaseUrl: cfg.Prediction.BaseUrl,
			Client:  &http.Client{Timeout: timeout},
			Limiter: rate.NewLimiter(rate.Limit(cfg.Prediction.UpstreamRequestsPerSec), cfg.Prediction.UpstreamBurst),
			Log:     logger,
		}
	})
	return modelClientInstance
}

func (c *modelClient) Predict(ctx context.Context, disease string, features map[string]interface{}) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("modelClient.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiseaseKey, disease),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPredictionUpstream(err)
	}

	requestJSON, err := json.Marshal(features)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/predict/%s", c.BaseUrl, disease)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("modelClient.Predict error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("modelClient.Predict error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPredictionUpstream(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrPredictionUpstream(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("modelClient.Predict upstream returned non-200",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPredictionUpstream(fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	result := make(map[string]interface{})
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, exceptions.ErrPredictionUpstream(err)
	}
	return result, nil
}
