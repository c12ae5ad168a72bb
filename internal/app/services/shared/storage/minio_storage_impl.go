package storage

import (
	"bytes"
	"context"
	"fmt"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	minioStorageInstance contracts.StorageService
	onceMinioStorage     sync.Once
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig, logger *zap.Logger) contracts.StorageService {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  driverConfig.Minio.BucketName,
			Log:         logger,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadImage(ctx context.Context, objectName string, image *requests.UploadedImage) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
		zap.Int64("size", image.Size),
	)

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(image.Data),
		image.Size,
		minio.PutObjectOptions{
			ContentType: image.ContentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadImage error creating object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrStorageUpload(err)
	}

	objectURL := fmt.Sprintf("/%s/%s", m.BucketName, objectName)
	return objectURL, nil
}
