package contracts

import (
	"context"

	"predictacare-service/internal/pkg/dto/requests"
)

type StorageService interface {
	UploadImage(ctx context.Context, objectName string, image *requests.UploadedImage) (string, error)
}
