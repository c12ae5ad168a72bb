package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// readImagePart pulls one optional image out of an already parsed multipart
// form. A missing part returns (nil, nil).
func readImagePart(r *http.Request, field string, maxSizeMB int64) (*requests.UploadedImage, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("extension %s not allowed", ext))
	}

	maxBytes := maxSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("image exceeds %dMB", maxSizeMB))
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}
	if int64(len(data)) > maxBytes {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("image exceeds %dMB", maxSizeMB))
	}

	return &requests.UploadedImage{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
	}, nil
}
