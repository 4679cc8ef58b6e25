package service

import (
	"fmt"

	"socialgram/internal/models"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// validateImage проверяет размер и content-type до обращения к хранилищу.
// Потолки для аватара и картинки поста настраиваются независимо.
func validateImage(size int64, contentType string, maxSize int64) error {
	if size > maxSize {
		return models.NewValidationError(fmt.Sprintf("размер изображения превышает %d байт", maxSize))
	}
	if !allowedImageTypes[contentType] {
		return models.NewValidationError("допустимы только JPEG, PNG или WEBP")
	}
	return nil
}
