package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const slugContentPrefix = 50

// uniqueSlug строит slug из первых 50 символов контента плюс короткий
// случайный суффикс. Для пустого контента база берётся из таймштампа.
// Вероятность коллизии почти нулевая, но при нарушении уникальности
// в БД сервис один раз перегенерирует суффикс.
func uniqueSlug(content string) string {
	runes := []rune(content)
	if len(runes) > slugContentPrefix {
		runes = runes[:slugContentPrefix]
	}

	base := slug.Make(string(runes))
	if base == "" {
		base = fmt.Sprintf("post-%d", time.Now().Unix())
	}

	suffix := uuid.New().String()[:6]
	return fmt.Sprintf("%s-%s", base, suffix)
}
