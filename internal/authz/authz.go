// Package authz содержит предикаты доступа, из которых сервисы
// собирают политику по каждому действию.
package authz

import (
	"socialgram/internal/models"
)

// IsAuthenticated - базовая проверка для всех небезопасных операций
func IsAuthenticated(actor *models.User) bool {
	return actor != nil && actor.UserID != ""
}

// IsOwner - только автор может менять и удалять свой пост
func IsOwner(actor *models.User, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return post.AuthorID == actor.UserID
}

// IsNotOwner - жаловаться на собственный пост нельзя
func IsNotOwner(actor *models.User, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return post.AuthorID != actor.UserID
}

// IsNotStaff - staff разбирает жалобы, но не подаёт их
func IsNotStaff(actor *models.User) bool {
	return actor != nil && !actor.IsStaff
}

// IsStaff - модерация доступна только staff
func IsStaff(actor *models.User) bool {
	return actor != nil && actor.IsStaff
}
