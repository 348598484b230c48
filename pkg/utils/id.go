package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 无连字符的 uuid，当用户 uid 用
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
