package view

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL 根据邮箱计算头像地址，头像服务本身由外部提供。
// 参数固定：尺寸 100、评级 g、缺省图案 retro。
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=100&d=retro&r=g", hash)
}
