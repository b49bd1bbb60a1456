package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// SlugPattern определяет допустимый формат slug
// Только строчные латинские буквы (a-z), цифры (0-9), дефис (-)
// Дефис не может быть первым или последним символом
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const (
	// MinSlugLen минимальная длина slug
	MinSlugLen = 1
	// MaxSlugLen максимальная длина slug
	MaxSlugLen = 64
	// MaxTitleLen максимальная длина заголовка доски
	MaxTitleLen = 200
)

// ValidateSlug проверяет, что slug соответствует требованиям
// Формат: строчные латинские буквы (a-z), цифры (0-9), дефисы (-)
// Длина: 1-64 символа, дефис не может стоять в начале или в конце
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if len(slug) > MaxSlugLen {
		return fmt.Errorf("slug must not exceed %d characters", MaxSlugLen)
	}

	if !SlugPattern.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters (a-z), numbers (0-9), and hyphens (-), and cannot start or end with a hyphen")
	}

	return nil
}

// ValidateTitle проверяет заголовок доски
// Не пустой (после обрезки пробелов), максимум 200 символов
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}
