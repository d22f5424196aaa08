package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Максимальные длины для различных полей
	MaxQuestionLength = 500
	MaxAnswerLength   = 4000
	MaxUsernameLength = 32
)

// Telegram username regex (буквы, цифры, подчеркивания, 5-32 символа)
var telegramUsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{5,32}$`)

// ValidateQuestion проверяет вопрос FAQ: не пустой после обрезки пробелов.
func ValidateQuestion(question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}
	if len(question) > MaxQuestionLength {
		return fmt.Errorf("question cannot exceed %d characters", MaxQuestionLength)
	}
	return nil
}

// ValidateAnswer проверяет ответ FAQ: не пустой после обрезки пробелов.
func ValidateAnswer(answer string) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return fmt.Errorf("answer cannot be empty")
	}
	if len(answer) > MaxAnswerLength {
		return fmt.Errorf("answer cannot exceed %d characters", MaxAnswerLength)
	}
	return nil
}

// ValidateUsername проверяет формат Telegram username (без ведущей @).
func ValidateUsername(username string) error {
	if !telegramUsernameRegex.MatchString(username) {
		return fmt.Errorf("invalid telegram username format")
	}
	return nil
}

// NormalizeUsername убирает ведущую @ и пробелы.
func NormalizeUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
