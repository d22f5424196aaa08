package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestion(t *testing.T) {
	assert.NoError(t, ValidateQuestion("Как проходят занятия?"))
	assert.Error(t, ValidateQuestion(""))
	assert.Error(t, ValidateQuestion("   "))
	assert.Error(t, ValidateQuestion(strings.Repeat("q", 501)))
}

func TestValidateAnswer(t *testing.T) {
	assert.NoError(t, ValidateAnswer("По расписанию."))
	assert.Error(t, ValidateAnswer("\t\n"))
	assert.Error(t, ValidateAnswer(strings.Repeat("a", 4001)))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("prosto_993"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("с пробелом"))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "student", NormalizeUsername("@student"))
	assert.Equal(t, "student", NormalizeUsername("  student "))
}
