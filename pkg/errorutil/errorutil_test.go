package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"uftool/pkg/errorutil"
)

var errRoot = errors.New("root cause")

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, errorutil.CodeSuccess},
		{"plain", errRoot, errorutil.CodeInternalErr},
		{"coded", errorutil.NewExitError(errorutil.CodeInvalidData, errRoot), errorutil.CodeInvalidData},
		{"wrapped", fmt.Errorf("outer: %w", errorutil.NewExitError(errorutil.CodeConfigError, errRoot)), errorutil.CodeConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorutil.ExitCodeFromError(tt.err))
		})
	}
}

func TestFormatErrorAndCode(t *testing.T) {
	err := errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "bad flag", errRoot)
	assert.ErrorIs(t, err, errRoot)
	assert.Equal(t, "bad flag: root cause", err.Error())

	out, code := errorutil.FormatErrorAndCode(err)
	assert.Equal(t, errorutil.CodeInvalidUsage, code)
	assert.Equal(t, int64(errorutil.CodeInvalidUsage), gjson.Get(out, "code").Int())
	assert.Equal(t, "bad flag", gjson.Get(out, "message").String())
	assert.Equal(t, "root cause", gjson.Get(out, "error").String())

	out, code = errorutil.FormatErrorAndCode(errRoot)
	assert.Equal(t, errorutil.CodeInternalErr, code)
	assert.Equal(t, "root cause", gjson.Get(out, "error").String())
}
