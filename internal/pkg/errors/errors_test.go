package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"InvalidInput", InvalidInput, "필수 파라미터 누락"},
		{"NotFound", NotFound, "데이터 없음"},
		{"Empty Message", Timeout, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "선택자 %d개 모두 매칭 실패", 2)

	assert.EqualError(t, err, "[NotFound] 선택자 2개 모두 매칭 실패")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, Internal, "무시됨"))
		assert.Nil(t, Wrapf(nil, Internal, "무시됨 %d", 1))
	})

	t.Run("외부 에러 래핑", func(t *testing.T) {
		t.Parallel()

		err := Wrap(context.DeadlineExceeded, Timeout, "페이지 로딩 시간 초과")

		assert.True(t, Is(err, Timeout))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, context.DeadlineExceeded, RootCause(err))
		assert.Equal(t, "[Timeout] 페이지 로딩 시간 초과: context deadline exceeded", err.Error())
	})

	t.Run("Wrapf 메시지 포맷", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errors.New("boom"), ExecutionFailed, "'%s' 이동 실패", "https://example.com")

		assert.Equal(t, "[ExecutionFailed] 'https://example.com' 이동 실패: boom", err.Error())
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "필드 없음")
	outer := Wrap(inner, Internal, "추출 실패")
	std := fmt.Errorf("표준 래핑: %w", outer)

	assert.True(t, Is(std, NotFound))
	assert.True(t, Is(std, Internal))
	assert.False(t, Is(std, Timeout))
	assert.False(t, Is(nil, NotFound))
	assert.False(t, Is(errors.New("plain"), Unknown))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errors.New("plain"), Unknown},
		{"단일 AppError", New(Unavailable, "준비 안 됨"), Unavailable},
		{"중첩 AppError", Wrap(New(NotFound, "없음"), Internal, "래핑"), NotFound},
		{"외부 에러 래핑", Wrap(context.DeadlineExceeded, Timeout, "시간 초과"), Timeout},
		{"표준 래핑 혼합", fmt.Errorf("ctx: %w", Wrap(New(InvalidInput, "x"), System, "y")), InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, UnderlyingType(tt.err))
		})
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))

	root := errors.New("root")
	err := root
	for i := 0; i < 10; i++ {
		err = Wrap(err, Internal, "wrap")
	}
	assert.Same(t, root, RootCause(err))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), Internal, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detailed, "[Internal] outer"))
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] inner")
	assert.Equal(t, 1, strings.Count(detailed, "Stack trace:"), "스택은 체인의 끝에서만 한 번 출력되어야 합니다")
}

func TestCaptureStack_PointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestCaptureStack_PointsToCaller")
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(-1), "ErrorType(-1)"},
		{ErrorType(999), "ErrorType(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

func BenchmarkWrap(b *testing.B) {
	err := errors.New("base error")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Wrap(err, Internal, "wrapped message")
	}
}
