package notification

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/darkkaiser/dnf-profile-server/internal/pkg/mark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		message       string
		errorOccurred bool
		contains      []string
		notContains   []string
	}{
		{
			name:        "일반 메시지",
			message:     "브라우저 상태 점검 복구",
			contains:    []string{"<b>【 dnf-profile-server 】</b>\n\n브라우저 상태 점검 복구"},
			notContains: []string{mark.Alert.String()},
		},
		{
			name:          "오류 메시지는 경고 마크 포함",
			message:       "Internal error",
			errorOccurred: true,
			contains:      []string{"】</b> " + mark.Alert.String()},
		},
		{
			name:     "HTML 특수문자 이스케이프",
			message:  "<script>a & b</script>",
			contains: []string{"&lt;script&gt;a &amp; b&lt;/script&gt;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildMessage(tt.message, tt.errorOccurred)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestSplitMessage(t *testing.T) {
	t.Parallel()

	t.Run("제한 이하는 그대로", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"hello"}, splitMessage("hello", 10))
	})

	t.Run("줄 단위로 분할", func(t *testing.T) {
		t.Parallel()

		got := splitMessage("aaaa\nbbbb\ncccc", 9)
		assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, got)
	})

	t.Run("긴 줄은 강제 분할", func(t *testing.T) {
		t.Parallel()

		got := splitMessage(strings.Repeat("a", 25), 10)
		assert.Equal(t, []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 5)}, got)
	})

	t.Run("멀티바이트 문자 경계 유지", func(t *testing.T) {
		t.Parallel()

		// 한글은 3바이트이므로 10바이트 제한에서는 3글자씩 잘립니다.
		got := splitMessage(strings.Repeat("가", 7), 10)
		require.Len(t, got, 3)
		for _, chunk := range got {
			assert.True(t, utf8.ValidString(chunk))
			assert.LessOrEqual(t, len(chunk), 10)
		}
		assert.Equal(t, strings.Repeat("가", 7), strings.Join(got, ""))
	})
}
