package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		origin        string
		wantErr       bool
		errorContains string
	}{
		{name: "Wildcard", origin: "*"},
		{name: "HTTPS Domain", origin: "https://example.com"},
		{name: "Localhost with Port", origin: "http://localhost:3000"},
		{name: "IPv4", origin: "http://192.168.0.1:8080"},
		{name: "Trimmed", origin: "  https://example.com  "},
		{name: "Empty", origin: "", wantErr: true, errorContains: "비어있을 수 없습니다"},
		{name: "Trailing Slash", origin: "https://example.com/", wantErr: true, errorContains: "'/'"},
		{name: "Path", origin: "https://example.com/api", wantErr: true, errorContains: "경로"},
		{name: "Query", origin: "https://example.com?a=1", wantErr: true, errorContains: "쿼리"},
		{name: "FTP Scheme", origin: "ftp://example.com", wantErr: true, errorContains: "스키마"},
		{name: "Port Out of Range", origin: "http://localhost:70000", wantErr: true, errorContains: "포트"},
		{name: "Numeric TLD", origin: "http://example.123", wantErr: true, errorContains: "TLD"},
		{name: "Invalid Char", origin: "http://exa_mple.com", wantErr: true, errorContains: "invalid_char"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestValidateSiteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"성공: https 절대 URL", "https://dundam.xyz/character", false},
		{"성공: http 포트 포함", "http://localhost:9222/page", false},
		{"실패: 빈 문자열", "", true},
		{"실패: 상대 경로", "/character", true},
		{"실패: 지원하지 않는 스키마", "file:///tmp/page.html", true},
		{"실패: 쿼리 포함", "https://dundam.xyz/character?server=cain", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantErr, ValidateSiteURL(tt.url) != nil)
		})
	}
}
