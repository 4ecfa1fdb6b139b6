package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich(t *testing.T) {
	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })

	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		verify    func(t *testing.T, got Info)
	}{
		{
			name:  "빌드 정보 없음: unknown 기본값",
			input: Info{},
			verify: func(t *testing.T, got Info) {
				assert.Equal(t, unknown, got.Version)
				assert.Equal(t, unknown, got.Commit)
				assert.Equal(t, runtime.Version(), got.GoVersion)
				assert.Equal(t, runtime.GOOS, got.OS)
			},
		},
		{
			name:  "VCS 메타데이터로 보강",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abcdef1234567"},
					{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			verify: func(t *testing.T, got Info) {
				assert.Equal(t, "v0.3.1", got.Version)
				assert.Equal(t, "abcdef1234567", got.Commit)
				assert.Equal(t, "2026-01-01T00:00:00Z", got.BuildDate)
				assert.True(t, got.DirtyBuild)
			},
		},
		{
			name:  "주입된 값 우선",
			input: Info{Version: "v1.0.0", Commit: "1111111"},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "2222222"}},
			},
			verify: func(t *testing.T, got Info) {
				assert.Equal(t, "v1.0.0", got.Version)
				assert.Equal(t, "1111111", got.Commit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.buildInfo, tt.buildInfo != nil
			}
			tt.verify(t, enrich(tt.input))
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", Info{}.String())
	assert.Equal(t, "v1.2.0+dirty (commit: f25b8bf, build: 42, go: go1.24.0)", Info{
		Version:     "v1.2.0",
		Commit:      "f25b8bf0123",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
		DirtyBuild:  true,
	}.String())
}

func TestGet(t *testing.T) {
	t.Parallel()

	bi := Get()
	assert.NotEmpty(t, bi.Version)
	assert.NotEmpty(t, bi.GoVersion)
	assert.Equal(t, bi.Version, bi.ToMap()["version"])
}
