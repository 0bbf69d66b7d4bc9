package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_VersionResponse(t *testing.T) {
	t.Run("linker version wins", func(t *testing.T) {
		info := NewAppBuildInfo("v1.4.0", "2026-10-01", "abc123")

		got := info.VersionResponse("dev")
		assert.Equal(t, VersionResponse{Version: "v1.4.0", BuildDate: "2026-10-01", BuildCommit: "abc123"}, got)
	})

	t.Run("falls back to configured version", func(t *testing.T) {
		info := NewAppBuildInfo("", "", "")

		got := info.VersionResponse("1.0.0")
		assert.Equal(t, "1.0.0", got.Version)
		assert.Equal(t, "N/A", got.BuildCommit)
	})
}
