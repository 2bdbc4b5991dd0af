package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUsesLinkerCommit(t *testing.T) {
	orig := CommitHash
	t.Cleanup(func() { CommitHash = orig })

	CommitHash = "0123456789abcdef"
	info := Get()

	assert.Equal(t, "0123456", info.ShortCommit())
	assert.Contains(t, info.String(), "expertise dev (commit 0123456")
	assert.NotEmpty(t, info.Platform)
	assert.NotEmpty(t, info.GoVersion)
}

func TestGetFallsBackToDev(t *testing.T) {
	orig := CommitHash
	t.Cleanup(func() { CommitHash = orig })

	CommitHash = ""
	// test binaries carry no VCS stamp
	assert.NotEmpty(t, Get().Commit)
}

func TestWithSchema(t *testing.T) {
	info := Info{Version: "v1.0.0", Commit: "abc", BuildTime: "now"}

	assert.NotContains(t, info.String(), "schema")

	withSchema := info.WithSchema("9f86d081884c7d65")
	assert.Equal(t, "expertise v1.0.0 (commit abc, built now) schema 9f86d081884c7d65", withSchema.String())
	assert.Empty(t, info.Schema, "WithSchema must not modify the receiver")
}
