package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersionInfo(t *testing.T) { //nolint:paralleltest
	ProjectName, Version, FullCommit = "mongo-explorer", "v0.1.0", "c09550"
	t.Cleanup(func() { ProjectName, Version, FullCommit = "", "", "" })

	assert.Equal(t, "ProjectName: mongo-explorer\nVersion: v0.1.0\nFullCommit: c09550", FullVersionInfo())
}
