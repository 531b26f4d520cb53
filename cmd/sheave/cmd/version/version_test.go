package version_test

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/cmd/sheave/cmd/version"
	"github.com/agentstation/sheave/internal/cmd/application"
)

func TestVersion(t *testing.T) {
	mock := &application.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
		DateFunc:    func() string { return "2025-01-01" },
	}

	cmd := version.NewCommand(mock)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "sheave version 1.2.3\n")
	assert.Contains(t, out, "commit: abc123\n")
	assert.Contains(t, out, "built: 2025-01-01\n")
	assert.Contains(t, out, "built by: test\n")
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH+"\n")
}
