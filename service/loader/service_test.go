package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Load(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "trace.yaml")
	data := []byte("quantum: 2\nprocesses:\n  - pid: 1\n    work: 4\n  - pid: 2\n    work: 2\n")
	require.NoError(t, os.WriteFile(location, data, 0o644))

	service := New()
	ctx := context.Background()

	workload, err := service.Load(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, "trace", workload.Name, "name defaults to the file name")
	assert.Len(t, workload.Processes, 2)

	// A missing extension defaults to .yaml.
	workload, err = service.Load(ctx, filepath.Join(dir, "trace"))
	require.NoError(t, err)
	assert.Equal(t, 2, workload.Quantum)

	_, err = service.Load(ctx, filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
