package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProvider", func(t *testing.T) {
		provider, err := NewProvider()

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.meterProvider)
		assert.NotNil(t, provider.exporter)
		assert.NotNil(t, provider.registry)
	})
}

func TestProvider_MeterProvider(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	meterProvider := provider.MeterProvider()
	assert.NotNil(t, meterProvider)
}

func TestProvider_WriteToTextfile(t *testing.T) {
	t.Run("Success_WritesExpositionFormat", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "textfile_test")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "password", "generate", "success")

		path := filepath.Join(t.TempDir(), "fibrohash.prom")
		require.NoError(t, provider.WriteToTextfile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "textfile_test_operations_total")
	})

	t.Run("Error_MissingDirectory", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		err = provider.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "fibrohash.prom"))

		assert.Error(t, err)
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		err = provider.Shutdown(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{meterProvider: nil}

		err := provider.Shutdown(context.Background())
		assert.NoError(t, err)
	})
}
