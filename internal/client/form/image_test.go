package form

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestCaptureImage_PNG(t *testing.T) {
	got, err := CaptureImage(context.Background(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(got, prefix), got)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, decoded)
}

func TestCaptureImage_GIF(t *testing.T) {
	got, err := CaptureImage(context.Background(), strings.NewReader("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/gif;base64,"))
}

func TestCaptureImage_Errors(t *testing.T) {
	t.Run("not an image", func(t *testing.T) {
		_, err := CaptureImage(context.Background(), strings.NewReader("just some text"))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := CaptureImage(context.Background(), strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("too large", func(t *testing.T) {
		data := make([]byte, MaxImageSize+10)
		copy(data, pngHeader)
		_, err := CaptureImage(context.Background(), bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		// Чтение никогда не завершится
		_, err := CaptureImage(ctx, blockingReader{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestCaptureImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	got, err := CaptureImageFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	_, err = CaptureImageFile(context.Background(), filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
