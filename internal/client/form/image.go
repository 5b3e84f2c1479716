package form

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize предельный размер изображения
const MaxImageSize = 5 << 20

var (
	// ErrNotImage содержимое файла не является изображением
	ErrNotImage = errors.New("file is not an image")
	// ErrImageTooLarge файл больше MaxImageSize
	ErrImageTooLarge = errors.New("image is too large")
	// ErrEmptyImage пустой файл
	ErrEmptyImage = errors.New("image is empty")
)

// CaptureImage читает изображение целиком и возвращает data URL.
// Результат возвращается только после полного чтения, частичных данных не бывает.
func CaptureImage(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		err  error
		data []byte
	}
	done := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
		done <- result{data: data, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		return "", fmt.Errorf("failed to read image: %w", res.err)
	}
	if len(res.data) == 0 {
		return "", ErrEmptyImage
	}
	if len(res.data) > MaxImageSize {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, MaxImageSize)
	}

	mtype := mimetype.Detect(res.data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	var buf bytes.Buffer
	buf.Grow(len("data:;base64,") + len(mtype.String()) + base64.StdEncoding.EncodedLen(len(res.data)))
	buf.WriteString("data:")
	buf.WriteString(mtype.String())
	buf.WriteString(";base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(res.data))
	return buf.String(), nil
}

// CaptureImageFile открывает файл и передает его в CaptureImage
func CaptureImageFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return CaptureImage(ctx, f)
}
