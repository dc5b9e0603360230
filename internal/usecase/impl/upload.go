package impl

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"unicode"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"
	"harvest/internal/util"
)

const (
	maxObjectNameLength = 100
	maxUploadSize       = 10 << 20
)

var (
	imageContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	proofContentTypes = map[string]bool{
		"image/jpeg":      true,
		"image/png":       true,
		"image/webp":      true,
		"application/pdf": true,
	}
)

// contentTypeOf returns the declared media type of file, sniffing the bytes when the
// client sent none or a generic one.
func contentTypeOf(file usecase.FileUpload) string {
	declared := strings.ToLower(strings.TrimSpace(file.ContentType))
	if mediaType, _, ok := strings.Cut(declared, ";"); ok {
		declared = strings.TrimSpace(mediaType)
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	sniffed, _, _ := strings.Cut(http.DetectContentType(file.Data), ";")

	return sniffed
}

func validateUpload(file usecase.FileUpload, allowed map[string]bool) (string, error) {
	if len(file.Data) == 0 {
		return "", validationError("file is empty")
	}
	if len(file.Data) > maxUploadSize {
		return "", validationError("file exceeds " + util.FormatBytes(maxUploadSize))
	}

	contentType := contentTypeOf(file)
	if !allowed[contentType] {
		return "", validationError("unsupported file type " + contentType)
	}

	return contentType, nil
}

// sanitizeObjectName reduces a client file name to a safe object key segment.
func sanitizeObjectName(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	cleaned := strings.Trim(b.String(), ".-")
	if cleaned == "" {
		return "file"
	}
	if len(cleaned) > maxObjectNameLength {
		cleaned = cleaned[len(cleaned)-maxObjectNameLength:]
	}

	return cleaned
}

// storageError maps an ObjectStorage failure to the error shown to clients.
func storageError(err error) error {
	if errors.Is(err, service.ErrPublicURLUnavailable) {
		return errors.Wrap(domainerrors.ErrPublicURLUnavailable, err.Error())
	}

	return errors.Wrap(domainerrors.ErrStorageUploadFailed, err.Error())
}

// removeObjects deletes objects by URL and only logs failures.
func removeObjects(ctx context.Context, storage service.ObjectStorage, logger *slog.Logger, bucket string, urls []string) {
	keys := make([]string, 0, len(urls))
	for _, url := range urls {
		if key, ok := storage.KeyFromURL(bucket, url); ok {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}

	if err := storage.Remove(ctx, bucket, keys); err != nil {
		logger.Warn("Failed to remove stored objects",
			slog.String("bucket", bucket),
			slog.Any("keys", keys),
			slog.Any("error", err),
		)
	}
}
