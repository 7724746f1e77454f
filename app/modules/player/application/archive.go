package playerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
)

const (
	archiveTimestampLayout = "20060102_150405"
	maxArchiveAttempts     = 5
	defaultArchiveBaseName = "archivo"
)

// Archiver files every uploaded roster under an outcome-labeled name.
type Archiver struct {
	store     ArchiveStore
	subfolder string
	logger    *slog.Logger
	now       func() time.Time
}

// NewArchiver creates an Archiver writing into subfolder of store.
func NewArchiver(store ArchiveStore, subfolder string, logger *slog.Logger) *Archiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archiver{
		store:     store,
		subfolder: subfolder,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Archive saves content as {timestamp}_{Exito|Fallo}_{name}{ext} and returns
// the stored name. It never fails: on a write error it logs and returns
// {timestamp}_Error_{name}.
func (a *Archiver) Archive(ctx context.Context, originalName string, content []byte, succeeded bool) (archived string) {
	ts := a.now().Format(archiveTimestampLayout)
	base := archiveBaseName(originalName)
	fallback := fmt.Sprintf("%s_Error_%s", ts, base)

	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "Archive store panicked",
				attr.ExtractCorrelationID(ctx),
				attr.String("file_name", base),
				attr.Any("panic", r),
			)
			archived = fallback
		}
	}()

	result := "Fallo"
	if succeeded {
		result = "Exito"
	}
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for attempt := 1; attempt <= maxArchiveAttempts; attempt++ {
		suffix := ""
		if attempt > 1 {
			suffix = fmt.Sprintf("_%d", attempt)
		}
		name := fmt.Sprintf("%s_%s_%s%s%s", ts, result, stem, suffix, ext)

		err := a.store.Save(ctx, a.subfolder, name, content)
		if err == nil {
			a.logger.InfoContext(ctx, "Archived uploaded roster",
				attr.ExtractCorrelationID(ctx),
				attr.String("archived_as", name),
				attr.String("subfolder", a.subfolder),
				attr.Bool("succeeded", succeeded),
			)
			return name
		}
		if errors.Is(err, ErrArtifactExists) {
			continue
		}

		a.logger.ErrorContext(ctx, "Failed to archive uploaded roster",
			attr.ExtractCorrelationID(ctx),
			attr.String("file_name", base),
			attr.Error(err),
		)
		return fallback
	}

	a.logger.ErrorContext(ctx, "Archive name collisions exhausted",
		attr.ExtractCorrelationID(ctx),
		attr.String("file_name", base),
		attr.Int("attempts", maxArchiveAttempts),
	)
	return fallback
}

// archiveBaseName strips any directory components a client sent.
func archiveBaseName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	base := path.Base(name)
	if base == "." || base == "/" || base == "" {
		return defaultArchiveBaseName
	}
	return base
}
