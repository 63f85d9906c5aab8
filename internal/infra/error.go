package infra

import (
	"errors"
	"log/slog"

	"order-service/internal/pkg/errs"
)

type DependencyErrorKind string

type DependencyError struct {
	Kind DependencyErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e DependencyError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e DependencyError) Unwrap() error {
	return e.err
}

func WrapDepErr(slogger *slog.Logger, kind DependencyErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	slogger.Error("Dependency error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return DependencyError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind DependencyErrorKind) bool {
	var e DependencyError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindStoreUnavailable   DependencyErrorKind = "STORE_UNAVAILABLE"
	KindArchiveUnavailable DependencyErrorKind = "ARCHIVE_UNAVAILABLE"
	KindConfigUnavailable  DependencyErrorKind = "CONFIG_UNAVAILABLE"
	KindUnprocessedItems   DependencyErrorKind = "UNPROCESSED_ITEMS"
)
