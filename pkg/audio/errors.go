package audio

import "errors"

var (
	ErrPathTraversal     = errors.New("path traversal detected")
	ErrPathSeparator     = errors.New("path separators not allowed")
	ErrUnsupportedFormat = errors.New("only WAV files are supported")
	ErrInvalidWAV        = errors.New("invalid WAV file format")
	ErrNotPCM            = errors.New("only PCM format supported")
	ErrTruncatedData     = errors.New("PCM data shorter than declared")
)

// IsInvalidName reports whether err was caused by a rejected file name rather than by the file itself.
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrPathTraversal) || errors.Is(err, ErrPathSeparator) || errors.Is(err, ErrUnsupportedFormat)
}
