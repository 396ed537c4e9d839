// SPDX-License-Identifier: EPL-2.0

package pipeline

import "errors"

var (
	// ErrEmptyInput means no file bytes were supplied; rejected before the
	// pipeline starts.
	ErrEmptyInput = errors.New("no input audio supplied")
	// ErrUnknownFormat means the input bytes match no registered format.
	ErrUnknownFormat = errors.New("unrecognized audio format")
	// ErrDecode wraps a codec failure on otherwise recognized input.
	ErrDecode = errors.New("decoding failed")
	// ErrEncode wraps a container-encoding invariant violation.
	ErrEncode = errors.New("encoding failed")
)
