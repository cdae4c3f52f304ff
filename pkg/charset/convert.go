package charset

import (
	"errors"
	"fmt"
)

// ErrConvertFailed indicates that a detected file could not be transcoded to
// the requested target encoding: the source contained byte sequences invalid
// under its detected encoding, the target label is unknown, or the decoded
// text holds characters the target cannot represent.
var ErrConvertFailed = errors.New("encoding conversion failed")

// ConvertFile detects the encoding of the file at path (full read, so the
// whole content is decoded) and returns its content transcoded to the target
// encoding. Conversion is strict: unlike detection, which tolerates
// substitutions, any invalid sequence in the source or unencodable character
// for the target fails the call.
func ConvertFile(path, target string, opts Options) ([]byte, error) {
	o := opts.withDefaults()

	match, err := AnalyzeFile(path, o)
	if err != nil {
		return nil, err
	}
	if match.Winner.ErrorRatio > 0 {
		return nil, fmt.Errorf("%w: %s contains byte sequences invalid under detected encoding %q",
			ErrConvertFailed, path, match.Encoding)
	}

	out, err := o.Codec.Encode(match.DecodedText, target)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %q from %q to %q: %w",
			ErrConvertFailed, path, match.Encoding, target, err)
	}
	return out, nil
}
