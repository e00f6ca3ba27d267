package snapshot

import "fmt"

// FormatError reports a value that could not be encoded or decoded. Key is the
// persisted key (or document section) involved, empty for whole-document failures.
type FormatError struct {
	Op  string
	Key string
	Err error
}

func (e *FormatError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("snapshot %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("snapshot %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func decodeError(key string, err error) error {
	return &FormatError{Op: "decode", Key: key, Err: err}
}

func encodeError(key string, err error) error {
	return &FormatError{Op: "encode", Key: key, Err: err}
}
