package campaign

const (
	// MaxBatchLen is the longest accepted batch identifier, in bytes.
	MaxBatchLen = 20
	// MaxNameLen is the longest accepted vaccine name, in bytes.
	MaxNameLen = 50
)

// IsValidBatch reports whether batch is at most MaxBatchLen characters of
// uppercase hexadecimal digits (0-9, A-F).
func IsValidBatch(batch string) bool {
	if len(batch) > MaxBatchLen {
		return false
	}
	for i := 0; i < len(batch); i++ {
		c := batch[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// IsValidName reports whether name is at most MaxNameLen bytes and contains
// no whitespace.
func IsValidName(name string) bool {
	if len(name) > MaxNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return false
		}
	}
	return true
}
