package requestid

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	canonicalLength = 36
	simpleLength    = 32
)

// Generator produces a new identifier on every call. Implementations must be
// safe for concurrent use.
type Generator func() string

// Format tags the strategy a Middleware generates identifiers with.
type Format int

const (
	FormatDefault   Format = iota // canonical UUID cut to the configured length
	FormatFull                    // canonical UUID, 36 characters
	FormatSimple                  // hex UUID without hyphens, 32 characters
	FormatCustom                  // caller rendering of a fresh UUID
	FormatGenerator               // arbitrary Generator
)

func (f Format) String() string {
	switch f {
	case FormatDefault:
		return "default"
	case FormatFull:
		return "full"
	case FormatSimple:
		return "simple"
	case FormatCustom:
		return "custom"
	case FormatGenerator:
		return "generator"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// LengthGenerator returns a generator yielding the first length characters of
// a canonical random UUID. Lengths of 36 and above yield the whole UUID; no
// padding is added.
func LengthGenerator(length int) (Generator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	return func() string {
		id := uuid.New().String()
		if length >= len(id) {
			return id
		}
		return id[:length]
	}, nil
}

// FullUUID returns a random UUID in canonical hyphenated form.
func FullUUID() string {
	return uuid.New().String()
}

// SimpleUUID returns a random UUID as 32 hex characters.
func SimpleUUID() string {
	return SimpleString(uuid.New())
}

// SimpleString renders u as 32 lowercase hex characters without hyphens.
func SimpleString(u uuid.UUID) string {
	return hex.EncodeToString(u[:])
}

// CustomUUIDFormat returns a generator that passes a fresh random UUID to
// format and uses its result verbatim.
func CustomUUIDFormat(format func(uuid.UUID) string) Generator {
	return func() string {
		return format(uuid.New())
	}
}
