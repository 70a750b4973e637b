package requestid_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"request-uuid/pkg/requestid"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isCanonicalPrefix reports whether s could be the start of a canonical
// version 4 UUID rendering.
func isCanonicalPrefix(s string) bool {
	const template = "xxxxxxxx-xxxx-4xxx-xxxx-xxxxxxxxxxxx"
	if len(s) > len(template) {
		return false
	}
	for i, c := range s {
		switch template[i] {
		case '-', '4':
			if byte(c) != template[i] {
				return false
			}
		default:
			if !strings.ContainsRune("0123456789abcdef", c) {
				return false
			}
		}
	}
	return true
}

func TestLengthGenerator(t *testing.T) {
	t.Parallel()

	t.Run("truncates below canonical length", func(t *testing.T) {
		t.Parallel()
		for length := 1; length < 36; length++ {
			gen, err := requestid.LengthGenerator(length)
			require.NoError(t, err)
			id := gen()
			assert.Len(t, id, length)
			assert.True(t, isCanonicalPrefix(id), "not a canonical prefix: %q", id)
		}
	})

	t.Run("never pads beyond canonical length", func(t *testing.T) {
		t.Parallel()
		for _, length := range []int{36, 37, 64, 1024} {
			gen, err := requestid.LengthGenerator(length)
			require.NoError(t, err)
			id := gen()
			assert.Len(t, id, 36)
			_, err = uuid.Parse(id)
			assert.NoError(t, err)
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		t.Parallel()
		for _, length := range []int{0, -1} {
			gen, err := requestid.LengthGenerator(length)
			assert.Nil(t, gen)
			assert.ErrorIs(t, err, requestid.ErrInvalidLength)
		}
	})
}

func TestFullUUID(t *testing.T) {
	t.Parallel()
	id := requestid.FullUUID()
	require.Len(t, id, 36)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestSimpleUUID(t *testing.T) {
	t.Parallel()
	id := requestid.SimpleUUID()
	require.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
}

func TestSimpleString(t *testing.T) {
	t.Parallel()
	u := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assert.Equal(t, "550e8400e29b41d4a716446655440000", requestid.SimpleString(u))
}

func TestCustomUUIDFormat(t *testing.T) {
	t.Parallel()
	var seen []uuid.UUID
	gen := requestid.CustomUUIDFormat(func(u uuid.UUID) string {
		seen = append(seen, u)
		return "job:" + u.String()
	})

	first, second := gen(), gen()
	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])
	assert.Equal(t, "job:"+seen[0].String(), first)
	assert.Equal(t, "job:"+seen[1].String(), second)
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "default", requestid.FormatDefault.String())
	assert.Equal(t, "full", requestid.FormatFull.String())
	assert.Equal(t, "simple", requestid.FormatSimple.String())
	assert.Equal(t, "custom", requestid.FormatCustom.String())
	assert.Equal(t, "generator", requestid.FormatGenerator.String())
	assert.Equal(t, "Format(42)", requestid.Format(42).String())
}
