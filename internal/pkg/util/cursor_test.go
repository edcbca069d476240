package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 30, 45, 123456000, time.UTC)

	encoded := EncodeFeedCursor(createdAt, 42)
	assert.NotEmpty(t, encoded)

	decoded, err := DecodeFeedCursor(encoded)
	assert.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Equal(t, uint64(42), decoded.ID)
	assert.Equal(t, createdAt.UnixMicro(), decoded.CreatedAt)
	assert.True(t, decoded.CreatedAtTime().Equal(createdAt))
}

func TestDecodeFeedCursorEmpty(t *testing.T) {
	decoded, err := DecodeFeedCursor("")
	assert.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeFeedCursorInvalid(t *testing.T) {
	_, err := DecodeFeedCursor("not-base64!!!")
	assert.Error(t, err)

	// 合法 base64 但不是 JSON
	_, err = DecodeFeedCursor("aGVsbG8gd29ybGQ=")
	assert.Error(t, err)
}
