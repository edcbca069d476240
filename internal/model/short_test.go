package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("PermanentAlwaysActive", func(t *testing.T) {
		short := &Short{IsPermanent: true, CreatedAt: base}

		assert.Equal(t, ShortStatusActive, short.Status(base))
		assert.Equal(t, ShortStatusActive, short.Status(base.Add(365*24*time.Hour)))

		_, ok := short.ExpiresAt()
		assert.False(t, ok)
	})

	t.Run("EphemeralWithoutPublishAt", func(t *testing.T) {
		short := &Short{DurationHours: 6, CreatedAt: base}

		assert.Equal(t, ShortStatusActive, short.Status(base))
		assert.Equal(t, ShortStatusActive, short.Status(base.Add(5*time.Hour+59*time.Minute)))
		assert.Equal(t, ShortStatusExpired, short.Status(base.Add(6*time.Hour)))
		assert.Equal(t, ShortStatusExpired, short.Status(base.Add(6*time.Hour+time.Second)))
	})

	t.Run("ScheduledWindow", func(t *testing.T) {
		publishAt := base.Add(time.Hour)
		short := &Short{DurationHours: 24, CreatedAt: base, PublishAt: &publishAt}

		assert.Equal(t, ShortStatusScheduled, short.Status(base))
		assert.Equal(t, ShortStatusScheduled, short.Status(base.Add(59*time.Minute)))
		assert.Equal(t, ShortStatusActive, short.Status(publishAt))
		assert.Equal(t, ShortStatusActive, short.Status(publishAt.Add(23*time.Hour)))
		assert.Equal(t, ShortStatusExpired, short.Status(publishAt.Add(24*time.Hour)))

		expiresAt, ok := short.ExpiresAt()
		assert.True(t, ok)
		assert.Equal(t, publishAt.Add(24*time.Hour), expiresAt)
	})

	t.Run("PauseReadsExpiredButReversible", func(t *testing.T) {
		short := &Short{DurationHours: 12, CreatedAt: base, IsPaused: true}

		assert.Equal(t, ShortStatusExpired, short.Status(base.Add(time.Hour)))

		short.IsPaused = false
		assert.Equal(t, ShortStatusActive, short.Status(base.Add(time.Hour)))
		assert.Equal(t, ShortStatusExpired, short.Status(base.Add(13*time.Hour)))
	})
}

func TestShortFeedVisible(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ActiveVisible", func(t *testing.T) {
		short := &Short{DurationHours: 24, CreatedAt: base}
		assert.True(t, short.FeedVisible(base.Add(time.Hour)))
	})

	t.Run("ExpiredHidden", func(t *testing.T) {
		short := &Short{DurationHours: 6, CreatedAt: base}
		assert.False(t, short.FeedVisible(base.Add(7*time.Hour)))
	})

	t.Run("ScheduledHidden", func(t *testing.T) {
		publishAt := base.Add(2 * time.Hour)
		short := &Short{DurationHours: 24, CreatedAt: base, PublishAt: &publishAt}
		assert.False(t, short.FeedVisible(base))
	})

	t.Run("PausedHidden", func(t *testing.T) {
		short := &Short{IsPermanent: true, CreatedAt: base, IsPaused: true}
		assert.False(t, short.FeedVisible(base))
	})

	t.Run("DeletedHidden", func(t *testing.T) {
		deletedAt := base.Add(time.Minute)
		short := &Short{IsPermanent: true, CreatedAt: base, DeletedAt: &deletedAt}
		assert.False(t, short.FeedVisible(base.Add(time.Hour)))
	})
}

func TestEffectivePublishAt(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	short := &Short{CreatedAt: base}
	assert.Equal(t, base, short.EffectivePublishAt())

	publishAt := base.Add(3 * time.Hour)
	short.PublishAt = &publishAt
	assert.Equal(t, publishAt, short.EffectivePublishAt())
}
