package repository

import (
	"Biteflow/internal/model"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToggleLike(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	short := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, short))

	t.Run("FirstToggleLikes", func(t *testing.T) {
		liked, count, err := actionRepo.ToggleLike(ctx, 1, short.ID)
		assert.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(1), count)

		exists, err := actionRepo.CheckLikeExists(ctx, 1, short.ID)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("SecondToggleUnlikes", func(t *testing.T) {
		liked, count, err := actionRepo.ToggleLike(ctx, 1, short.ID)
		assert.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, int64(0), count)

		exists, err := actionRepo.CheckLikeExists(ctx, 1, short.ID)
		assert.NoError(t, err)
		assert.False(t, exists)

		ledger, err := actionRepo.GetLikeCountByShortID(ctx, short.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), ledger)
	})

	t.Run("CounterNeverNegative", func(t *testing.T) {
		// 计数已经为 0，再次配对翻转后仍回到 0
		_, _, err := actionRepo.ToggleLike(ctx, 2, short.ID)
		assert.NoError(t, err)
		_, count, err := actionRepo.ToggleLike(ctx, 2, short.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestToggleLikeConcurrentDistinctUsers(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	short := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, short))

	const users = 30
	var wg sync.WaitGroup
	for i := 1; i <= users; i++ {
		wg.Add(1)
		go func(uid uint64) {
			defer wg.Done()
			_, _, _ = actionRepo.ToggleLike(ctx, uid, short.ID)
		}(uint64(i))
	}
	wg.Wait()

	ledger, err := actionRepo.GetLikeCountByShortID(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(users), ledger)

	fetched, err := shortRepo.GetShort(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(users), fetched.LikesCount)
}

func TestToggleLikeConcurrentSameUser(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	short := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, short))

	// 偶数次翻转后应回到未点赞，计数与台账一致
	const toggles = 10
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = actionRepo.ToggleLike(ctx, 7, short.ID)
		}()
	}
	wg.Wait()

	exists, err := actionRepo.CheckLikeExists(ctx, 7, short.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	fetched, err := shortRepo.GetShort(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), fetched.LikesCount)
}

func TestGetLikedShortIDs(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	s1 := newPermanentShort(restaurant.ID)
	s2 := newPermanentShort(restaurant.ID)
	s3 := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, s1))
	assert.NoError(t, shortRepo.CreateShort(ctx, s2))
	assert.NoError(t, shortRepo.CreateShort(ctx, s3))

	_, _, _ = actionRepo.ToggleLike(ctx, 1, s1.ID)
	_, _, _ = actionRepo.ToggleLike(ctx, 1, s3.ID)

	ids, err := actionRepo.GetLikedShortIDs(ctx, 1, []uint64{s1.ID, s2.ID, s3.ID})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint64{s1.ID, s3.ID}, ids)

	ids, err = actionRepo.GetLikedShortIDs(ctx, 1, nil)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestComments(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	short := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, short))

	for i := 0; i < 5; i++ {
		err := actionRepo.CreateComment(ctx, &model.ShortComment{
			ShortID: short.ID,
			UserID:  uint64(i + 1),
			Content: "看起来好吃",
		})
		assert.NoError(t, err)
	}

	count, err := actionRepo.GetCommentCountByShortID(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	fetched, err := shortRepo.GetShort(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), fetched.CommentsCount)

	comments, err := actionRepo.GetCommentsByShortID(ctx, short.ID, 3, 0)
	assert.NoError(t, err)
	assert.Len(t, comments, 3)

	rest, err := actionRepo.GetCommentsByShortID(ctx, short.ID, 3, 3)
	assert.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestIncrementViews(t *testing.T) {
	db := setupTestDB(t)
	shortRepo := NewShortRepository(db)
	actionRepo := NewShortActionRepo(db)
	ctx := context.Background()

	restaurant := seedRestaurant(t, db, 100)
	short := newPermanentShort(restaurant.ID)
	assert.NoError(t, shortRepo.CreateShort(ctx, short))

	const views = 20
	var wg sync.WaitGroup
	for i := 0; i < views; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = actionRepo.IncrementViews(ctx, short.ID)
		}()
	}
	wg.Wait()

	fetched, err := shortRepo.GetShort(ctx, short.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(views), fetched.ViewsCount)

	t.Run("DeletedNotFound", func(t *testing.T) {
		assert.NoError(t, shortRepo.SoftDeleteShort(ctx, short.ID))
		err := actionRepo.IncrementViews(ctx, short.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("MissingNotFound", func(t *testing.T) {
		err := actionRepo.IncrementViews(ctx, 99999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
