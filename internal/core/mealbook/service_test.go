package mealbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SavedMeal{}))
	return NewService(db)
}

func TestSaveListRemoveRoundTrip(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.Save(1, SaveInput{
		Title:       "Banana Mash",
		Ingredients: []string{"banana", "breast milk"},
		Steps:       []string{"mash the banana", "stir in milk"},
		Tip:         "serve at room temperature",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	meals, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Banana Mash", meals[0].Title)
	assert.Equal(t, []string{"banana", "breast milk"}, meals[0].Ingredients)
	assert.Equal(t, []string{"mash the banana", "stir in milk"}, meals[0].Steps)

	require.NoError(t, svc.Remove(1, saved.ID))

	meals, err = svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Save(1, SaveInput{Title: "First"})
	require.NoError(t, err)
	// sqlite timestamps have second precision; force distinct ordering
	svc.db.Model(&models.SavedMeal{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Minute))

	_, err = svc.Save(1, SaveInput{Title: "Second"})
	require.NoError(t, err)

	meals, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Second", meals[0].Title)
	assert.Equal(t, "First", meals[1].Title)
}

func TestListScopedToOwner(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(1, SaveInput{Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Save(2, SaveInput{Title: "Theirs"})
	require.NoError(t, err)

	meals, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Mine", meals[0].Title)
}

func TestRemoveEnforcesOwnership(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.Save(1, SaveInput{Title: "Mine"})
	require.NoError(t, err)

	// another user's delete is a not-found, and the row survives
	err = svc.Remove(2, saved.ID)
	assert.ErrorIs(t, err, common.ErrMealNotFound)

	meals, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, meals, 1)
}

func TestRemoveUnknownID(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.Remove(1, "no-such-id"), common.ErrMealNotFound)
}

func TestSaveRequiresTitleOrRawText(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(1, SaveInput{})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// legacy free-text meals have no structured title
	saved, err := svc.Save(1, SaveInput{RawText: "Banana Mash\nMash a banana."})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}
