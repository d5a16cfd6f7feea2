package preferences

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadUnconfigured(t *testing.T) {
	prefs, err := NewStore(storage.NewMemory()).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	minScore := 55

	want := &types.Preferences{
		RoleKeywords:       []string{"engineer", "developer"},
		PreferredLocations: []string{"Remote", "Pune"},
		PreferredModes:     []types.WorkMode{types.ModeRemote},
		ExperienceLevel:    types.ExperienceOneToThree,
		Skills:             []string{"Go"},
		MinMatchScore:      &minScore,
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 55, got.Threshold())
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())

	require.NoError(t, store.Save(ctx, &types.Preferences{RoleKeywords: []string{"a"}, Skills: []string{"Go"}}))
	require.NoError(t, store.Save(ctx, &types.Preferences{RoleKeywords: []string{"b"}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.RoleKeywords)
	assert.Empty(t, got.Skills)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	tooHigh := 120

	err := store.Save(ctx, &types.Preferences{MinMatchScore: &tooHigh})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	assert.Error(t, store.Save(ctx, nil))

	prefs, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestStore_CorruptRecordIsUnconfigured(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, []byte(`{"roleKeywords": "oops`)))

	prefs, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestStore_RecordFailingValidationIsUnconfigured(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, []byte(`{"minMatchScore":500,"preferredModes":["Bogus"]}`)))
	store := NewStore(kv)

	prefs, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs)

	require.NoError(t, store.Save(ctx, &types.Preferences{RoleKeywords: []string{"go"}}))
	prefs, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, []string{"go"}, prefs.RoleKeywords)
	assert.Equal(t, types.DefaultMinMatchScore, prefs.Threshold())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	require.NoError(t, store.Save(ctx, &types.Preferences{RoleKeywords: []string{"go"}}))

	require.NoError(t, store.Clear(ctx))

	prefs, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs)
}
