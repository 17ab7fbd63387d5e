package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Conceptual-Machines/fretboard-api/internal/database"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestFileSettingsStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := NewFileSettingsStore(path)
	ctx := context.Background()

	list, err := store.Load(ctx, "anonymous")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.Save(ctx, "anonymous", DefaultSettings()))
	require.NoError(t, store.Save(ctx, "alice", []models.FretboardSettings{validSettings("Bass")}))

	list, err = store.Load(ctx, "anonymous")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), list)

	list, err = NewFileSettingsStore(path).Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bass", list[0].Title)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tuning: E4,B3,G3,D3,A2,E2")
}

func TestFileSettingsStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owners: [not, a, map"), 0o600))

	_, err := NewFileSettingsStore(path).Load(context.Background(), "anonymous")
	assert.Error(t, err)
}

func TestFileSettingsStore_WithService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	ctx := context.Background()

	svc, err := NewSettingsService(NewFileSettingsStore(path), LogSink{})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "anonymous", validSettings("Bass"))
	require.NoError(t, err)

	// a fresh service sees what the first one saved
	svc, err = NewSettingsService(NewFileSettingsStore(path))
	require.NoError(t, err)
	list, err := svc.List(ctx, "anonymous")
	require.NoError(t, err)
	assert.Equal(t, []string{"Standard E", "Drop D", "Bass"}, titles(list))
}

func TestEncodeDecodeSettings(t *testing.T) {
	data, err := EncodeSettings(DefaultSettings())
	require.NoError(t, err)
	assert.Contains(t, string(data), "fretboards:")
	assert.Contains(t, string(data), "root_note: D")
	assert.NotContains(t, string(data), "owner")

	decoded, err := DecodeSettings(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), decoded)

	_, err = DecodeSettings([]byte("fretboards: {"))
	assert.Error(t, err)
}

// testGormSettingsStore runs the same checks against any gorm dialect
func testGormSettingsStore(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	store := NewGormSettingsStore(db)
	owner := "gorm-store-test"
	t.Cleanup(func() {
		_ = store.Save(ctx, owner, nil)
	})

	require.NoError(t, store.Save(ctx, owner, DefaultSettings()))
	list, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Standard E", "Drop D"}, titles(list))
	assert.Equal(t, 1, list[1].Position)
	assert.Equal(t, owner, list[1].Owner)

	collapsed := validSettings("Bass")
	collapsed.Expanded = false
	open := validSettings("Guitar")
	require.NoError(t, store.Save(ctx, owner, []models.FretboardSettings{collapsed, open}))

	list, err = store.Load(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []string{"Bass", "Guitar"}, titles(list))
	assert.False(t, list[0].Expanded)
	assert.True(t, list[1].Expanded)
	assert.Equal(t, collapsed.Tuning, list[0].Tuning)
	assert.Equal(t, collapsed.ViewOption, list[0].ViewOption)

	// other owners are untouched by a save
	require.NoError(t, store.Save(ctx, "someone-else", []models.FretboardSettings{open}))
	t.Cleanup(func() {
		_ = store.Save(ctx, "someone-else", nil)
	})
	list, err = store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGormSettingsStore_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	testGormSettingsStore(t, db)
}

func TestGormSettingsStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres store test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	testGormSettingsStore(t, db)
}

func TestDecodeSettings_FretRangeViewOptions(t *testing.T) {
	doc := `fretboards:
  - title: Standard E
    tuning: E4,B3,G3,D3,A2,E2
    root_note: C
    scale: Chromatic Scale
    view_option: 24 frets
    expanded: true
  - title: Short
    tuning: E4,B3,G3,D3,A2,D2
    root_note: D
    scale: Minor Scale
    view_option: 12 frets
    expanded: false
`
	decoded, err := DecodeSettings([]byte(doc))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for _, fb := range decoded {
		assert.NoError(t, ValidateSettings(fb), fb.Title)
	}
	assert.Equal(t, models.ViewTwelveFrets, decoded[1].ViewOption)
	assert.False(t, decoded[1].Expanded)
}
