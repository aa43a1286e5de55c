package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"backend/internal/database"
	"backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestResourceRepositoryCreateAndGet(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	client := model.Client{Nom: "Dubois", Prenom: "Jean", Telephone: "0612345678"}
	require.NoError(t, repo.Create(ctx, &client))

	assert.NotEmpty(t, client.ID)
	assert.False(t, client.CreatedAt.IsZero())
	assert.WithinDuration(t, client.CreatedAt, client.UpdatedAt, time.Second)

	got, err := repo.GetByID(ctx, client.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Dubois", got.Nom)
	assert.Equal(t, "Jean", got.Prenom)
	assert.Equal(t, client.ID, got.ID)
}

func TestResourceRepositoryGetUnknown(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "3e25fa24-8c12-4a96-9a59-1a71e5e9f0f1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResourceRepositoryGetMalformedID(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	// A non-UUID id never reaches the database and still reads as not found
	_, err := repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResourceRepositoryPartialUpdate(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	client := model.Client{Nom: "Dubois", Prenom: "Jean", Ville: "Lyon"}
	require.NoError(t, repo.Create(ctx, &client))
	createdAt := client.CreatedAt

	time.Sleep(10 * time.Millisecond)
	changes := map[string]any{"telephone": "0600000000"}
	updated, err := repo.Update(ctx, client.ID.String(), changes)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"telephone": "0600000000"}, changes, "the caller's map is not modified")
	assert.Equal(t, "0600000000", updated.Telephone)
	assert.Equal(t, "Dubois", updated.Nom, "untouched fields keep their values")
	assert.Equal(t, "Lyon", updated.Ville)
	assert.Equal(t, createdAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestResourceRepositoryUpdateUnknown(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	_, err := repo.Update(ctx, "3e25fa24-8c12-4a96-9a59-1a71e5e9f0f1", map[string]any{"nom": "X"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResourceRepositoryDelete(t *testing.T) {
	repo := NewResourceRepository[model.Client](newTestDB(t))
	ctx := context.Background()

	client := model.Client{Nom: "Dubois", Prenom: "Jean"}
	require.NoError(t, repo.Create(ctx, &client))

	require.NoError(t, repo.Delete(ctx, client.ID.String()))

	_, err := repo.GetByID(ctx, client.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting the same row twice reports not found
	assert.ErrorIs(t, repo.Delete(ctx, client.ID.String()), gorm.ErrRecordNotFound)
}

func TestResourceRepositoryListOrder(t *testing.T) {
	repo := NewResourceRepository[model.Chantier](newTestDB(t))
	ctx := context.Background()

	for _, nom := range []string{"first", "second", "third"} {
		chantier := model.Chantier{Nom: nom, Adresse: "1 rue des Lilas"}
		require.NoError(t, repo.Create(ctx, &chantier))
		time.Sleep(5 * time.Millisecond)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Nom, "newest first")
	assert.Equal(t, "first", items[2].Nom)
}

func TestResourceRepositoryCalculPACEmptyRooms(t *testing.T) {
	repo := NewResourceRepository[model.CalculPAC](newTestDB(t))
	ctx := context.Background()

	calcul := model.CalculPACCreate{Nom: "Vide", ClientNom: "Martin"}.Model()
	require.NoError(t, repo.Create(ctx, &calcul))

	got, err := repo.GetByID(ctx, calcul.ID.String())
	require.NoError(t, err)
	require.NotNil(t, []model.Piece(got.Pieces))

	payload, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"pieces":[]`, "a room-less calculation serves [], never null")
}

func TestResourceRepositoryCalculPACNullRoomsColumn(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepository[model.CalculPAC](db)
	ctx := context.Background()

	calcul := model.CalculPACCreate{Nom: "Ancien", ClientNom: "Martin"}.Model()
	require.NoError(t, repo.Create(ctx, &calcul))

	// Rows written before the room list was always materialized carry NULL
	require.NoError(t, db.Model(&model.CalculPAC{}).Where("id = ?", calcul.ID).UpdateColumn("pieces", nil).Error)

	got, err := repo.GetByID(ctx, calcul.ID.String())
	require.NoError(t, err)
	assert.NotNil(t, []model.Piece(got.Pieces), "NULL columns read back as an empty list")
}

func TestResourceRepositoryListEmpty(t *testing.T) {
	repo := NewResourceRepository[model.Document](newTestDB(t))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items, "empty collection lists as [], not null")
	assert.Empty(t, items)
}
