package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatistiquesEmpty(t *testing.T) {
	svc := NewStatisticsService(newTestDB(t))

	stats, err := svc.GetStatistiques(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.TotalChantiers)
	assert.Empty(t, stats.ChantiersParStatut)
	assert.Equal(t, "0", stats.BudgetEstimeTotal)
	assert.Equal(t, "0", stats.BudgetFinalTotal)
}

func TestGetStatistiques(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Client{Nom: "Dubois", Prenom: "Jean"}).Error)
	require.NoError(t, db.Create(&model.Client{Nom: "Martin", Prenom: "Paul"}).Error)
	require.NoError(t, db.Create(&model.Chantier{Nom: "Salle de bain", ClientNom: "Dubois", Statut: model.ChantierEnCours, BudgetEstime: "1500.50", BudgetFinal: "1600"}).Error)
	require.NoError(t, db.Create(&model.Chantier{Nom: "Chaudière", ClientNom: "Martin", Statut: model.ChantierEnCours, BudgetEstime: "2000"}).Error)
	require.NoError(t, db.Create(&model.Chantier{Nom: "PAC", ClientNom: "Martin", Statut: model.ChantierTermine, BudgetEstime: "à définir"}).Error)
	require.NoError(t, db.Create(&model.FicheSDB{Nom: "Fiche 1", ClientNom: "Dubois"}).Error)

	stats, err := svc.GetStatistiques(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalClients)
	assert.EqualValues(t, 3, stats.TotalChantiers)
	assert.EqualValues(t, 1, stats.TotalFiches)
	assert.EqualValues(t, 0, stats.TotalDocuments)

	assert.EqualValues(t, 2, stats.ChantiersParStatut[model.ChantierEnCours])
	assert.EqualValues(t, 1, stats.ChantiersParStatut[model.ChantierTermine])

	// Unparsable budgets are skipped, not counted as zero rows
	assert.Equal(t, "3500.5", stats.BudgetEstimeTotal)
	assert.Equal(t, "1600", stats.BudgetFinalTotal)
}
