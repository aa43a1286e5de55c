package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePieces(t *testing.T) {
	pieces := NormalizePieces([]Piece{
		{Nom: "Salon", Surface: "25"},
		{ID: "existing-id", Nom: "Chambre", Type: "chambre", Hauteur: "2.8"},
	})

	assert.NotEmpty(t, pieces[0].ID, "missing room ids are generated")
	assert.Equal(t, "salon", pieces[0].Type)
	assert.Equal(t, "2.5", pieces[0].Hauteur)
	assert.Equal(t, "20", pieces[0].TemperatureSouhaitee)
	assert.Equal(t, "-7", pieces[0].TemperatureExterieure)
	assert.Equal(t, "double", pieces[0].TypeVitrage)

	assert.Equal(t, "existing-id", pieces[1].ID, "supplied ids are preserved")
	assert.Equal(t, "chambre", pieces[1].Type)
	assert.Equal(t, "2.8", pieces[1].Hauteur, "supplied values beat defaults")
	assert.Equal(t, 1, pieces[0].NombreFenetres)
}

func TestNormalizePiecesKeepsWindowCount(t *testing.T) {
	pieces := NormalizePieces([]Piece{{Nom: "Salon", NombreFenetres: 3}})
	assert.Equal(t, 3, pieces[0].NombreFenetres)
}

func TestNormalizePiecesNeverNil(t *testing.T) {
	assert.NotNil(t, []Piece(NormalizePieces(nil)))
	assert.Empty(t, NormalizePieces(nil))
	assert.NotNil(t, []Piece(NormalizePieces([]Piece{})))
}

func TestCalculPACEmptyRoomsRenderAsEmptyList(t *testing.T) {
	m := CalculPACCreate{Nom: "Vide", ClientNom: "Martin"}.Model()

	payload, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"pieces":[]`, "an absent room list serves as [], never null")
}

func TestCalculPACCreateDefaults(t *testing.T) {
	m := CalculPACCreate{Nom: "Maison Dubois", ClientNom: "Dubois"}.Model()

	assert.Equal(t, PACAirEau, m.TypePAC)
	assert.Equal(t, "H2", m.ZoneClimatique)
	assert.Equal(t, "moyenne", m.Isolation)
	assert.Equal(t, "D", m.DPE)
	assert.Equal(t, "-7", m.TemperatureExterieureBase)
	assert.Equal(t, "20", m.TemperatureInterieureSouhaitee)
	assert.Equal(t, "200", m.VolumeBallonECS)
	assert.False(t, m.ProductionECS)
	assert.Empty(t, m.Pieces)
}

func TestCalculPACCreateKeepsSuppliedValues(t *testing.T) {
	m := CalculPACCreate{
		Nom:            "Bureaux",
		ClientNom:      "Martin",
		TypePAC:        PACAirAir,
		ZoneClimatique: "H1",
		Pieces:         []Piece{{Nom: "Open space"}},
	}.Model()

	assert.Equal(t, PACAirAir, m.TypePAC)
	assert.Equal(t, "H1", m.ZoneClimatique)
	assert.Len(t, m.Pieces, 1)
	assert.NotEmpty(t, m.Pieces[0].ID)
}

func TestCalculPACUpdateChanges(t *testing.T) {
	nom := "Renommé"
	changes := CalculPACUpdate{Nom: &nom}.Changes()

	assert.Equal(t, map[string]any{"nom": "Renommé"}, changes)

	pieces := []Piece{{Nom: "Cuisine"}}
	changes = CalculPACUpdate{Pieces: &pieces}.Changes()
	assert.Contains(t, changes, "pieces")
	assert.NotContains(t, changes, "nom")
}
