package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsHas(t *testing.T) {
	p := Permissions{Clients: true, Chat: true}

	assert.True(t, p.Has(CapabilityClients))
	assert.True(t, p.Has(CapabilityChat))
	assert.False(t, p.Has(CapabilityParametres))
	assert.False(t, p.Has(Capability("unknown")), "unknown capabilities are never granted")
}

func TestDefaultPermissions(t *testing.T) {
	p := DefaultPermissions()

	assert.True(t, p.Clients)
	assert.True(t, p.Documents)
	assert.True(t, p.Chantiers)
	assert.True(t, p.CalculsPAC)
	assert.True(t, p.Catalogues)
	assert.True(t, p.Chat)
	assert.False(t, p.Parametres)
}

func TestAdminPermissions(t *testing.T) {
	assert.True(t, AdminPermissions().Parametres)
}

func TestClientUpdateChangesSparse(t *testing.T) {
	telephone := "0600000000"
	changes := ClientUpdate{Telephone: &telephone}.Changes()

	assert.Equal(t, map[string]any{"telephone": "0600000000"}, changes)
	assert.Empty(t, ClientUpdate{}.Changes())
}

func TestChantierCreateDefaultStatut(t *testing.T) {
	m := ChantierCreate{Nom: "Salle de bain", ClientNom: "Dubois"}.Model()
	assert.Equal(t, ChantierEnAttente, m.Statut)

	m = ChantierCreate{Nom: "Salle de bain", ClientNom: "Dubois", Statut: ChantierEnCours}.Model()
	assert.Equal(t, ChantierEnCours, m.Statut)
}

func TestFicheSDBCreateDefaults(t *testing.T) {
	m := FicheSDBCreate{Nom: "Fiche", ClientNom: "Dubois"}.Model()
	assert.Equal(t, "complete", m.TypeSDB)
	assert.Equal(t, 1, m.NbPersonnes)

	m = FicheSDBCreate{Nom: "Fiche", ClientNom: "Dubois", TypeSDB: "douche", NbPersonnes: 4}.Model()
	assert.Equal(t, "douche", m.TypeSDB)
	assert.Equal(t, 4, m.NbPersonnes)
}
