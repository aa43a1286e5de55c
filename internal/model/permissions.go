package model

// Capability names one resource family a user can be granted access to
type Capability string

const (
	CapabilityClients    Capability = "clients"
	CapabilityDocuments  Capability = "documents"
	CapabilityChantiers  Capability = "chantiers"
	CapabilityCalculsPAC Capability = "calculs_pac"
	CapabilityCatalogues Capability = "catalogues"
	CapabilityChat       Capability = "chat"
	CapabilityParametres Capability = "parametres"
)

// Permissions is the fixed set of capability flags carried by every user.
// Stored as a JSON column; an unknown or absent key always reads as false.
type Permissions struct {
	Clients    bool `json:"clients"`
	Documents  bool `json:"documents"`
	Chantiers  bool `json:"chantiers"`
	CalculsPAC bool `json:"calculs_pac"`
	Catalogues bool `json:"catalogues"`
	Chat       bool `json:"chat"`
	Parametres bool `json:"parametres"`
}

// Has reports whether the named capability is granted
func (p Permissions) Has(c Capability) bool {
	switch c {
	case CapabilityClients:
		return p.Clients
	case CapabilityDocuments:
		return p.Documents
	case CapabilityChantiers:
		return p.Chantiers
	case CapabilityCalculsPAC:
		return p.CalculsPAC
	case CapabilityCatalogues:
		return p.Catalogues
	case CapabilityChat:
		return p.Chat
	case CapabilityParametres:
		return p.Parametres
	}
	return false
}

// DefaultPermissions is the grant given to a newly registered employee
func DefaultPermissions() Permissions {
	return Permissions{
		Clients:    true,
		Documents:  true,
		Chantiers:  true,
		CalculsPAC: true,
		Catalogues: true,
		Chat:       true,
		Parametres: false,
	}
}

// AdminPermissions is the full grant, including user administration
func AdminPermissions() Permissions {
	p := DefaultPermissions()
	p.Parametres = true
	return p
}
