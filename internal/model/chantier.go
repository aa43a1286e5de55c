package model

// Chantier statuses
const (
	ChantierEnAttente = "en_attente"
	ChantierEnCours   = "en_cours"
	ChantierTermine   = "termine"
	ChantierAnnule    = "annule"
)

// Chantier represents a job site. client_nom and client_telephone are
// denormalized copies, not references: renaming a client does not cascade.
type Chantier struct {
	Base
	Nom             string `gorm:"type:varchar(255);not null" json:"nom"`
	Adresse         string `gorm:"type:text" json:"adresse"`
	Ville           string `gorm:"type:varchar(255)" json:"ville"`
	CodePostal      string `gorm:"type:varchar(20)" json:"code_postal"`
	ClientNom       string `gorm:"type:varchar(255);not null" json:"client_nom"`
	ClientTelephone string `gorm:"type:varchar(50)" json:"client_telephone"`
	TypeTravaux     string `gorm:"type:varchar(100)" json:"type_travaux"`
	Statut          string `gorm:"type:varchar(50);default:en_attente" json:"statut"`
	DateDebut       string `gorm:"type:varchar(50)" json:"date_debut"`
	DateFinPrevue   string `gorm:"type:varchar(50)" json:"date_fin_prevue"`
	DateFinReelle   string `gorm:"type:varchar(50)" json:"date_fin_reelle"`
	BudgetEstime    string `gorm:"type:varchar(50)" json:"budget_estime"`
	BudgetFinal     string `gorm:"type:varchar(50)" json:"budget_final"`
	Description     string `gorm:"type:text" json:"description"`
	Notes           string `gorm:"type:text" json:"notes"`
}

func (Chantier) TableName() string {
	return "chantiers"
}

// ChantierCreate is the payload accepted when creating a chantier
type ChantierCreate struct {
	Nom             string `json:"nom" binding:"required"`
	Adresse         string `json:"adresse"`
	Ville           string `json:"ville"`
	CodePostal      string `json:"code_postal"`
	ClientNom       string `json:"client_nom" binding:"required"`
	ClientTelephone string `json:"client_telephone"`
	TypeTravaux     string `json:"type_travaux"`
	Statut          string `json:"statut"`
	DateDebut       string `json:"date_debut"`
	DateFinPrevue   string `json:"date_fin_prevue"`
	BudgetEstime    string `json:"budget_estime"`
	Description     string `json:"description"`
}

func (r ChantierCreate) Model() Chantier {
	statut := r.Statut
	if statut == "" {
		statut = ChantierEnAttente
	}
	return Chantier{
		Nom:             r.Nom,
		Adresse:         r.Adresse,
		Ville:           r.Ville,
		CodePostal:      r.CodePostal,
		ClientNom:       r.ClientNom,
		ClientTelephone: r.ClientTelephone,
		TypeTravaux:     r.TypeTravaux,
		Statut:          statut,
		DateDebut:       r.DateDebut,
		DateFinPrevue:   r.DateFinPrevue,
		BudgetEstime:    r.BudgetEstime,
		Description:     r.Description,
	}
}

// ChantierUpdate is a sparse update: nil fields are left untouched
type ChantierUpdate struct {
	Nom             *string `json:"nom"`
	Adresse         *string `json:"adresse"`
	Ville           *string `json:"ville"`
	CodePostal      *string `json:"code_postal"`
	ClientNom       *string `json:"client_nom"`
	ClientTelephone *string `json:"client_telephone"`
	TypeTravaux     *string `json:"type_travaux"`
	Statut          *string `json:"statut"`
	DateDebut       *string `json:"date_debut"`
	DateFinPrevue   *string `json:"date_fin_prevue"`
	DateFinReelle   *string `json:"date_fin_reelle"`
	BudgetEstime    *string `json:"budget_estime"`
	BudgetFinal     *string `json:"budget_final"`
	Description     *string `json:"description"`
	Notes           *string `json:"notes"`
}

func (r ChantierUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setString(changes, "nom", r.Nom)
	setString(changes, "adresse", r.Adresse)
	setString(changes, "ville", r.Ville)
	setString(changes, "code_postal", r.CodePostal)
	setString(changes, "client_nom", r.ClientNom)
	setString(changes, "client_telephone", r.ClientTelephone)
	setString(changes, "type_travaux", r.TypeTravaux)
	setString(changes, "statut", r.Statut)
	setString(changes, "date_debut", r.DateDebut)
	setString(changes, "date_fin_prevue", r.DateFinPrevue)
	setString(changes, "date_fin_reelle", r.DateFinReelle)
	setString(changes, "budget_estime", r.BudgetEstime)
	setString(changes, "budget_final", r.BudgetFinal)
	setString(changes, "description", r.Description)
	setString(changes, "notes", r.Notes)
	return changes
}
