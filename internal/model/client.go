package model

// Client represents a customer of the company
type Client struct {
	Base
	Nom           string `gorm:"type:varchar(255);not null" json:"nom"`
	Prenom        string `gorm:"type:varchar(255);not null" json:"prenom"`
	Telephone     string `gorm:"type:varchar(50)" json:"telephone"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Adresse       string `gorm:"type:text" json:"adresse"`
	Ville         string `gorm:"type:varchar(255)" json:"ville"`
	CodePostal    string `gorm:"type:varchar(20)" json:"code_postal"`
	TypeChauffage string `gorm:"type:varchar(100)" json:"type_chauffage"`
	Notes         string `gorm:"type:text" json:"notes"`
}

func (Client) TableName() string {
	return "clients"
}

// ClientCreate is the payload accepted when creating a client
type ClientCreate struct {
	Nom           string `json:"nom" binding:"required"`
	Prenom        string `json:"prenom" binding:"required"`
	Telephone     string `json:"telephone"`
	Email         string `json:"email"`
	Adresse       string `json:"adresse"`
	Ville         string `json:"ville"`
	CodePostal    string `json:"code_postal"`
	TypeChauffage string `json:"type_chauffage"`
	Notes         string `json:"notes"`
}

func (r ClientCreate) Model() Client {
	return Client{
		Nom:           r.Nom,
		Prenom:        r.Prenom,
		Telephone:     r.Telephone,
		Email:         r.Email,
		Adresse:       r.Adresse,
		Ville:         r.Ville,
		CodePostal:    r.CodePostal,
		TypeChauffage: r.TypeChauffage,
		Notes:         r.Notes,
	}
}

// ClientUpdate is a sparse update: nil fields are left untouched
type ClientUpdate struct {
	Nom           *string `json:"nom"`
	Prenom        *string `json:"prenom"`
	Telephone     *string `json:"telephone"`
	Email         *string `json:"email"`
	Adresse       *string `json:"adresse"`
	Ville         *string `json:"ville"`
	CodePostal    *string `json:"code_postal"`
	TypeChauffage *string `json:"type_chauffage"`
	Notes         *string `json:"notes"`
}

func (r ClientUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setString(changes, "nom", r.Nom)
	setString(changes, "prenom", r.Prenom)
	setString(changes, "telephone", r.Telephone)
	setString(changes, "email", r.Email)
	setString(changes, "adresse", r.Adresse)
	setString(changes, "ville", r.Ville)
	setString(changes, "code_postal", r.CodePostal)
	setString(changes, "type_chauffage", r.TypeChauffage)
	setString(changes, "notes", r.Notes)
	return changes
}
