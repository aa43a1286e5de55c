package model

// Document types
const (
	DocumentFacture        = "facture"
	DocumentDevis          = "devis"
	DocumentContrat        = "contrat"
	DocumentFicheTechnique = "fiche_technique"
	DocumentRapport        = "rapport"
	DocumentAutre          = "autre"
)

// Document represents a stored business document's metadata
type Document struct {
	Base
	Nom         string `gorm:"type:varchar(255);not null" json:"nom"`
	Type        string `gorm:"type:varchar(50);default:autre" json:"type"`
	ClientNom   string `gorm:"type:varchar(255)" json:"client_nom"`
	ChantierNom string `gorm:"type:varchar(255)" json:"chantier_nom"`
	Description string `gorm:"type:text" json:"description"`
	Tags        string `gorm:"type:text" json:"tags"`
	FilePath    string `gorm:"type:text" json:"file_path"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `gorm:"type:varchar(100)" json:"mime_type"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentCreate is the payload accepted when creating a document
type DocumentCreate struct {
	Nom         string `json:"nom" binding:"required"`
	Type        string `json:"type"`
	ClientNom   string `json:"client_nom"`
	ChantierNom string `json:"chantier_nom"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

func (r DocumentCreate) Model() Document {
	docType := r.Type
	if docType == "" {
		docType = DocumentAutre
	}
	return Document{
		Nom:         r.Nom,
		Type:        docType,
		ClientNom:   r.ClientNom,
		ChantierNom: r.ChantierNom,
		Description: r.Description,
		Tags:        r.Tags,
	}
}

// DocumentUpdate is a sparse update: nil fields are left untouched
type DocumentUpdate struct {
	Nom         *string `json:"nom"`
	Type        *string `json:"type"`
	ClientNom   *string `json:"client_nom"`
	ChantierNom *string `json:"chantier_nom"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	FilePath    *string `json:"file_path"`
	FileSize    *int64  `json:"file_size"`
	MimeType    *string `json:"mime_type"`
}

func (r DocumentUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setString(changes, "nom", r.Nom)
	setString(changes, "type", r.Type)
	setString(changes, "client_nom", r.ClientNom)
	setString(changes, "chantier_nom", r.ChantierNom)
	setString(changes, "description", r.Description)
	setString(changes, "tags", r.Tags)
	setString(changes, "file_path", r.FilePath)
	setInt64(changes, "file_size", r.FileSize)
	setString(changes, "mime_type", r.MimeType)
	return changes
}
