package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Heat pump families
const (
	PACAirEau     = "air_eau"
	PACAirAir     = "air_air"
	PACGeothermie = "geothermie"
)

// Piece is one room of a heat-pump sizing calculation. Rooms are embedded in
// their parent calculation and replaced wholesale when the list is updated;
// they have no lifecycle of their own. All figures are supplied by the client
// application, nothing is derived server-side.
type Piece struct {
	ID   string `json:"id"`
	Nom  string `json:"nom"`
	Type string `json:"type"`

	// Dimensions
	Longueur string `json:"longueur"`
	Largeur  string `json:"largeur"`
	Hauteur  string `json:"hauteur"`
	Surface  string `json:"surface"`
	Volume   string `json:"volume"`

	// Temperatures
	TemperatureSouhaitee  string `json:"temperature_souhaitee"`
	TemperatureExterieure string `json:"temperature_exterieure"`
	DeltaT                string `json:"delta_t"`

	// Sizing inputs
	CoefficientG          string `json:"coefficient_g"`
	RatioNormeEnergetique string `json:"ratio_norme_energetique"`
	PuissanceCalculee     string `json:"puissance_calculee"`

	// Thermal envelope
	Orientation      string `json:"orientation"`
	IsolationMur     string `json:"isolation_mur"`
	IsolationSol     string `json:"isolation_sol"`
	IsolationPlafond string `json:"isolation_plafond"`

	// Openings
	NombreFenetres  int    `json:"nombre_fenetres"`
	SurfaceFenetres string `json:"surface_fenetres"`
	TypeVitrage     string `json:"type_vitrage"`
	SurfaceVitree   string `json:"surface_vitree"`

	// Existing radiators (air/eau)
	RadiateursExistants   string `json:"radiateurs_existants"`
	TypeMateriauRadiateur string `json:"type_materiau_radiateur"`
	DimensionsRadiateur   string `json:"dimensions_radiateur"`
	NombreRadiateurs      int    `json:"nombre_radiateurs"`

	// Indoor units (air/air)
	TypeUniteInterieure string `json:"type_unite_interieure"`
	PuissanceUnite      string `json:"puissance_unite"`
	TemperatureDepart   string `json:"temperature_depart"`

	Commentaires        string `json:"commentaires"`
	BesoinChauffage     string `json:"besoin_chauffage"`
	BesoinClimatisation string `json:"besoin_climatisation"`
}

// normalize assigns a fresh identifier when absent and fills the documented
// defaults for empty string fields
func (p *Piece) normalize() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	defaultString(&p.Type, "salon")
	defaultString(&p.Hauteur, "2.5")
	defaultString(&p.TemperatureSouhaitee, "20")
	defaultString(&p.TemperatureExterieure, "-7")
	defaultString(&p.CoefficientG, "1.0")
	defaultString(&p.RatioNormeEnergetique, "1.0")
	defaultString(&p.Orientation, "sud")
	defaultString(&p.IsolationMur, "bonne")
	defaultString(&p.IsolationSol, "bonne")
	defaultString(&p.IsolationPlafond, "bonne")
	defaultString(&p.TypeVitrage, "double")
	defaultString(&p.TypeMateriauRadiateur, "fonte")
	defaultString(&p.TypeUniteInterieure, "murale")
	defaultString(&p.TemperatureDepart, "35")
	if p.NombreFenetres == 0 {
		p.NombreFenetres = 1
	}
}

func defaultString(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// NormalizePieces prepares a client-supplied room list for storage. The
// result is never nil: an absent or empty list stores and serves as [].
func NormalizePieces(pieces []Piece) datatypes.JSONSlice[Piece] {
	normalized := make([]Piece, 0, len(pieces))
	for i := range pieces {
		pieces[i].normalize()
		normalized = append(normalized, pieces[i])
	}
	return datatypes.NewJSONSlice(normalized)
}

// CalculPAC is a heat-pump sizing calculation with its embedded rooms
type CalculPAC struct {
	Base
	Nom       string `gorm:"type:varchar(255);not null" json:"nom"`
	ClientNom string `gorm:"type:varchar(255);not null" json:"client_nom"`
	Adresse   string `gorm:"type:text" json:"adresse"`
	Batiment  string `gorm:"type:varchar(255)" json:"batiment"`

	TypePAC string `gorm:"column:type_pac;type:varchar(50);default:air_eau" json:"type_pac"`

	// Building characteristics
	SurfaceTotale     string `gorm:"type:varchar(50)" json:"surface_totale"`
	Altitude          string `gorm:"type:varchar(50)" json:"altitude"`
	ZoneClimatique    string `gorm:"type:varchar(10)" json:"zone_climatique"`
	Isolation         string `gorm:"type:varchar(50)" json:"isolation"`
	AnneeConstruction string `gorm:"type:varchar(20)" json:"annee_construction"`
	DPE               string `gorm:"column:dpe;type:varchar(5)" json:"dpe"`
	DocumentJoint     string `gorm:"type:text" json:"document_joint"`

	// Base temperatures
	TemperatureExterieureBase      string `gorm:"type:varchar(20)" json:"temperature_exterieure_base"`
	TemperatureInterieureSouhaitee string `gorm:"type:varchar(20)" json:"temperature_interieure_souhaitee"`

	// Emitters (air/eau)
	TypeEmetteur string `gorm:"type:varchar(50)" json:"type_emetteur"`

	// Domestic hot water
	ProductionECS   bool   `gorm:"column:production_ecs" json:"production_ecs"`
	VolumeBallonECS string `gorm:"column:volume_ballon_ecs;type:varchar(20)" json:"volume_ballon_ecs"`
	PuissanceECS    string `gorm:"column:puissance_ecs;type:varchar(20)" json:"puissance_ecs"`

	// Air/air specifics
	TypeInstallation string `gorm:"type:varchar(50)" json:"type_installation"`
	SCOPEstime       string `gorm:"column:scop_estime;type:varchar(20)" json:"scop_estime"`
	SEEREstime       string `gorm:"column:seer_estime;type:varchar(20)" json:"seer_estime"`

	// Caller-supplied results
	PuissanceCalculee       string `gorm:"type:varchar(20)" json:"puissance_calculee"`
	PuissanceTotaleCalculee string `gorm:"type:varchar(20)" json:"puissance_totale_calculee"`
	COPEstime               string `gorm:"column:cop_estime;type:varchar(20)" json:"cop_estime"`
	ConsommationEstimee     string `gorm:"type:varchar(50)" json:"consommation_estimee"`

	Pieces datatypes.JSONSlice[Piece] `json:"pieces"`

	BudgetEstime string `gorm:"type:varchar(50)" json:"budget_estime"`
	Notes        string `gorm:"type:text" json:"notes"`

	// Legacy field kept for older stored calculations
	SurfaceAChauffer string `gorm:"column:surface_a_chauffer;type:varchar(50)" json:"surface_a_chauffer"`
}

func (CalculPAC) TableName() string {
	return "calculs_pac"
}

// AfterFind materializes the room list on rows stored with a NULL column, so
// reads always serve [] rather than null
func (c *CalculPAC) AfterFind(tx *gorm.DB) error {
	if c.Pieces == nil {
		c.Pieces = datatypes.NewJSONSlice([]Piece{})
	}
	return nil
}

// CalculPACCreate is the payload accepted when creating a calculation
type CalculPACCreate struct {
	Nom                            string  `json:"nom" binding:"required"`
	ClientNom                      string  `json:"client_nom" binding:"required"`
	Adresse                        string  `json:"adresse"`
	TypePAC                        string  `json:"type_pac"`
	SurfaceTotale                  string  `json:"surface_totale"`
	Isolation                      string  `json:"isolation"`
	ZoneClimatique                 string  `json:"zone_climatique"`
	BudgetEstime                   string  `json:"budget_estime"`
	Pieces                         []Piece `json:"pieces"`
	Notes                          string  `json:"notes"`
	TemperatureExterieureBase      string  `json:"temperature_exterieure_base"`
	TemperatureInterieureSouhaitee string  `json:"temperature_interieure_souhaitee"`
	Altitude                       string  `json:"altitude"`
	TypeEmetteur                   string  `json:"type_emetteur"`
	ProductionECS                  bool    `json:"production_ecs"`
	VolumeBallonECS                string  `json:"volume_ballon_ecs"`
	PuissanceCalculee              string  `json:"puissance_calculee"`
	COPEstime                      string  `json:"cop_estime"`
	TypeInstallation               string  `json:"type_installation"`
	PuissanceTotaleCalculee        string  `json:"puissance_totale_calculee"`
	SCOPEstime                     string  `json:"scop_estime"`
	SEEREstime                     string  `json:"seer_estime"`
}

func (r CalculPACCreate) Model() CalculPAC {
	m := CalculPAC{
		Nom:                            r.Nom,
		ClientNom:                      r.ClientNom,
		Adresse:                        r.Adresse,
		TypePAC:                        r.TypePAC,
		SurfaceTotale:                  r.SurfaceTotale,
		Isolation:                      r.Isolation,
		ZoneClimatique:                 r.ZoneClimatique,
		BudgetEstime:                   r.BudgetEstime,
		Pieces:                         NormalizePieces(r.Pieces),
		Notes:                          r.Notes,
		TemperatureExterieureBase:      r.TemperatureExterieureBase,
		TemperatureInterieureSouhaitee: r.TemperatureInterieureSouhaitee,
		Altitude:                       r.Altitude,
		TypeEmetteur:                   r.TypeEmetteur,
		ProductionECS:                  r.ProductionECS,
		VolumeBallonECS:                r.VolumeBallonECS,
		PuissanceCalculee:              r.PuissanceCalculee,
		COPEstime:                      r.COPEstime,
		TypeInstallation:               r.TypeInstallation,
		PuissanceTotaleCalculee:        r.PuissanceTotaleCalculee,
		SCOPEstime:                     r.SCOPEstime,
		SEEREstime:                     r.SEEREstime,
	}
	defaultString(&m.TypePAC, PACAirEau)
	defaultString(&m.Altitude, "0")
	defaultString(&m.ZoneClimatique, "H2")
	defaultString(&m.Isolation, "moyenne")
	defaultString(&m.AnneeConstruction, "2000")
	defaultString(&m.DPE, "D")
	defaultString(&m.TemperatureExterieureBase, "-7")
	defaultString(&m.TemperatureInterieureSouhaitee, "20")
	defaultString(&m.TypeEmetteur, "radiateurs_bt")
	defaultString(&m.VolumeBallonECS, "200")
	defaultString(&m.TypeInstallation, "multi_split")
	defaultString(&m.SCOPEstime, "4.0")
	defaultString(&m.SEEREstime, "6.0")
	return m
}

// CalculPACUpdate is a sparse update: nil fields are left untouched. A
// present pieces list replaces the stored rooms wholesale.
type CalculPACUpdate struct {
	Nom            *string  `json:"nom"`
	ClientNom      *string  `json:"client_nom"`
	Adresse        *string  `json:"adresse"`
	TypePAC        *string  `json:"type_pac"`
	SurfaceTotale  *string  `json:"surface_totale"`
	Isolation      *string  `json:"isolation"`
	ZoneClimatique *string  `json:"zone_climatique"`
	BudgetEstime   *string  `json:"budget_estime"`
	Pieces         *[]Piece `json:"pieces"`
	Notes          *string  `json:"notes"`
	ProductionECS  *bool    `json:"production_ecs"`
}

func (r CalculPACUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setString(changes, "nom", r.Nom)
	setString(changes, "client_nom", r.ClientNom)
	setString(changes, "adresse", r.Adresse)
	setString(changes, "type_pac", r.TypePAC)
	setString(changes, "surface_totale", r.SurfaceTotale)
	setString(changes, "isolation", r.Isolation)
	setString(changes, "zone_climatique", r.ZoneClimatique)
	setString(changes, "budget_estime", r.BudgetEstime)
	setString(changes, "notes", r.Notes)
	setBool(changes, "production_ecs", r.ProductionECS)
	if r.Pieces != nil {
		changes["pieces"] = NormalizePieces(*r.Pieces)
	}
	return changes
}
