package model

// FicheSDB is the technical survey record for a prospective job site. It
// started as a bathroom survey and grew into the eight-tab "fiche chantier"
// (general, client, logement, existant, besoins, technique, plan 2D, notes),
// which is why the flat field list mixes both generations.
type FicheSDB struct {
	Base
	Nom       string `gorm:"type:varchar(255);not null" json:"nom"`
	ClientNom string `gorm:"type:varchar(255);not null" json:"client_nom"`
	Adresse   string `gorm:"type:text" json:"adresse"`
	Telephone string `gorm:"type:varchar(50)" json:"telephone"`
	Email     string `gorm:"type:varchar(255)" json:"email"`

	// Bathroom survey fields
	TypeSDB      string `gorm:"column:type_sdb;type:varchar(50);default:complete" json:"type_sdb"`
	Surface      string `gorm:"type:varchar(50)" json:"surface"`
	CarrelageMur string `gorm:"type:varchar(255)" json:"carrelage_mur"`
	CarrelageSol string `gorm:"type:varchar(255)" json:"carrelage_sol"`
	Sanitaires   string `gorm:"type:text" json:"sanitaires"`
	Robinetterie string `gorm:"type:text" json:"robinetterie"`
	Chauffage    string `gorm:"type:varchar(255)" json:"chauffage"`
	Ventilation  string `gorm:"type:varchar(255)" json:"ventilation"`
	Eclairage    string `gorm:"type:varchar(255)" json:"eclairage"`
	BudgetEstime string `gorm:"type:varchar(50)" json:"budget_estime"`
	Notes        string `gorm:"type:text" json:"notes"`

	// General / appointment tab
	DateRDV          string `gorm:"column:date_rdv;type:varchar(50)" json:"date_rdv"`
	TypeIntervention string `gorm:"type:varchar(100)" json:"type_intervention"`
	Statut           string `gorm:"type:varchar(50)" json:"statut"`

	// Logement tab
	NbPersonnes       int    `json:"nb_personnes"`
	TypeLogement      string `gorm:"type:varchar(100)" json:"type_logement"`
	AnneeConstruction int    `json:"annee_construction"`
	Isolation         string `gorm:"type:varchar(100)" json:"isolation"`
	Menuiseries       string `gorm:"type:varchar(255)" json:"menuiseries"`

	// Existant tab
	ChauffageActuel      string `gorm:"type:varchar(255)" json:"chauffage_actuel"`
	EtatGeneral          string `gorm:"type:varchar(255)" json:"etat_general"`
	ProductionECS        string `gorm:"column:production_ecs;type:varchar(255)" json:"production_ecs"`
	ObservationsExistant string `gorm:"type:text" json:"observations_existant"`

	// Besoins tab
	Besoins       string `gorm:"type:text" json:"besoins"`
	Priorite      string `gorm:"type:varchar(100)" json:"priorite"`
	DelaiSouhaite string `gorm:"type:varchar(100)" json:"delai_souhaite"`
	Contraintes   string `gorm:"type:text" json:"contraintes"`

	// Technique tab
	CompteurElectrique    string `gorm:"type:varchar(255)" json:"compteur_electrique"`
	ArriveeGaz            string `gorm:"type:varchar(255)" json:"arrivee_gaz"`
	EvacuationEaux        string `gorm:"type:varchar(255)" json:"evacuation_eaux"`
	AccesMateriel         string `gorm:"type:text" json:"acces_materiel"`
	ContraintesTechniques string `gorm:"type:text" json:"contraintes_techniques"`

	// Plan 2D tab: serialized drawing state owned by the client application
	PlanData string `gorm:"type:text" json:"plan_data"`

	// Conclusion tab
	SolutionRecommandee string `gorm:"type:text" json:"solution_recommandee"`
	PointsAttention     string `gorm:"type:text" json:"points_attention"`
	BudgetFinal         string `gorm:"type:varchar(50)" json:"budget_final"`
	DelaiRealisation    string `gorm:"type:varchar(100)" json:"delai_realisation"`
}

func (FicheSDB) TableName() string {
	return "fiches_sdb"
}

// FicheSDBCreate is the payload accepted when creating a fiche
type FicheSDBCreate struct {
	Nom       string `json:"nom" binding:"required"`
	ClientNom string `json:"client_nom" binding:"required"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`

	TypeSDB      string `json:"type_sdb"`
	Surface      string `json:"surface"`
	CarrelageMur string `json:"carrelage_mur"`
	CarrelageSol string `json:"carrelage_sol"`
	Sanitaires   string `json:"sanitaires"`
	Robinetterie string `json:"robinetterie"`
	Chauffage    string `json:"chauffage"`
	Ventilation  string `json:"ventilation"`
	Eclairage    string `json:"eclairage"`
	BudgetEstime string `json:"budget_estime"`
	Notes        string `json:"notes"`

	DateRDV               string `json:"date_rdv"`
	TypeIntervention      string `json:"type_intervention"`
	Statut                string `json:"statut"`
	NbPersonnes           int    `json:"nb_personnes"`
	TypeLogement          string `json:"type_logement"`
	AnneeConstruction     int    `json:"annee_construction"`
	Isolation             string `json:"isolation"`
	Menuiseries           string `json:"menuiseries"`
	ChauffageActuel       string `json:"chauffage_actuel"`
	EtatGeneral           string `json:"etat_general"`
	ProductionECS         string `json:"production_ecs"`
	ObservationsExistant  string `json:"observations_existant"`
	Besoins               string `json:"besoins"`
	Priorite              string `json:"priorite"`
	DelaiSouhaite         string `json:"delai_souhaite"`
	Contraintes           string `json:"contraintes"`
	CompteurElectrique    string `json:"compteur_electrique"`
	ArriveeGaz            string `json:"arrivee_gaz"`
	EvacuationEaux        string `json:"evacuation_eaux"`
	AccesMateriel         string `json:"acces_materiel"`
	ContraintesTechniques string `json:"contraintes_techniques"`
	PlanData              string `json:"plan_data"`
	SolutionRecommandee   string `json:"solution_recommandee"`
	PointsAttention       string `json:"points_attention"`
	BudgetFinal           string `json:"budget_final"`
	DelaiRealisation      string `json:"delai_realisation"`
}

func (r FicheSDBCreate) Model() FicheSDB {
	typeSDB := r.TypeSDB
	if typeSDB == "" {
		typeSDB = "complete"
	}
	nbPersonnes := r.NbPersonnes
	if nbPersonnes == 0 {
		nbPersonnes = 1
	}
	return FicheSDB{
		Nom:                   r.Nom,
		ClientNom:             r.ClientNom,
		Adresse:               r.Adresse,
		Telephone:             r.Telephone,
		Email:                 r.Email,
		TypeSDB:               typeSDB,
		Surface:               r.Surface,
		CarrelageMur:          r.CarrelageMur,
		CarrelageSol:          r.CarrelageSol,
		Sanitaires:            r.Sanitaires,
		Robinetterie:          r.Robinetterie,
		Chauffage:             r.Chauffage,
		Ventilation:           r.Ventilation,
		Eclairage:             r.Eclairage,
		BudgetEstime:          r.BudgetEstime,
		Notes:                 r.Notes,
		DateRDV:               r.DateRDV,
		TypeIntervention:      r.TypeIntervention,
		Statut:                r.Statut,
		NbPersonnes:           nbPersonnes,
		TypeLogement:          r.TypeLogement,
		AnneeConstruction:     r.AnneeConstruction,
		Isolation:             r.Isolation,
		Menuiseries:           r.Menuiseries,
		ChauffageActuel:       r.ChauffageActuel,
		EtatGeneral:           r.EtatGeneral,
		ProductionECS:         r.ProductionECS,
		ObservationsExistant:  r.ObservationsExistant,
		Besoins:               r.Besoins,
		Priorite:              r.Priorite,
		DelaiSouhaite:         r.DelaiSouhaite,
		Contraintes:           r.Contraintes,
		CompteurElectrique:    r.CompteurElectrique,
		ArriveeGaz:            r.ArriveeGaz,
		EvacuationEaux:        r.EvacuationEaux,
		AccesMateriel:         r.AccesMateriel,
		ContraintesTechniques: r.ContraintesTechniques,
		PlanData:              r.PlanData,
		SolutionRecommandee:   r.SolutionRecommandee,
		PointsAttention:       r.PointsAttention,
		BudgetFinal:           r.BudgetFinal,
		DelaiRealisation:      r.DelaiRealisation,
	}
}

// FicheSDBUpdate is a sparse update: nil fields are left untouched
type FicheSDBUpdate struct {
	Nom       *string `json:"nom"`
	ClientNom *string `json:"client_nom"`
	Adresse   *string `json:"adresse"`
	Telephone *string `json:"telephone"`
	Email     *string `json:"email"`

	TypeSDB      *string `json:"type_sdb"`
	Surface      *string `json:"surface"`
	CarrelageMur *string `json:"carrelage_mur"`
	CarrelageSol *string `json:"carrelage_sol"`
	Sanitaires   *string `json:"sanitaires"`
	Robinetterie *string `json:"robinetterie"`
	Chauffage    *string `json:"chauffage"`
	Ventilation  *string `json:"ventilation"`
	Eclairage    *string `json:"eclairage"`
	BudgetEstime *string `json:"budget_estime"`
	Notes        *string `json:"notes"`

	DateRDV               *string `json:"date_rdv"`
	TypeIntervention      *string `json:"type_intervention"`
	Statut                *string `json:"statut"`
	NbPersonnes           *int    `json:"nb_personnes"`
	TypeLogement          *string `json:"type_logement"`
	AnneeConstruction     *int    `json:"annee_construction"`
	Isolation             *string `json:"isolation"`
	Menuiseries           *string `json:"menuiseries"`
	ChauffageActuel       *string `json:"chauffage_actuel"`
	EtatGeneral           *string `json:"etat_general"`
	ProductionECS         *string `json:"production_ecs"`
	ObservationsExistant  *string `json:"observations_existant"`
	Besoins               *string `json:"besoins"`
	Priorite              *string `json:"priorite"`
	DelaiSouhaite         *string `json:"delai_souhaite"`
	Contraintes           *string `json:"contraintes"`
	CompteurElectrique    *string `json:"compteur_electrique"`
	ArriveeGaz            *string `json:"arrivee_gaz"`
	EvacuationEaux        *string `json:"evacuation_eaux"`
	AccesMateriel         *string `json:"acces_materiel"`
	ContraintesTechniques *string `json:"contraintes_techniques"`
	PlanData              *string `json:"plan_data"`
	SolutionRecommandee   *string `json:"solution_recommandee"`
	PointsAttention       *string `json:"points_attention"`
	BudgetFinal           *string `json:"budget_final"`
	DelaiRealisation      *string `json:"delai_realisation"`
}

func (r FicheSDBUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setString(changes, "nom", r.Nom)
	setString(changes, "client_nom", r.ClientNom)
	setString(changes, "adresse", r.Adresse)
	setString(changes, "telephone", r.Telephone)
	setString(changes, "email", r.Email)
	setString(changes, "type_sdb", r.TypeSDB)
	setString(changes, "surface", r.Surface)
	setString(changes, "carrelage_mur", r.CarrelageMur)
	setString(changes, "carrelage_sol", r.CarrelageSol)
	setString(changes, "sanitaires", r.Sanitaires)
	setString(changes, "robinetterie", r.Robinetterie)
	setString(changes, "chauffage", r.Chauffage)
	setString(changes, "ventilation", r.Ventilation)
	setString(changes, "eclairage", r.Eclairage)
	setString(changes, "budget_estime", r.BudgetEstime)
	setString(changes, "notes", r.Notes)
	setString(changes, "date_rdv", r.DateRDV)
	setString(changes, "type_intervention", r.TypeIntervention)
	setString(changes, "statut", r.Statut)
	setInt(changes, "nb_personnes", r.NbPersonnes)
	setString(changes, "type_logement", r.TypeLogement)
	setInt(changes, "annee_construction", r.AnneeConstruction)
	setString(changes, "isolation", r.Isolation)
	setString(changes, "menuiseries", r.Menuiseries)
	setString(changes, "chauffage_actuel", r.ChauffageActuel)
	setString(changes, "etat_general", r.EtatGeneral)
	setString(changes, "production_ecs", r.ProductionECS)
	setString(changes, "observations_existant", r.ObservationsExistant)
	setString(changes, "besoins", r.Besoins)
	setString(changes, "priorite", r.Priorite)
	setString(changes, "delai_souhaite", r.DelaiSouhaite)
	setString(changes, "contraintes", r.Contraintes)
	setString(changes, "compteur_electrique", r.CompteurElectrique)
	setString(changes, "arrivee_gaz", r.ArriveeGaz)
	setString(changes, "evacuation_eaux", r.EvacuationEaux)
	setString(changes, "acces_materiel", r.AccesMateriel)
	setString(changes, "contraintes_techniques", r.ContraintesTechniques)
	setString(changes, "plan_data", r.PlanData)
	setString(changes, "solution_recommandee", r.SolutionRecommandee)
	setString(changes, "points_attention", r.PointsAttention)
	setString(changes, "budget_final", r.BudgetFinal)
	setString(changes, "delai_realisation", r.DelaiRealisation)
	return changes
}
