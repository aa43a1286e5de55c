package model

// StatistiquesResponse aggregates the dashboard counters served by
// GET /api/statistics
type StatistiquesResponse struct {
	TotalClients       int64            `json:"total_clients"`
	TotalChantiers     int64            `json:"total_chantiers"`
	TotalDocuments     int64            `json:"total_documents"`
	TotalFiches        int64            `json:"total_fiches"`
	TotalCalculsPAC    int64            `json:"total_calculs_pac"`
	ChantiersParStatut map[string]int64 `json:"chantiers_par_statut"`
	BudgetEstimeTotal  string           `json:"budget_estime_total"`
	BudgetFinalTotal   string           `json:"budget_final_total"`
}
