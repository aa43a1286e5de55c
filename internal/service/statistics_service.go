package service

import (
	"context"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatisticsService interface {
	GetStatistiques(ctx context.Context) (model.StatistiquesResponse, error)
}

type statisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetStatistiques aggregates the dashboard counters across every collection
func (s *statisticsService) GetStatistiques(ctx context.Context) (model.StatistiquesResponse, error) {
	var response model.StatistiquesResponse

	counts := []struct {
		target any
		dest   *int64
	}{
		{&model.Client{}, &response.TotalClients},
		{&model.Chantier{}, &response.TotalChantiers},
		{&model.Document{}, &response.TotalDocuments},
		{&model.FicheSDB{}, &response.TotalFiches},
		{&model.CalculPAC{}, &response.TotalCalculsPAC},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.target).Count(c.dest).Error; err != nil {
			return response, err
		}
	}

	// Chantier status breakdown
	var rows []struct {
		Statut string
		Total  int64
	}
	err := s.db.WithContext(ctx).Model(&model.Chantier{}).
		Select("statut, COUNT(*) as total").
		Group("statut").
		Scan(&rows).Error
	if err != nil {
		return response, err
	}
	response.ChantiersParStatut = make(map[string]int64, len(rows))
	for _, row := range rows {
		response.ChantiersParStatut[row.Statut] = row.Total
	}

	// Budget totals. Budgets are free-text on chantiers; values that do not
	// parse as numbers are skipped rather than failing the whole dashboard.
	var chantiers []model.Chantier
	err = s.db.WithContext(ctx).Model(&model.Chantier{}).
		Select("budget_estime", "budget_final").
		Find(&chantiers).Error
	if err != nil {
		return response, err
	}

	estime := decimal.Zero
	final := decimal.Zero
	for _, ch := range chantiers {
		if v, err := decimal.NewFromString(ch.BudgetEstime); err == nil {
			estime = estime.Add(v)
		}
		if v, err := decimal.NewFromString(ch.BudgetFinal); err == nil {
			final = final.Add(v)
		}
	}
	response.BudgetEstimeTotal = estime.String()
	response.BudgetFinalTotal = final.String()

	return response, nil
}
