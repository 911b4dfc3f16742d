package service

import (
	"context"
	"time"

	linq "github.com/ahmetb/go-linq/v3"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
)

const dashboardFeedLimit = 8

type Dashboard struct {
	TutorRepo     *repo.Tutor
	PetRepo       *repo.Pet
	AgendaRepo    *repo.Agenda
	VisitRepo     *repo.Visit
	FinanceRepo   *repo.Finance
	InventoryRepo *repo.Inventory
}

func NewDashboard(tutorRepo *repo.Tutor, petRepo *repo.Pet, agendaRepo *repo.Agenda, visitRepo *repo.Visit, financeRepo *repo.Finance, inventoryRepo *repo.Inventory) *Dashboard {
	return &Dashboard{
		TutorRepo:     tutorRepo,
		PetRepo:       petRepo,
		AgendaRepo:    agendaRepo,
		VisitRepo:     visitRepo,
		FinanceRepo:   financeRepo,
		InventoryRepo: inventoryRepo,
	}
}

// GetStats assembles the landing-page aggregation. The full set is cached
// per workspace; monetary sections are redacted afterwards for roles that
// may not see financial data.
func (s *Dashboard) GetStats(ctx context.Context, actor *model.Profile) (*types.DashboardStats, error) {
	stats, err := s.getStats(ctx, actor.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if actor.Role == constant.RoleIntern {
		redacted := *stats
		redacted.Profit = types.DashboardProfit{}
		redacted.Finance = types.FinanceSummary{}
		redacted.FinanceFeed = []types.FinanceRecentItem{}
		return &redacted, nil
	}
	return stats, nil
}

// Cache: dashboardStats#workspaceId:{workspaceId}, 1min
func (s *Dashboard) getStats(ctx context.Context, workspaceID string) (*types.DashboardStats, error) {
	var cached types.DashboardStats
	err := cache.DashboardStatsByWorkspaceID.Get(workspaceID, &cached)
	if err == nil {
		return &cached, nil
	}

	stats, err := s.buildStats(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.DashboardStatsByWorkspaceID.Set(workspaceID, *stats, time.Minute)
	return stats, nil
}

func (s *Dashboard) buildStats(ctx context.Context, workspaceID string) (*types.DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today := dayStart.Format("2006-01-02")
	weekStart := dayStart.AddDate(0, 0, -6).Format("2006-01-02")
	monthStart := today[:8] + "01"

	tutors, err := s.TutorRepo.GetTutors(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	pets, err := s.PetRepo.GetPets(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	visits, err := s.VisitRepo.GetVisits(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	agendaToday, err := s.AgendaRepo.GetEntriesBetween(ctx, workspaceID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	agendaNext, err := s.AgendaRepo.GetUpcoming(ctx, workspaceID, now, dashboardFeedLimit)
	if err != nil {
		return nil, err
	}
	finance, err := s.FinanceRepo.GetEntries(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	scarcest, err := s.InventoryRepo.GetItemsByQuantity(ctx, workspaceID, 20)
	if err != nil {
		return nil, err
	}

	countStatus := func(status string) int {
		return linq.From(agendaToday).
			CountWith(func(i any) bool { return i.(*model.AgendaEntry).Status == status })
	}

	pending := types.FinanceSummary{}
	linq.From(finance).
		Where(func(i any) bool { return i.(*model.FinanceEntry).Status == model.FinanceStatusPending }).
		ForEach(func(i any) {
			entry := i.(*model.FinanceEntry)
			if entry.Type == model.FinanceTypeIncome {
				pending.PendingIncome += entry.Amount
			} else if entry.Type == model.FinanceTypeExpense {
				pending.PendingExpense += entry.Amount
			}
		})

	var paid []*model.FinanceEntry
	linq.From(finance).
		Where(func(i any) bool { return i.(*model.FinanceEntry).Status == model.FinanceStatusPaid }).
		ToSlice(&paid)

	var upcoming []types.AgendaUpcomingItem
	linq.From(agendaNext).
		Select(func(i any) any {
			entry := i.(*model.AgendaEntry)
			return types.AgendaUpcomingItem{
				ID:          entry.ID,
				Title:       entry.Title,
				ScheduledAt: entry.ScheduledAt.Format(time.RFC3339),
				Status:      entry.Status,
			}
		}).
		ToSlice(&upcoming)

	var financeFeed []types.FinanceRecentItem
	linq.From(finance).
		OrderByDescending(func(i any) any { return i.(*model.FinanceEntry).CreatedAt.UnixNano() }).
		Take(dashboardFeedLimit).
		Select(func(i any) any {
			entry := i.(*model.FinanceEntry)
			return types.FinanceRecentItem{
				ID:           entry.ID,
				Type:         entry.Type,
				Category:     entry.Category,
				Amount:       entry.Amount,
				Status:       entry.Status,
				CompetencyAt: entry.CompetencyAt,
			}
		}).
		ToSlice(&financeFeed)

	var lowStock []types.InventoryLowItem
	linq.From(scarcest).
		Where(func(i any) bool {
			item := i.(*model.InventoryItem)
			return item.Quantity <= item.MinQuantity
		}).
		Take(dashboardFeedLimit).
		Select(func(i any) any {
			item := i.(*model.InventoryItem)
			return types.InventoryLowItem{
				ID:          item.ID,
				Name:        item.Name,
				Quantity:    item.Quantity,
				MinQuantity: item.MinQuantity,
				Unit:        item.Unit,
			}
		}).
		ToSlice(&lowStock)

	var visitsFeed []types.VisitRecentItem
	linq.From(visits).
		Take(dashboardFeedLimit).
		Select(func(i any) any {
			visit := i.(*model.Visit)
			return types.VisitRecentItem{
				ID:        visit.ID,
				UpdatedAt: visit.UpdatedAt.Format(time.RFC3339),
				Diagnosis: visit.Diagnosis.ValueOrZero(),
			}
		}).
		ToSlice(&visitsFeed)

	return &types.DashboardStats{
		Totals: types.DashboardTotals{
			Tutors:      len(tutors),
			Pets:        len(pets),
			Visits:      len(visits),
			AgendaToday: len(agendaToday),
		},
		Profit: types.DashboardProfit{
			Daily:   sumProfit(paid, today, today),
			Weekly:  sumProfit(paid, weekStart, today),
			Monthly: sumProfit(paid, monthStart, today),
		},
		Finance: pending,
		AgendaToday: types.AgendaTodaySummary{
			Total:      len(agendaToday),
			Scheduled:  countStatus(model.AgendaStatusScheduled),
			Confirmed:  countStatus(model.AgendaStatusConfirmed),
			InProgress: countStatus(model.AgendaStatusInProgress),
			Done:       countStatus(model.AgendaStatusDone),
			Cancelled:  countStatus(model.AgendaStatusCancelled),
		},
		AgendaNext:   upcoming,
		FinanceFeed:  financeFeed,
		InventoryLow: lowStock,
		VisitsFeed:   visitsFeed,
	}, nil
}

// sumProfit totals paid entries whose competency date falls in [start, end].
// Dates compare lexicographically in the stored YYYY-MM-DD form.
func sumProfit(paid []*model.FinanceEntry, start, end string) types.ProfitPeriod {
	period := types.ProfitPeriod{}
	for _, entry := range paid {
		if entry.CompetencyAt < start || entry.CompetencyAt > end {
			continue
		}
		if entry.Type == model.FinanceTypeIncome {
			period.Income += entry.Amount
		} else if entry.Type == model.FinanceTypeExpense {
			period.Expense += entry.Amount
		}
	}
	period.Profit = period.Income - period.Expense
	return period
}
