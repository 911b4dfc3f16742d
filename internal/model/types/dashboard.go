package types

// ProfitPeriod is income minus expense over one window of paid entries.
type ProfitPeriod struct {
	Income  float64 `json:"ganhos"`
	Expense float64 `json:"gastos"`
	Profit  float64 `json:"lucro"`
}

type FinanceSummary struct {
	PendingIncome  float64 `json:"receitaPendente"`
	PendingExpense float64 `json:"despesaPendente"`
}

type AgendaTodaySummary struct {
	Total      int `json:"total"`
	Scheduled  int `json:"agendado"`
	Confirmed  int `json:"confirmado"`
	InProgress int `json:"emAtendimento"`
	Done       int `json:"concluido"`
	Cancelled  int `json:"cancelado"`
}

type AgendaUpcomingItem struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	ScheduledAt string `json:"data_hora"`
	Status      string `json:"status"`
}

type FinanceRecentItem struct {
	ID           string  `json:"id"`
	Type         string  `json:"tipo"`
	Category     string  `json:"categoria"`
	Amount       float64 `json:"valor"`
	Status       string  `json:"status"`
	CompetencyAt string  `json:"data_competencia"`
}

type InventoryLowItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Quantity    float64 `json:"quantidade_atual"`
	MinQuantity float64 `json:"quantidade_minima"`
	Unit        string  `json:"unidade"`
}

type VisitRecentItem struct {
	ID        string `json:"id"`
	UpdatedAt string `json:"updated_at"`
	Diagnosis string `json:"diagnostico"`
}

type DashboardTotals struct {
	Tutors      int `json:"tutores"`
	Pets        int `json:"pets"`
	Visits      int `json:"atendimentos"`
	AgendaToday int `json:"agendaHoje"`
}

type DashboardProfit struct {
	Daily   ProfitPeriod `json:"diario"`
	Weekly  ProfitPeriod `json:"semanal"`
	Monthly ProfitPeriod `json:"mensal"`
}

// DashboardStats is the landing-page aggregation. Monetary sections are
// zeroed for callers whose role may not see financial data.
type DashboardStats struct {
	Totals       DashboardTotals      `json:"totais"`
	Profit       DashboardProfit      `json:"lucro"`
	Finance      FinanceSummary       `json:"financeiro"`
	AgendaToday  AgendaTodaySummary   `json:"agendaHojeResumo"`
	AgendaNext   []AgendaUpcomingItem `json:"agendaProximos"`
	FinanceFeed  []FinanceRecentItem  `json:"financeiroRecentes"`
	InventoryLow []InventoryLowItem   `json:"estoqueBaixo"`
	VisitsFeed   []VisitRecentItem    `json:"atendimentosRecentes"`
}
