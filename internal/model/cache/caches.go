package cache

import (
	"sync"

	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	ProfileByID        *cache.Set[model.Profile]
	ProfileByAuthToken *cache.Set[model.Profile]

	TutorsByWorkspaceID         *cache.Set[[]*model.Tutor]
	PetsByWorkspaceID           *cache.Set[[]*model.Pet]
	AgendaByWorkspaceID         *cache.Set[[]*model.AgendaEntry]
	VisitsByWorkspaceID         *cache.Set[[]*model.Visit]
	VaccinesByWorkspaceID       *cache.Set[[]*model.Vaccine]
	FinanceEntriesByWorkspaceID *cache.Set[[]*model.FinanceEntry]
	InventoryItemsByWorkspaceID *cache.Set[[]*model.InventoryItem]
	BackupsByWorkspaceID        *cache.Set[[]*model.WorkspaceBackup]
	FormOptionsByWorkspaceID    *cache.Set[types.FormOptions]
	DashboardStatsByWorkspaceID *cache.Set[types.DashboardStats]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize() {
	once.Do(func() {
		initializeCaches()
	})
}

func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches() {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// profile
	ProfileByID = cache.NewSet[model.Profile]("profile#profileId")
	ProfileByAuthToken = cache.NewSet[model.Profile]("profile#authToken")

	SetMap["profile#profileId"] = ProfileByID.Flush
	SetMap["profile#authToken"] = ProfileByAuthToken.Flush

	// tenant list views, keyed by workspace id
	TutorsByWorkspaceID = cache.NewSet[[]*model.Tutor]("tutores#workspaceId")
	PetsByWorkspaceID = cache.NewSet[[]*model.Pet]("pets#workspaceId")
	AgendaByWorkspaceID = cache.NewSet[[]*model.AgendaEntry]("agenda#workspaceId")
	VisitsByWorkspaceID = cache.NewSet[[]*model.Visit]("atendimentos#workspaceId")
	VaccinesByWorkspaceID = cache.NewSet[[]*model.Vaccine]("vacinas#workspaceId")
	FinanceEntriesByWorkspaceID = cache.NewSet[[]*model.FinanceEntry]("financeiro#workspaceId")
	InventoryItemsByWorkspaceID = cache.NewSet[[]*model.InventoryItem]("estoqueItens#workspaceId")
	BackupsByWorkspaceID = cache.NewSet[[]*model.WorkspaceBackup]("workspaceBackups#workspaceId")

	SetMap["tutores#workspaceId"] = TutorsByWorkspaceID.Flush
	SetMap["pets#workspaceId"] = PetsByWorkspaceID.Flush
	SetMap["agenda#workspaceId"] = AgendaByWorkspaceID.Flush
	SetMap["atendimentos#workspaceId"] = VisitsByWorkspaceID.Flush
	SetMap["vacinas#workspaceId"] = VaccinesByWorkspaceID.Flush
	SetMap["financeiro#workspaceId"] = FinanceEntriesByWorkspaceID.Flush
	SetMap["estoqueItens#workspaceId"] = InventoryItemsByWorkspaceID.Flush
	SetMap["workspaceBackups#workspaceId"] = BackupsByWorkspaceID.Flush

	// aggregated views
	FormOptionsByWorkspaceID = cache.NewSet[types.FormOptions]("formOptions#workspaceId")
	DashboardStatsByWorkspaceID = cache.NewSet[types.DashboardStats]("dashboardStats#workspaceId")

	SetMap["formOptions#workspaceId"] = FormOptionsByWorkspaceID.Flush
	SetMap["dashboardStats#workspaceId"] = DashboardStatsByWorkspaceID.Flush
}
