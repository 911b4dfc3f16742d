package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
)

type Inventory struct {
	InventoryRepo *repo.Inventory
	AuditService  *Audit
}

func NewInventory(inventoryRepo *repo.Inventory, auditService *Audit) *Inventory {
	return &Inventory{
		InventoryRepo: inventoryRepo,
		AuditService:  auditService,
	}
}

// Cache: estoqueItens#workspaceId:{workspaceId}, 5min
func (s *Inventory) GetItems(ctx context.Context, workspaceID string) ([]*model.InventoryItem, error) {
	var items []*model.InventoryItem
	err := cache.InventoryItemsByWorkspaceID.Get(workspaceID, &items)
	if err == nil {
		return items, nil
	}

	items, err = s.InventoryRepo.GetItems(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.InventoryItemsByWorkspaceID.Set(workspaceID, items, time.Minute*5)
	return items, nil
}

func (s *Inventory) CreateItem(ctx context.Context, actor *model.Profile, req *types.InventoryItemRequest) (*model.InventoryItem, error) {
	item := &model.InventoryItem{
		ID:          uuid.New().String(),
		WorkspaceID: actor.WorkspaceID,
		Name:        req.Name,
		Category:    optString(req.Category),
		SKU:         optString(req.SKU),
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		AvgCost:     optFloat(req.AvgCost),
		SalePrice:   optFloat(req.SalePrice),
		ExpiresAt:   optString(req.ExpiresAt),
		Batch:       optString(req.Batch),
		Supplier:    optString(req.Supplier),
		Notes:       optString(req.Notes),
		AuditFields: stampCreate(actor, time.Now()),
	}
	if err := s.InventoryRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableInventoryItems, item.ID, constant.AuditActionInsert, nil, item)
	s.flushLists(actor.WorkspaceID)
	return item, nil
}

func (s *Inventory) UpdateItem(ctx context.Context, actor *model.Profile, id string, req *types.InventoryItemRequest) (*model.InventoryItem, error) {
	item, err := s.InventoryRepo.GetItemByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *item

	item.Name = req.Name
	item.Category = optString(req.Category)
	item.SKU = optString(req.SKU)
	item.Unit = req.Unit
	item.Quantity = req.Quantity
	item.MinQuantity = req.MinQuantity
	item.AvgCost = optFloat(req.AvgCost)
	item.SalePrice = optFloat(req.SalePrice)
	item.ExpiresAt = optString(req.ExpiresAt)
	item.Batch = optString(req.Batch)
	item.Supplier = optString(req.Supplier)
	item.Notes = optString(req.Notes)
	stampUpdate(&item.AuditFields, actor, time.Now())

	if err := s.InventoryRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableInventoryItems, item.ID, constant.AuditActionUpdate, &before, item)
	s.flushLists(actor.WorkspaceID)
	return item, nil
}

func (s *Inventory) DeleteItem(ctx context.Context, actor *model.Profile, id string) error {
	item, err := s.InventoryRepo.GetItemByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.InventoryRepo.SoftDeleteItem(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableInventoryItems, id, constant.AuditActionSoftDelete, item, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Inventory) flushLists(workspaceID string) {
	cache.InventoryItemsByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
