// Package inventory owns the per-branch overlay of admin-edited
// availability and price state layered over the static catalog.
package inventory

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/models"
	"github.com/cartelroasters/storefront/storage"
	"github.com/cartelroasters/storefront/utils"
)

const storageKeyPrefix = "cartel_inventory_"

const placeholderImage = "https://via.placeholder.com/150"

var (
	ErrRecordNotFound = errors.New("inventory record not found")
	ErrNameRequired   = errors.New("item name is required")
)

// StorageKey is the exact per-branch key the overlay lives under.
// Change notifications are scoped to it; keys for other branches must
// be ignored by readers.
func StorageKey(branchID string) string {
	return storageKeyPrefix + branchID
}

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Load returns the overlay record list for a branch. The first load of
// a branch seeds the list from the static catalog and persists the seed
// immediately; from then on the persisted list is the only truth, so an
// admin delete is never resurrected by the catalog. A malformed
// persisted blob degrades to "no overrides".
func (s *Service) Load(branchID string) ([]models.InventoryRecord, error) {
	raw, err := s.store.Read(StorageKey(branchID))
	if errors.Is(err, storage.ErrNotFound) {
		seed := seedFromCatalog(branchID)
		if err := s.persist(branchID, seed, "seed"); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.InventoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		utils.ErrorLogger.Errorf("malformed inventory blob for branch %s: %v", branchID, err)
		return []models.InventoryRecord{}, nil
	}
	return records, nil
}

// SoldOutOverlay projects the record list down to the map the
// storefront merge consumes. Only explicit entries appear; items absent
// from the overlay keep their catalog flag.
func (s *Service) SoldOutOverlay(branchID string) (map[string]bool, error) {
	records, err := s.Load(branchID)
	if err != nil {
		return nil, err
	}
	overlay := make(map[string]bool, len(records))
	for _, rec := range records {
		overlay[rec.ID] = rec.IsSoldOut
	}
	return overlay, nil
}

func (s *Service) ToggleActive(branchID, id, writerID string) (models.InventoryRecord, error) {
	return s.update(branchID, id, writerID, func(rec *models.InventoryRecord) {
		rec.Active = !rec.Active
	})
}

func (s *Service) ToggleSoldOut(branchID, id, writerID string) (models.InventoryRecord, error) {
	return s.update(branchID, id, writerID, func(rec *models.InventoryRecord) {
		rec.IsSoldOut = !rec.IsSoldOut
	})
}

// SetPrice parses the admin's input as a float. Invalid input coerces
// to 0 rather than rejecting; the console is deliberately permissive.
func (s *Service) SetPrice(branchID, id, value, writerID string) (models.InventoryRecord, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		price = 0
	}
	return s.update(branchID, id, writerID, func(rec *models.InventoryRecord) {
		rec.Price = price
	})
}

// NewItem carries the admin-supplied fields for AddItem. Everything
// except Name is optional.
type NewItem struct {
	Name     string
	Category string
	Price    float64
	Image    string
}

// AddItem prepends a fresh record so it appears first in the console.
func (s *Service) AddItem(branchID, writerID string, item NewItem) (models.InventoryRecord, error) {
	if strings.TrimSpace(item.Name) == "" {
		return models.InventoryRecord{}, ErrNameRequired
	}

	records, err := s.Load(branchID)
	if err != nil {
		return models.InventoryRecord{}, err
	}

	category := item.Category
	if category == "" {
		category = "Uncategorized"
	}
	image := item.Image
	if image == "" {
		image = placeholderImage
	}

	record := models.InventoryRecord{
		ID:        "new_" + uuid.NewString(),
		Name:      item.Name,
		SKU:       "SKU-" + strings.ToUpper(uuid.NewString()[:8]),
		Category:  category,
		Price:     item.Price,
		Active:    true,
		IsSoldOut: false,
		Image:     image,
	}

	updated := append([]models.InventoryRecord{record}, records...)
	if err := s.persist(branchID, updated, writerID); err != nil {
		return models.InventoryRecord{}, err
	}
	return record, nil
}

// DeleteItem removes a record permanently. There is no undo; the caller
// is responsible for having confirmed the action with the user.
func (s *Service) DeleteItem(branchID, id, writerID string) error {
	records, err := s.Load(branchID)
	if err != nil {
		return err
	}

	updated := records[:0:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		updated = append(updated, rec)
	}
	if !found {
		return ErrRecordNotFound
	}
	return s.persist(branchID, updated, writerID)
}

// Search filters records by case-insensitive substring over name or
// SKU.
func Search(records []models.InventoryRecord, query string) []models.InventoryRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	matched := make([]models.InventoryRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.SKU), query) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// update applies one mutation to one record and writes the whole list
// back, keeping the persisted blob internally consistent.
func (s *Service) update(branchID, id, writerID string, mutate func(*models.InventoryRecord)) (models.InventoryRecord, error) {
	records, err := s.Load(branchID)
	if err != nil {
		return models.InventoryRecord{}, err
	}

	for i := range records {
		if records[i].ID == id {
			mutate(&records[i])
			if err := s.persist(branchID, records, writerID); err != nil {
				return models.InventoryRecord{}, err
			}
			return records[i], nil
		}
	}
	return models.InventoryRecord{}, ErrRecordNotFound
}

func (s *Service) persist(branchID string, records []models.InventoryRecord, writerID string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.Write(StorageKey(branchID), data, writerID)
}

func seedFromCatalog(branchID string) []models.InventoryRecord {
	var records []models.InventoryRecord
	for _, cat := range catalog.MenuFor(branchID) {
		for _, item := range cat.Items {
			records = append(records, models.InventoryRecord{
				ID:        item.ID,
				Name:      item.Name,
				SKU:       "SKU-" + strings.ToUpper(item.ID),
				Category:  cat.Title,
				Price:     utils.ParsePrice(item.Price),
				Active:    !item.IsSoldOut,
				IsSoldOut: item.IsSoldOut,
				Image:     item.Image,
			})
		}
	}
	return records
}
