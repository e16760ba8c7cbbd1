package models

import "encoding/json"

// InventoryRecord is the admin's mutable view of a menu item, persisted
// per branch as one JSON list. Once a branch has been seeded the record
// list is the single source of truth for availability and admin price;
// the static catalog is no longer consulted.
type InventoryRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Active    bool    `json:"active"`
	IsSoldOut bool    `json:"isSoldOut"`
	Image     string  `json:"image"`
}

// UnmarshalJSON tolerates records written by older surfaces: the id may
// be a string or a number, a missing active flag defaults to true and a
// missing sold-out flag to false.
func (r *InventoryRecord) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		SKU       string          `json:"sku"`
		Category  string          `json:"category"`
		Price     float64         `json:"price"`
		Active    *bool           `json:"active"`
		IsSoldOut *bool           `json:"isSoldOut"`
		Image     string          `json:"image"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var id string
	if len(aux.ID) > 0 {
		if err := json.Unmarshal(aux.ID, &id); err != nil {
			// numeric id, keep its literal text
			id = string(aux.ID)
		}
	}

	r.ID = id
	r.Name = aux.Name
	r.SKU = aux.SKU
	r.Category = aux.Category
	r.Price = aux.Price
	r.Active = aux.Active == nil || *aux.Active
	r.IsSoldOut = aux.IsSoldOut != nil && *aux.IsSoldOut
	r.Image = aux.Image
	return nil
}
