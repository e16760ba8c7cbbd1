package models

// OrderLine is one finalized, customized item in the tray. It is a
// snapshot: composed once, never mutated, and it carries no reference
// back to the selection state that produced it.
type OrderLine struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Details string `json:"details"`
	Image   string `json:"image"`
}
