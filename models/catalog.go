package models

// Branch is one physical cafe location. The branch list and every menu
// hanging off it are load-time constants and are never mutated.
type Branch struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Coordinates  Coordinates `json:"coordinates"`
	Theme        string      `json:"theme"`
	Description  string      `json:"description"`
	Specialty    string      `json:"specialty"`
	Image        string      `json:"image"`
	WorkingHours string      `json:"workingHours"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MenuCategory struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}

// MenuItem is either variant-priced (Variants present, the selected
// variant's absolute price replaces the display price) or priced from
// the Price display string. Customizations are additive either way.
type MenuItem struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Ingredients         string          `json:"ingredients"`
	Price               string          `json:"price"`
	PricePrefix         string          `json:"pricePrefix,omitempty"`
	Image               string          `json:"image"`
	IsSoldOut           bool            `json:"isSoldOut,omitempty"`
	Badge               string          `json:"badge,omitempty"`
	Calories            int             `json:"calories,omitempty"`
	Variants            []Variant       `json:"variants,omitempty"`
	Customizations      []ModifierGroup `json:"customizations,omitempty"`
	DisableTemperature  bool            `json:"disableTemperature,omitempty"`
	DisableServingStyle bool            `json:"disableServingStyle,omitempty"`

	// Filter coffee provenance
	Origin       string   `json:"origin,omitempty"`
	Farm         string   `json:"farm,omitempty"`
	Process      string   `json:"process,omitempty"`
	Elevation    string   `json:"elevation,omitempty"`
	TastingNotes string   `json:"tastingNotes,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// HasVariants reports whether the item is variant-priced.
func (m MenuItem) HasVariants() bool {
	return len(m.Variants) > 0
}

// Variant is an absolute-price alternative formulation (bean origin,
// milk base). Selecting one replaces the item's base price.
type Variant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Notes string  `json:"notes,omitempty"`
}

// ModifierGroup is a single-select set of additive-price options. The
// first option is the implicit default.
type ModifierGroup struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Options []ModifierOption `json:"options"`
}

type ModifierOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
