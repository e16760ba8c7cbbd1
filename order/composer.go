// Package order holds the customization composer, the tray, and the
// per-client session state that owns both.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cartelroasters/storefront/models"
	"github.com/cartelroasters/storefront/utils"
)

const (
	TemperatureHot  = "Hot"
	TemperatureIced = "Iced"

	ServingDineIn   = "Dine In"
	ServingTakeaway = "Takeaway"
)

// Options whose name matches the group's default label are omitted from
// the composed detail string unless they cost something.
const defaultModifierLabel = "Standard"

const specDelimiter = " | "

var (
	ErrVariantRequired      = errors.New("select a bean or base option first")
	ErrTemperatureRequired  = errors.New("select a temperature")
	ErrServingStyleRequired = errors.New("select a serving style")
	ErrUnknownVariant       = errors.New("unknown variant for this item")
	ErrUnknownModifier      = errors.New("unknown modifier option for this item")
	ErrInvalidTemperature   = errors.New("temperature must be Hot or Iced")
	ErrInvalidServingStyle  = errors.New("serving style must be Dine In or Takeaway")
)

// Selection is the in-progress customization of one item. Opening the
// customization surface always starts from a fresh Selection, so stale
// choices from a previous item can never leak in.
type Selection struct {
	Item         models.MenuItem
	Variant      *models.Variant
	Modifiers    map[string]models.ModifierOption // group id -> chosen option
	Temperature  string
	ServingStyle string
}

// NewSelection opens customization for an item with the default state:
// no variant, no temperature, no serving style, and every modifier
// group pre-set to its first option.
func NewSelection(item models.MenuItem) *Selection {
	sel := &Selection{
		Item:      item,
		Modifiers: make(map[string]models.ModifierOption),
	}
	for _, group := range item.Customizations {
		if len(group.Options) > 0 {
			sel.Modifiers[group.ID] = group.Options[0]
		}
	}
	return sel
}

func (s *Selection) SelectVariant(variantID string) error {
	for _, v := range s.Item.Variants {
		if v.ID == variantID {
			chosen := v
			s.Variant = &chosen
			return nil
		}
	}
	return ErrUnknownVariant
}

func (s *Selection) SelectModifier(groupID, optionID string) error {
	for _, group := range s.Item.Customizations {
		if group.ID != groupID {
			continue
		}
		for _, opt := range group.Options {
			if opt.ID == optionID {
				s.Modifiers[group.ID] = opt
				return nil
			}
		}
	}
	return ErrUnknownModifier
}

func (s *Selection) SetTemperature(value string) error {
	if value != TemperatureHot && value != TemperatureIced {
		return ErrInvalidTemperature
	}
	s.Temperature = value
	return nil
}

func (s *Selection) SetServingStyle(value string) error {
	if value != ServingDineIn && value != ServingTakeaway {
		return ErrInvalidServingStyle
	}
	s.ServingStyle = value
	return nil
}

// Total re-derives the price from the current state every time: the
// variant's absolute price (or the parsed display price) plus every
// selected modifier. Nothing is accumulated incrementally, so the
// figure can never drift from the selections.
func (s *Selection) Total() float64 {
	base := utils.ParsePrice(s.Item.Price)
	if s.Item.HasVariants() && s.Variant != nil {
		base = s.Variant.Price
	}
	for _, group := range s.Item.Customizations {
		if opt, ok := s.Modifiers[group.ID]; ok {
			base += opt.Price
		}
	}
	return base
}

// Validate reports the first missing required step, in display order.
func (s *Selection) Validate() error {
	if s.Item.HasVariants() && s.Variant == nil {
		return ErrVariantRequired
	}
	if !s.Item.DisableTemperature && s.Temperature == "" {
		return ErrTemperatureRequired
	}
	if !s.Item.DisableServingStyle && s.ServingStyle == "" {
		return ErrServingStyleRequired
	}
	return nil
}

// Compose finalizes the selection into an immutable order line, or
// refuses with a validation error and no side effects.
func (s *Selection) Compose() (models.OrderLine, error) {
	if err := s.Validate(); err != nil {
		return models.OrderLine{}, err
	}

	var specs []string
	if s.Variant != nil {
		specs = append(specs, s.Variant.Name)
	}
	for _, group := range s.Item.Customizations {
		opt, ok := s.Modifiers[group.ID]
		if !ok {
			continue
		}
		if opt.Price > 0 || opt.Name != defaultModifierLabel {
			specs = append(specs, opt.Name)
		}
	}
	if s.Temperature != "" {
		specs = append(specs, s.Temperature)
	}
	if s.ServingStyle != "" {
		specs = append(specs, s.ServingStyle)
	}

	return models.OrderLine{
		ID:      fmt.Sprintf("%s-%s", s.Item.ID, uuid.NewString()),
		Name:    s.Item.Name,
		Price:   utils.FormatPrice(s.Total()),
		Details: strings.Join(specs, specDelimiter),
		Image:   s.Item.Image,
	}, nil
}

// ComposeDirect turns an item with no customization steps straight into
// an order line at its display price.
func ComposeDirect(item models.MenuItem) models.OrderLine {
	return models.OrderLine{
		ID:      fmt.Sprintf("%s-%s", item.ID, uuid.NewString()),
		Name:    item.Name,
		Price:   item.Price,
		Details: item.Ingredients,
		Image:   item.Image,
	}
}
