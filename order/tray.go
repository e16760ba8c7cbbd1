package order

import (
	"errors"

	"github.com/cartelroasters/storefront/models"
	"github.com/cartelroasters/storefront/utils"
)

var ErrIndexOutOfRange = errors.New("tray index out of range")

// Tray is the in-progress, uncommitted order basket. Removal is
// positional, not identity-based.
type Tray struct {
	Lines []models.OrderLine `json:"lines"`
	Open  bool               `json:"open"`
}

// Append adds a line at the end and opens the tray's visible state.
func (t *Tray) Append(line models.OrderLine) {
	t.Lines = append(t.Lines, line)
	t.Open = true
}

func (t *Tray) RemoveAt(index int) error {
	if index < 0 || index >= len(t.Lines) {
		return ErrIndexOutOfRange
	}
	t.Lines = append(t.Lines[:index], t.Lines[index+1:]...)
	return nil
}

// Total is recomputed from the backing lines on every call; it is never
// cached independently of them.
func (t *Tray) Total() float64 {
	var sum float64
	for _, line := range t.Lines {
		sum += utils.ParsePrice(line.Price)
	}
	return sum
}

func (t *Tray) Clear() {
	t.Lines = nil
	t.Open = false
}
