package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartelroasters/storefront/models"
)

func TestSelectBranchClearsTrayAndSelection(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("khalifa")

	session.AddOrderLine(models.OrderLine{ID: "a", Price: "10"})
	session.OpenCustomization(models.MenuItem{ID: "esp2", Name: "CARTEL Latte", Price: "27"})

	session.SelectBranch("marina")

	tray, total := session.TraySnapshot()
	assert.Empty(t, tray.Lines)
	assert.Equal(t, 0.0, total)
	assert.ErrorIs(t, session.UpdateSelection(func(*Selection) error { return nil }), ErrNoSelection)
	assert.Equal(t, "marina", session.BranchID())
}

func TestOpenCustomizationReplacesPreviousSelection(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("khalifa")

	first := session.OpenCustomization(models.MenuItem{ID: "esp1", Price: "24"})
	assert.NoError(t, first.SetTemperature(TemperatureHot))

	second := session.OpenCustomization(models.MenuItem{ID: "esp2", Price: "27"})
	assert.Empty(t, second.Temperature)
}

func TestConfirmSelectionValidationLeavesStateOpen(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("khalifa")
	session.OpenCustomization(models.MenuItem{
		ID:    "esp2",
		Name:  "CARTEL Latte",
		Price: "27",
		Variants: []models.Variant{
			{ID: "bean_classic", Name: "The Classic", Price: 0},
		},
	})

	_, err := session.ConfirmSelection()
	assert.ErrorIs(t, err, ErrVariantRequired)

	tray, _ := session.TraySnapshot()
	assert.Empty(t, tray.Lines)

	// The selection is still open and can be completed.
	assert.NoError(t, session.UpdateSelection(func(sel *Selection) error {
		if err := sel.SelectVariant("bean_classic"); err != nil {
			return err
		}
		if err := sel.SetTemperature(TemperatureHot); err != nil {
			return err
		}
		return sel.SetServingStyle(ServingDineIn)
	}))

	line, err := session.ConfirmSelection()
	assert.NoError(t, err)
	assert.Equal(t, "CARTEL Latte", line.Name)

	tray, _ = session.TraySnapshot()
	assert.Len(t, tray.Lines, 1)
	assert.ErrorIs(t, session.UpdateSelection(func(*Selection) error { return nil }), ErrNoSelection)
}

func TestChatTurnPendingGuard(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("")

	assert.True(t, session.BeginChatTurn("hello"))
	assert.False(t, session.BeginChatTurn("impatient second message"))

	session.EndChatTurn(models.ChatMessage{Role: models.ChatRoleModel, Text: "hi"})
	assert.True(t, session.BeginChatTurn("next turn"))
}

func TestTranscriptStartsWithWelcome(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("")

	transcript := session.Transcript()
	assert.Len(t, transcript, 1)
	assert.Equal(t, models.ChatRoleModel, transcript[0].Role)
	assert.Contains(t, transcript[0].Text, "Head Barista")
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	session := registry.Create("khalifa")

	found, ok := registry.Get(session.ID)
	assert.True(t, ok)
	assert.Equal(t, session, found)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}
