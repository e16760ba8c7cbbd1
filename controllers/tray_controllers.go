package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/models"
	"github.com/cartelroasters/storefront/order"
	"github.com/cartelroasters/storefront/utils"
)

type TrayController struct {
	Registry  *order.Registry
	Inventory *inventory.Service
}

func NewTrayController(registry *order.Registry, inv *inventory.Service) *TrayController {
	return &TrayController{Registry: registry, Inventory: inv}
}

// AddItem is the storefront "add" action. Items with customization
// steps open a fresh selection (defaults applied, previous selection
// discarded); plain items go straight to the tray. Sold-out items are
// refused here regardless of what the client rendered.
func (tc *TrayController) AddItem(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}
	branchID := session.BranchID()
	if branchID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no active branch"))
		return
	}

	var req struct {
		ItemID string `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, _, found := catalog.ItemByID(branchID, req.ItemID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	soldOut, err := tc.itemSoldOut(branchID, item)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if soldOut {
		utils.RespondError(c, http.StatusConflict, errors.New("item is sold out"))
		return
	}

	if item.HasVariants() || len(item.Customizations) > 0 {
		selection := session.OpenCustomization(item)
		utils.RespondJSON(c, http.StatusOK, "Customization required", gin.H{
			"mode":      "customize",
			"selection": selectionView(selection),
		})
		return
	}

	session.AddOrderLine(order.ComposeDirect(item))
	tray, total := session.TraySnapshot()
	utils.RespondJSON(c, http.StatusOK, "Added to tray", gin.H{
		"mode":  "added",
		"tray":  tray,
		"total": total,
	})
}

// UpdateSelection applies one or more customization choices to the
// in-progress selection.
func (tc *TrayController) UpdateSelection(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}

	var req struct {
		VariantID    string `json:"variant_id"`
		GroupID      string `json:"group_id"`
		OptionID     string `json:"option_id"`
		Temperature  string `json:"temperature"`
		ServingStyle string `json:"serving_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var view gin.H
	err := session.UpdateSelection(func(sel *order.Selection) error {
		if req.VariantID != "" {
			if err := sel.SelectVariant(req.VariantID); err != nil {
				return err
			}
		}
		if req.GroupID != "" {
			if err := sel.SelectModifier(req.GroupID, req.OptionID); err != nil {
				return err
			}
		}
		if req.Temperature != "" {
			if err := sel.SetTemperature(req.Temperature); err != nil {
				return err
			}
		}
		if req.ServingStyle != "" {
			if err := sel.SetServingStyle(req.ServingStyle); err != nil {
				return err
			}
		}
		view = selectionView(sel)
		return nil
	})
	if errors.Is(err, order.ErrNoSelection) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Selection updated", view)
}

// ConfirmSelection composes the current selection into an order line
// and appends it. A missing required step leaves the selection open and
// the tray untouched; the response names the incomplete step.
func (tc *TrayController) ConfirmSelection(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}

	// Availability may have changed since the dialog opened. The branch
	// is read up front: session methods lock, so the closure must not
	// call back into the session.
	branchID := session.BranchID()
	var stale bool
	err := session.UpdateSelection(func(sel *order.Selection) error {
		soldOut, err := tc.itemSoldOut(branchID, sel.Item)
		if err != nil {
			return err
		}
		stale = soldOut
		return nil
	})
	if errors.Is(err, order.ErrNoSelection) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if stale {
		session.CancelCustomization()
		utils.RespondError(c, http.StatusConflict, errors.New("item is sold out"))
		return
	}

	line, err := session.ConfirmSelection()
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	tray, total := session.TraySnapshot()
	utils.RespondJSON(c, http.StatusOK, "Added to tray", gin.H{
		"line":  line,
		"tray":  tray,
		"total": total,
	})
}

func (tc *TrayController) CancelSelection(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}
	session.CancelCustomization()
	utils.RespondJSON(c, http.StatusOK, "Customization cancelled", nil)
}

func (tc *TrayController) GetTray(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}
	tray, total := session.TraySnapshot()
	utils.RespondJSON(c, http.StatusOK, "Tray contents", gin.H{
		"tray":  tray,
		"total": total,
	})
}

func (tc *TrayController) RemoveLine(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid index"))
		return
	}
	if err := session.RemoveLine(index); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tray, total := session.TraySnapshot()
	utils.RespondJSON(c, http.StatusOK, "Line removed", gin.H{
		"tray":  tray,
		"total": total,
	})
}

func (tc *TrayController) CloseTray(c *gin.Context) {
	session, ok := sessionFrom(c, tc.Registry)
	if !ok {
		return
	}
	session.CloseTray()
	utils.RespondJSON(c, http.StatusOK, "Tray closed", nil)
}

// itemSoldOut applies the same overlay-wins merge the projection uses.
func (tc *TrayController) itemSoldOut(branchID string, item models.MenuItem) (bool, error) {
	overlay, err := tc.Inventory.SoldOutOverlay(branchID)
	if err != nil {
		return false, err
	}
	if flag, ok := overlay[item.ID]; ok {
		return flag, nil
	}
	return item.IsSoldOut, nil
}

func selectionView(sel *order.Selection) gin.H {
	modifiers := gin.H{}
	for groupID, opt := range sel.Modifiers {
		modifiers[groupID] = opt
	}
	return gin.H{
		"item_id":       sel.Item.ID,
		"variant":       sel.Variant,
		"modifiers":     modifiers,
		"temperature":   sel.Temperature,
		"serving_style": sel.ServingStyle,
		"total":         sel.Total(),
	}
}
