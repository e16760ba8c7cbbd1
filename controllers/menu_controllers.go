package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/menu"
	"github.com/cartelroasters/storefront/utils"
)

type MenuController struct {
	Inventory *inventory.Service
}

func NewMenuController(inv *inventory.Service) *MenuController {
	return &MenuController{Inventory: inv}
}

// GetBranches returns the branch directory for the selection screen.
func (mc *MenuController) GetBranches(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of branches", catalog.Branches())
}

// GetMenu returns the projected menu for a branch: static catalog
// merged with the live sold-out overlay, optionally filtered by the
// search query. The overlay is re-read on every call, so admin edits
// from any surface show up on the next request.
func (mc *MenuController) GetMenu(c *gin.Context) {
	branchID := c.Query("branch")
	if branchID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'branch' is required"))
		return
	}
	if _, ok := catalog.BranchByID(branchID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown branch"))
		return
	}

	overlay, err := mc.Inventory.SoldOutOverlay(branchID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categories := menu.Project(catalog.MenuFor(branchID), overlay, c.Query("search"))
	utils.RespondJSON(c, http.StatusOK, "Menu for branch "+branchID, categories)
}
