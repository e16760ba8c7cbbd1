package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/services"
	"github.com/cartelroasters/storefront/utils"
)

var errInvalidCredentials = errors.New("Access Denied: Invalid Credentials")

type AdminController struct {
	Inventory      *inventory.Service
	accessCodeHash []byte
}

func NewAdminController(inv *inventory.Service, accessCode string) *AdminController {
	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to hash admin access code: %v", err)
	}
	return &AdminController{Inventory: inv, accessCodeHash: hash}
}

func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		AccessCode string `json:"access_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(ac.accessCodeHash, []byte(req.AccessCode)); err != nil {
		utils.ErrorLogger.Warnf("Admin login rejected from %s", c.ClientIP())
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Infof("Admin login from %s", c.ClientIP())
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

func (ac *AdminController) ListInventory(c *gin.Context) {
	branchID := c.DefaultQuery("branch", catalog.DefaultBranchID)
	records, err := ac.Inventory.Load(branchID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if query := c.Query("search"); query != "" {
		records = inventory.Search(records, query)
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory records", records)
}

func (ac *AdminController) ToggleActive(c *gin.Context) {
	ac.mutate(c, func(branchID, id, writerID string) (interface{}, error) {
		return ac.Inventory.ToggleActive(branchID, id, writerID)
	})
}

func (ac *AdminController) ToggleSoldOut(c *gin.Context) {
	ac.mutate(c, func(branchID, id, writerID string) (interface{}, error) {
		return ac.Inventory.ToggleSoldOut(branchID, id, writerID)
	})
}

func (ac *AdminController) SetPrice(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	ac.mutate(c, func(branchID, id, writerID string) (interface{}, error) {
		return ac.Inventory.SetPrice(branchID, id, req.Value, writerID)
	})
}

func (ac *AdminController) AddItem(c *gin.Context) {
	branchID := c.DefaultQuery("branch", catalog.DefaultBranchID)

	var req inventory.NewItem
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	record, err := ac.Inventory.AddItem(branchID, adminWriterID(c), req)
	if errors.Is(err, inventory.ErrNameRequired) {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item added", record)
}

// DeleteItem permanently removes a record. The confirm flag is required
// so a stray request cannot drop inventory.
func (ac *AdminController) DeleteItem(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("deletion requires confirm=true"))
		return
	}

	branchID := c.DefaultQuery("branch", catalog.DefaultBranchID)
	err := ac.Inventory.DeleteItem(branchID, c.Param("id"), adminWriterID(c))
	if errors.Is(err, inventory.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item deleted", nil)
}

func (ac *AdminController) EndOfDay(c *gin.Context) {
	branchID := c.DefaultQuery("branch", catalog.DefaultBranchID)
	if err := services.GetReportService().SendEndOfDay(branchID); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "End-of-day report sent", nil)
}

func (ac *AdminController) mutate(c *gin.Context, fn func(branchID, id, writerID string) (interface{}, error)) {
	branchID := c.DefaultQuery("branch", catalog.DefaultBranchID)
	record, err := fn(branchID, c.Param("id"), adminWriterID(c))
	if errors.Is(err, inventory.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory updated", record)
}

// adminWriterID identifies this console tab so its own live updates are
// not echoed back to it.
func adminWriterID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	return "admin-console"
}
