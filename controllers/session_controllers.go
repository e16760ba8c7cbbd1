package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/order"
	"github.com/cartelroasters/storefront/utils"
)

// SessionHeader carries the client's session identifier on every
// session-scoped request.
const SessionHeader = "X-Session-ID"

var errUnknownSession = errors.New("unknown or missing session")

type SessionController struct {
	Registry *order.Registry
}

func NewSessionController(registry *order.Registry) *SessionController {
	return &SessionController{Registry: registry}
}

// CreateSession opens a client session. A `location` parameter matching
// a known branch pre-selects it; otherwise the session starts in the
// branch-selection state with no active branch.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req struct {
		Location string `json:"location"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.Location == "" {
		req.Location = c.Query("location")
	}

	branchID := ""
	if req.Location != "" {
		if branch, ok := catalog.BranchByID(req.Location); ok {
			branchID = branch.ID
		}
	}

	session := sc.Registry.Create(branchID)
	utils.RespondJSON(c, http.StatusCreated, "Session created", gin.H{
		"session_id": session.ID,
		"branch_id":  session.BranchID(),
	})
}

// SelectBranch switches the session's active branch. The tray does not
// migrate: menus differ across branches, so its contents are discarded.
func (sc *SessionController) SelectBranch(c *gin.Context) {
	session, ok := sessionFrom(c, sc.Registry)
	if !ok {
		return
	}

	var req struct {
		BranchID string `json:"branch_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branch, found := catalog.BranchByID(req.BranchID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown branch"))
		return
	}

	session.SelectBranch(branch.ID)
	utils.RespondJSON(c, http.StatusOK, "Branch selected", gin.H{
		"branch": branch,
	})
}

// sessionFrom resolves the caller's session or writes the error
// response itself.
func sessionFrom(c *gin.Context, registry *order.Registry) (*order.Session, bool) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, errUnknownSession)
		return nil, false
	}
	session, ok := registry.Get(id)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errUnknownSession)
		return nil, false
	}
	return session, true
}
