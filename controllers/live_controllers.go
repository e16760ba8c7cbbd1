package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/live"
	"github.com/cartelroasters/storefront/utils"
)

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler subscribes a client to inventory changes for one branch.
// The session query parameter identifies the writer so a tab never
// receives a notification for its own write.
func LiveHandler(c *gin.Context) {
	branchID := c.Query("branch")
	if _, ok := catalog.BranchByID(branchID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown branch"))
		return
	}
	sessionID := c.Query("session")

	conn, err := liveUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("Websocket upgrade failed: %v", err)
		return
	}

	live.RegisterClient(conn, inventory.StorageKey(branchID), sessionID)
	utils.InfoLogger.Infof("Live client connected for branch %s", branchID)

	go func() {
		defer func() {
			live.UnregisterClient(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
