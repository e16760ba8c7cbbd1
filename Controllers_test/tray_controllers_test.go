package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cartelroasters/storefront/controllers"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/order"
	"github.com/cartelroasters/storefront/storage"
	"github.com/cartelroasters/storefront/utils"
)

type trayFixture struct {
	router    *gin.Engine
	inventory *inventory.Service
	sessionID string
}

func setupTrayFixture(t *testing.T) *trayFixture {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:tray_ctrl_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	store := storage.NewGormStore(db)
	assert.NoError(t, store.Migrate())
	inventoryService := inventory.NewService(store)

	// Each fixture gets a clean overlay for the branch under test.
	seeded, err := inventoryService.Load("khalifa")
	assert.NoError(t, err)
	for i := range seeded {
		if seeded[i].IsSoldOut {
			_, err := inventoryService.ToggleSoldOut("khalifa", seeded[i].ID, "fixture")
			assert.NoError(t, err)
		}
	}

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	registry := order.NewRegistry()
	sessionCtrl := controllers.NewSessionController(registry)
	trayCtrl := controllers.NewTrayController(registry, inventoryService)
	router.POST("/session", sessionCtrl.CreateSession)
	router.POST("/session/branch", sessionCtrl.SelectBranch)
	router.POST("/tray/items", trayCtrl.AddItem)
	router.PATCH("/tray/customize", trayCtrl.UpdateSelection)
	router.POST("/tray/confirm", trayCtrl.ConfirmSelection)
	router.POST("/tray/cancel", trayCtrl.CancelSelection)
	router.GET("/tray", trayCtrl.GetTray)
	router.DELETE("/tray/:index", trayCtrl.RemoveLine)
	router.POST("/tray/close", trayCtrl.CloseTray)

	fixture := &trayFixture{router: router, inventory: inventoryService}
	fixture.sessionID = fixture.createSession(t, "khalifa")
	return fixture
}

func (f *trayFixture) createSession(t *testing.T, location string) string {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"location": location})
	req, _ := http.NewRequest("POST", "/session", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
			BranchID  string `json:"branch_id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.SessionID)
	return resp.Data.SessionID
}

func (f *trayFixture) do(method, target string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req, _ = http.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	req.Header.Set(controllers.SessionHeader, f.sessionID)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

type trayEnvelope struct {
	Data struct {
		Mode string `json:"mode"`
		Tray struct {
			Lines []struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Price   string `json:"price"`
				Details string `json:"details"`
			} `json:"lines"`
			Open bool `json:"open"`
		} `json:"tray"`
		Total float64 `json:"total"`
	} `json:"data"`
}

func TestAddPlainItemGoesStraightToTray(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "d_choc_chip"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp trayEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "added", resp.Data.Mode)
	assert.Len(t, resp.Data.Tray.Lines, 1)
	assert.True(t, resp.Data.Tray.Open)
	assert.Equal(t, "16", resp.Data.Tray.Lines[0].Price)
	assert.Equal(t, 16.0, resp.Data.Total)
}

func TestAddCustomizableItemOpensCustomization(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "esp2"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Mode      string `json:"mode"`
			Selection struct {
				ItemID string  `json:"item_id"`
				Total  float64 `json:"total"`
			} `json:"selection"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customize", resp.Data.Mode)
	assert.Equal(t, "esp2", resp.Data.Selection.ItemID)
	assert.Equal(t, 27.0, resp.Data.Selection.Total)
}

func TestCustomizedLatteFlow(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "esp2"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Confirm before completing the required steps fails and leaves the
	// customization open.
	w = f.do("POST", "/tray/confirm", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = f.do("PATCH", "/tray/customize", map[string]string{
		"variant_id":    "bean_modern",
		"group_id":      "milk_choice",
		"option_id":     "milk_oat",
		"temperature":   "Iced",
		"serving_style": "Takeaway",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var selResp struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &selResp))
	assert.Equal(t, 10.0, selResp.Data.Total)

	w = f.do("POST", "/tray/confirm", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp trayEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Tray.Lines, 1)
	assert.Equal(t, "10", resp.Data.Tray.Lines[0].Price)
	assert.Equal(t, "The Modern (Coconutella) | Oat Milk | Iced | Takeaway", resp.Data.Tray.Lines[0].Details)
	assert.Equal(t, 10.0, resp.Data.Total)
}

// Confirm re-checks availability while the selection is held under the
// session lock; this guards against that path ever blocking on itself.
func TestConfirmRespondsWithinDeadline(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "esp2"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("PATCH", "/tray/customize", map[string]string{
		"variant_id":    "bean_classic",
		"temperature":   "Hot",
		"serving_style": "Dine In",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	done := make(chan int, 1)
	go func() {
		done <- f.do("POST", "/tray/confirm", nil).Code
	}()

	select {
	case code := <-done:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(3 * time.Second):
		t.Fatal("confirm did not respond within 3s")
	}
}

func TestUnknownCustomizationChoiceRejected(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "esp2"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("PATCH", "/tray/customize", map[string]string{"variant_id": "bean_imaginary"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddSoldOutItemRefused(t *testing.T) {
	f := setupTrayFixture(t)

	_, err := f.inventory.ToggleSoldOut("khalifa", "d_choc_chip", "console-1")
	assert.NoError(t, err)
	defer func() {
		_, err := f.inventory.ToggleSoldOut("khalifa", "d_choc_chip", "console-1")
		assert.NoError(t, err)
	}()

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "d_choc_chip"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmRefusedWhenItemSoldOutMidCustomization(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "esp2"})
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := f.inventory.ToggleSoldOut("khalifa", "esp2", "console-1")
	assert.NoError(t, err)
	defer func() {
		_, err := f.inventory.ToggleSoldOut("khalifa", "esp2", "console-1")
		assert.NoError(t, err)
	}()

	w = f.do("PATCH", "/tray/customize", map[string]string{
		"variant_id":    "bean_classic",
		"temperature":   "Hot",
		"serving_style": "Dine In",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("POST", "/tray/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The abandoned customization is gone.
	w = f.do("POST", "/tray/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveLineAndClose(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "d_choc_chip"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = f.do("POST", "/tray/items", map[string]string{"item_id": "fob_choc"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("DELETE", "/tray/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp trayEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Tray.Lines, 1)
	assert.Equal(t, "Chocolate Croissant", resp.Data.Tray.Lines[0].Name)
	assert.Equal(t, 17.0, resp.Data.Total)

	w = f.do("DELETE", "/tray/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do("POST", "/tray/close", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("GET", "/tray", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Tray.Open)
	assert.Len(t, resp.Data.Tray.Lines, 1)
}

func TestTrayRequiresSession(t *testing.T) {
	f := setupTrayFixture(t)

	req, _ := http.NewRequest("GET", "/tray", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBranchSwitchClearsTray(t *testing.T) {
	f := setupTrayFixture(t)

	w := f.do("POST", "/tray/items", map[string]string{"item_id": "d_choc_chip"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("POST", "/session/branch", map[string]string{"branch_id": "marina"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("GET", "/tray", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp trayEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Tray.Lines)
	assert.Equal(t, 0.0, resp.Data.Total)
}
