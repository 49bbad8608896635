package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "vehicle-auction/internal/auctionService"
	model "vehicle-auction/internal/models"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with in-memory repositories for
// integration testing and hands back the vehicle repo for seeding.
func SetupTestRouter(vehicles ...model.Vehicle) (*gin.Engine, *repository.MemoryVehicleRepo) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := repository.NewMemoryVehicleRepo()
	for _, v := range vehicles {
		vehicleRepo.AddVehicle(v)
	}

	userRepo := repository.NewMemoryUserRepo()
	service := auction.NewAuctionService(vehicleRepo, userRepo)
	router := server.SetupRouter(service)
	return router, vehicleRepo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data object from a response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
