package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moyo_dispatch/internal/adapter/http/handlers/mocks"
	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSupplierHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers/applications", asUser("uid-1", "deng@example.com"), h.Apply)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers/applications", bytes.NewBufferString(`{"name":"Deng"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("identity comes from the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.ApplyInput) (entities.SupplierApplication, error) {
				if in.UserID != "uid-1" || in.Email != "deng@example.com" {
					t.Fatalf("unexpected identity: %+v", in)
				}
				return entities.SupplierApplication{
					ID: "app-1", UserID: in.UserID, Name: in.Name,
					Status: entities.ApplicationStatusPending,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/suppliers/applications", asUser("uid-1", "deng@example.com"), h.Apply)

		body := `{"name":"Deng Majok","national_id":"SSD-99120","vehicle_plate":"ssd 104","tanker_photo":"data:image/jpeg;base64,x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers/applications", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate application maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(entities.SupplierApplication{}, usecase.ErrApplicationAlreadyExists)

		r := gin.New()
		r.POST("/v1/suppliers/applications", asUser("uid-1", ""), h.Apply)

		body := `{"name":"Deng Majok","national_id":"SSD-99120","vehicle_plate":"SSD 104","tanker_photo":"data:image/jpeg;base64,x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers/applications", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSupplierHandler_GetMyApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no application yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{}, usecase.ErrApplicationNotFound)

		r := gin.New()
		r.GET("/v1/suppliers/applications/me", asUser("uid-1", ""), h.GetMyApplication)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers/applications/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the caller's application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{
			ID: "app-1", UserID: "uid-1", Status: entities.ApplicationStatusApproved,
		}, nil)

		r := gin.New()
		r.GET("/v1/suppliers/applications/me", asUser("uid-1", ""), h.GetMyApplication)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers/applications/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["id"] != "app-1" || res["status"] != "approved" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestSupplierHandler_ListApprovedSuppliers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISupplierUseCase(ctrl)
	h := NewSupplierHandler(uc)

	uc.EXPECT().ListApproved(gomock.Any()).Return([]entities.SupplierApplication{
		{ID: "app-1", Name: "Juba Water Co", Status: entities.ApplicationStatusApproved},
	}, nil)

	r := gin.New()
	r.GET("/v1/suppliers/approved", h.ListApprovedSuppliers)

	req := httptest.NewRequest(http.MethodGet, "/v1/suppliers/approved", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res) != 1 || res[0]["status"] != "approved" {
		t.Fatalf("unexpected response: %v", res)
	}
}

func TestSupplierHandler_ApproveApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), "app-1").Return(entities.SupplierApplication{
			ID: "app-1", Status: entities.ApplicationStatusApproved,
		}, nil)

		r := gin.New()
		r.PATCH("/v1/suppliers/applications/:id/approve", h.ApproveApplication)

		req := httptest.NewRequest(http.MethodPatch, "/v1/suppliers/applications/app-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), "ghost").Return(entities.SupplierApplication{}, usecase.ErrApplicationNotFound)

		r := gin.New()
		r.PATCH("/v1/suppliers/applications/:id/approve", h.ApproveApplication)

		req := httptest.NewRequest(http.MethodPatch, "/v1/suppliers/applications/ghost/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSupplierHandler_SuspendApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISupplierUseCase(ctrl)
	h := NewSupplierHandler(uc)

	uc.EXPECT().Suspend(gomock.Any(), "app-1").Return(entities.SupplierApplication{
		ID: "app-1", Status: entities.ApplicationStatusSuspended,
	}, nil)

	r := gin.New()
	r.PATCH("/v1/suppliers/applications/:id/suspend", h.SuspendApplication)

	req := httptest.NewRequest(http.MethodPatch, "/v1/suppliers/applications/app-1/suspend", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res["status"] != "suspended" {
		t.Fatalf("unexpected response: %v", res)
	}
}
