package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"merchant-portal.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:     &handlers.AuthHandler{},
		merchantHandler: &handlers.MerchantHandler{},
		batchHandler:    &handlers.BatchHandler{},
		dfspHandler:     &handlers.DFSPHandler{},
		auditHandler:    &handlers.AuditHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 15 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/register"},
		{"GET", "/api/v1/auth/profile"},
		{"POST", "/api/v1/merchants"},
		{"PUT", "/api/v1/merchants/:id/business"},
		{"PUT", "/api/v1/merchants/:id/contact"},
		{"POST", "/api/v1/merchants/:id/submit"},
		{"POST", "/api/v1/merchants/batch"},
		{"GET", "/api/v1/merchants/:id"},
		{"POST", "/api/v1/dfsps"},
		{"GET", "/api/v1/audit-logs"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     &handlers.AuthHandler{},
		merchantHandler: &handlers.MerchantHandler{},
		batchHandler:    &handlers.BatchHandler{},
		dfspHandler:     &handlers.DFSPHandler{},
		auditHandler:    &handlers.AuditHandler{},
		authMiddleware:  func(c *gin.Context) { c.Next() },
	})

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
