package routes

import (
	"testing"

	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := Setup(&Handlers{}, &Deps{
		Cfg: &config.Config{
			RateLimit: config.RateLimitConfig{Requests: 100, Duration: 60},
		},
	})

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestGenerateNumberRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	// Number generation answers on both methods
	assert.True(t, routes["GET /api/v1/cash-vouchers/generate-number"])
	assert.True(t, routes["POST /api/v1/cash-vouchers/generate-number"])
	assert.True(t, routes["GET /api/v1/cheque-vouchers/generate-number"])
	assert.True(t, routes["POST /api/v1/cheque-vouchers/generate-number"])
}

func TestVoucherRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["POST /api/v1/cash-vouchers"])
	assert.True(t, routes["POST /api/v1/cash-vouchers/:id/approve"])
	assert.True(t, routes["POST /api/v1/cash-vouchers/:id/mark-as-paid"])
	assert.True(t, routes["POST /api/v1/cash-vouchers/:id/cancel"])
	assert.True(t, routes["GET /api/v1/cash-vouchers/:id/export"])
	assert.True(t, routes["DELETE /api/v1/cheque-vouchers/:id"])
	assert.True(t, routes["GET /api/v1/activity-logs"])
	assert.True(t, routes["GET /api/v1/reports/summary"])
}
