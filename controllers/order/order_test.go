package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderID(t *testing.T) {
	id, ok := parseOrderID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = parseOrderID("20260829120000-1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.False(t, ok)

	_, ok = parseOrderID("")
	assert.False(t, ok)

	_, ok = parseOrderID("-1")
	assert.False(t, ok)
}

// Order refs always carry a dash, so they can never be mistaken for a
// numeric id when picking the lookup column.
func TestGenerateOrderRefNeverNumeric(t *testing.T) {
	ref := generateOrderRef()
	assert.Contains(t, ref, "-")

	_, ok := parseOrderID(ref)
	assert.False(t, ok)
}

func bindValidateDiscount(t *testing.T, body string) (ValidateDiscountRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/orders/validate-discount", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req ValidateDiscountRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestValidateDiscountRequestAllowsZeroAmount(t *testing.T) {
	req, err := bindValidateDiscount(t, `{"code":"SAVE10","order_amount":0}`)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", req.Code)
	assert.Equal(t, 0.0, req.OrderAmount)
}

func TestValidateDiscountRequestRejectsNegativeAmount(t *testing.T) {
	_, err := bindValidateDiscount(t, `{"code":"SAVE10","order_amount":-5}`)
	assert.Error(t, err)
}

func TestValidateDiscountRequestRequiresCode(t *testing.T) {
	_, err := bindValidateDiscount(t, `{"order_amount":50}`)
	assert.Error(t, err)
}
