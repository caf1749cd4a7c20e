package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

func TestRequireFields(t *testing.T) {
	tests := []struct {
		name      string
		payload   Payload
		wantField string
	}{
		{name: "all present", payload: Payload{"name": "Pizza", "price": 10.0}},
		{name: "missing", payload: Payload{"name": "Pizza"}, wantField: "price"},
		{name: "blank string", payload: Payload{"name": "   ", "price": 10.0}, wantField: "name"},
		{name: "null", payload: Payload{"name": nil, "price": 10.0}, wantField: "name"},
		{name: "first failing field wins", payload: Payload{}, wantField: "name"},
		{name: "zero is present", payload: Payload{"name": "Pizza", "price": 0.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFields(tt.payload, "name", "price")
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestParsePositiveNumber(t *testing.T) {
	for _, ok := range []any{10.0, "12.5", json.Number("8"), 3, " 7 "} {
		n, err := ParsePositiveNumber("price", ok)
		require.NoError(t, err, "value %v", ok)
		assert.Greater(t, n, 0.0)
	}
	for _, bad := range []any{0.0, -1, "abc", "", nil, "NaN", "Inf"} {
		_, err := ParsePositiveNumber("price", bad)
		require.Error(t, err, "value %v", bad)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestParsePhoneBoundary(t *testing.T) {
	_, err := ParsePhone("tel", "2460090")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 8 digits")

	phone, err := ParsePhone("tel", "24600900")
	require.NoError(t, err)
	assert.Equal(t, int64(24600900), phone)

	phone, err = ParsePhone("tel", 23129129.0)
	require.NoError(t, err)
	assert.Equal(t, int64(23129129), phone)

	phone, err = ParsePhone("tel", json.Number("29000000.0"))
	require.NoError(t, err)
	assert.Equal(t, int64(29000000), phone)

	for _, bad := range []any{"246009001", "02460090", "tel", nil, -24600900, "29000000.5", json.Number("2.9e7.1")} {
		_, err := ParsePhone("tel", bad)
		require.Error(t, err, "value %v", bad)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("dishId", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	for _, bad := range []any{"0", "-2", "x", 1.5, nil} {
		_, err := ParseID("dishId", bad)
		require.Error(t, err, "value %v", bad)
	}
}

type sampleCommand struct {
	Name  string  `json:"name" validate:"notblank"`
	Price float64 `json:"price" validate:"gt=0"`
	Phone int64   `json:"tel" validate:"phone"`
}

func TestStructReportsJSONFieldName(t *testing.T) {
	require.NoError(t, Struct(sampleCommand{Name: "Ali", Price: 1, Phone: 24600900}))

	err := Struct(sampleCommand{Name: " ", Price: 1, Phone: 24600900})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "is required", verr.Reason)

	err = Struct(sampleCommand{Name: "Ali", Price: 1, Phone: 2460090})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tel", verr.Field)
}
