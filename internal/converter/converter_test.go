package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/restaurant-inventory/internal/model"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

func TestFormToCreateInventoryItemParams(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		form    restaurantv1.CreateInventoryItemForm
		want    model.CreateInventoryItemParams
		wantErr bool
	}

	tests := []testCase{
		{
			name: "parses numbers",
			form: restaurantv1.CreateInventoryItemForm{
				Name: "Flour", Yield: "10", Unit: "kg", Supplier: "AcmeFoods", Cost: "20", Quantity: "5.5",
			},
			want: model.CreateInventoryItemParams{
				Name: "Flour", Yield: 10, Unit: "kg", Supplier: "AcmeFoods", Cost: 20, Quantity: 5.5,
			},
		},
		{
			name: "absent numbers are zero",
			form: restaurantv1.CreateInventoryItemForm{Name: "Salt"},
			want: model.CreateInventoryItemParams{Name: "Salt"},
		},
		{
			name:    "not a number",
			form:    restaurantv1.CreateInventoryItemForm{Cost: "abc"},
			wantErr: true,
		},
		{
			name:    "infinity is rejected",
			form:    restaurantv1.CreateInventoryItemForm{Yield: "Inf"},
			wantErr: true,
		},
		{
			name:    "out of range is rejected",
			form:    restaurantv1.CreateInventoryItemForm{Quantity: "1e400"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormToCreateInventoryItemParams(tt.form)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPurchaseOrderToAPIEmptyItems(t *testing.T) {
	t.Parallel()

	res := PurchaseOrderToAPI(&model.PurchaseOrder{ID: gofakeit.UUID(), Supplier: "Nobody"})

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"items":[]`)
	assert.Contains(t, string(b), `"totalCost":0`)
}

func TestCostPerUnitToAPINullForZeroYield(t *testing.T) {
	t.Parallel()

	res := CostPerUnitToAPI([]model.CostPerUnitEntry{
		{Name: "Flour", Unit: "kg", CostPerUnit: lo.ToPtr(2.0)},
		{Name: "Salt", Unit: "g"},
	})

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name":"Flour","unit":"kg","costPerUnit":2},{"name":"Salt","unit":"g","costPerUnit":null}]`,
		string(b),
	)
}

func TestPurchaseOrderCreatedToPayload(t *testing.T) {
	t.Parallel()

	event := model.PurchaseOrderCreated{
		EventID:    uuid.New(),
		OrderID:    gofakeit.UUID(),
		Supplier:   "AcmeFoods",
		ItemsCount: 2,
		TotalCost:  120,
		CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	payload, err := NewEventConverter().PurchaseOrderCreatedToPayload(event)
	require.NoError(t, err)

	var got restaurantv1.PurchaseOrderCreatedEvent
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, event.EventID.String(), got.EventID)
	assert.Equal(t, event.OrderID, got.OrderID)
	assert.Equal(t, 2, got.ItemsCount)
	assert.Equal(t, 120.0, got.TotalCost)
	assert.True(t, event.CreatedAt.Equal(got.CreatedAt))
}
