package scheduling

import (
	"encoding/json"
	"testing"

	"production-scheduler-backend/internal/calendar"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrder(t *testing.T) {
	valid := Order{
		PartNumber:    "P-100",
		OrderQuantity: 5,
		Priority:      PriorityNormal,
		DueDate:       calendar.MustParseDate("2025-03-01"),
	}

	testCases := []struct {
		name       string
		mutate     func(o *Order)
		wantErrors []string
	}{
		{
			name:       "valid order",
			mutate:     func(o *Order) {},
			wantErrors: []string{},
		},
		{
			name: "empty part number and zero quantity are both reported",
			mutate: func(o *Order) {
				o.PartNumber = ""
				o.OrderQuantity = 0
			},
			wantErrors: []string{"Part number is required", "Order quantity must be greater than 0"},
		},
		{
			name:       "blank part number",
			mutate:     func(o *Order) { o.PartNumber = "   " },
			wantErrors: []string{"Part number is required"},
		},
		{
			name:       "negative quantity",
			mutate:     func(o *Order) { o.OrderQuantity = -3 },
			wantErrors: []string{"Order quantity must be greater than 0"},
		},
		{
			name:       "unknown priority",
			mutate:     func(o *Order) { o.Priority = "Urgent" },
			wantErrors: []string{"Priority must be one of High, Normal, Low"},
		},
		{
			name:       "missing due date",
			mutate:     func(o *Order) { o.DueDate = calendar.Date{} },
			wantErrors: []string{"Due date is required"},
		},
		{
			name: "everything wrong",
			mutate: func(o *Order) {
				*o = Order{}
			},
			wantErrors: []string{
				"Part number is required",
				"Order quantity must be greater than 0",
				"Priority must be one of High, Normal, Low",
				"Due date is required",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := valid
			tc.mutate(&o)

			result := ValidateOrder(o)

			assert.Equal(t, len(tc.wantErrors) == 0, result.IsValid)
			assert.Equal(t, tc.wantErrors, result.Errors)
		})
	}
}

func TestOrderValidator_SharedInstance(t *testing.T) {
	v := NewOrderValidator(validator.New())

	result := v.Validate(Order{PartNumber: "P1", OrderQuantity: 1, Priority: PriorityLow})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Due date is required"}, result.Errors)
}

func TestValidateMachineAssignment(t *testing.T) {
	eligible := NewMachineSet("VMC01", "VMC02")

	assert.True(t, ValidateMachineAssignment("VMC01", eligible))
	assert.False(t, ValidateMachineAssignment("VMC03", eligible))
	assert.False(t, ValidateMachineAssignment("", eligible))
	assert.False(t, ValidateMachineAssignment("VMC01", nil))
	assert.False(t, ValidateMachineAssignment("VMC01", MachineSet{}))
}

func TestMachineSetJSON(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"partNumber":"P1","eligibleMachines":["VMC02","VMC01"]}`), &o))
	assert.True(t, o.EligibleMachines.Has("VMC01"))
	assert.Equal(t, []string{"VMC01", "VMC02"}, o.EligibleMachines.Names())

	out, err := json.Marshal(o.EligibleMachines)
	require.NoError(t, err)
	assert.JSONEq(t, `["VMC01","VMC02"]`, string(out))

	var absent Order
	require.NoError(t, json.Unmarshal([]byte(`{"partNumber":"P1"}`), &absent))
	assert.Nil(t, absent.EligibleMachines)
}

func TestSortOrders(t *testing.T) {
	orders := []Order{
		{ID: "a", Priority: PriorityLow, DueDate: calendar.MustParseDate("2025-01-01")},
		{ID: "b", Priority: PriorityNormal, DueDate: calendar.MustParseDate("2025-01-05")},
		{ID: "c", Priority: PriorityHigh, DueDate: calendar.MustParseDate("2025-01-09")},
		{ID: "d", Priority: PriorityNormal, DueDate: calendar.MustParseDate("2025-01-02")},
		{ID: "e", Priority: PriorityNormal, DueDate: calendar.MustParseDate("2025-01-05")},
		{ID: "f", Priority: PriorityHigh},
	}

	sorted := SortOrders(orders)

	ids := make([]string, len(sorted))
	for i, o := range sorted {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"c", "f", "d", "b", "e", "a"}, ids)
	assert.Equal(t, "a", orders[0].ID, "input must not be reordered")
}
