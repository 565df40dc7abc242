package scheduling

import (
	"reflect"
	"strings"
	"sync"

	"production-scheduler-backend/internal/calendar"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationResult reports whether an order may enter the scheduler
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// OrderValidator checks orders against the field rules declared on Order
type OrderValidator struct {
	validate *validator.Validate
}

var (
	defaultValidator     *OrderValidator
	defaultValidatorOnce sync.Once
)

// NewOrderValidator registers the order rules on v
func NewOrderValidator(v *validator.Validate) *OrderValidator {
	if v == nil {
		v = validator.New()
	}
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(calendar.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, calendar.Date{})
	return &OrderValidator{validate: v}
}

// ValidateOrder validates with a shared validator instance
func ValidateOrder(order Order) ValidationResult {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewOrderValidator(nil)
	})
	return defaultValidator.Validate(order)
}

// Validate collects every failed rule of order. It never stops at the first one.
func (v *OrderValidator) Validate(order Order) ValidationResult {
	order.PartNumber = strings.TrimSpace(order.PartNumber)
	result := ValidationResult{IsValid: true, Errors: []string{}}

	err := v.validate.Struct(order)
	if err == nil {
		return result
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		result.IsValid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, fieldMessage(fe))
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "PartNumber":
		return "Part number is required"
	case "OrderQuantity":
		return "Order quantity must be greater than 0"
	case "Priority":
		return "Priority must be one of High, Normal, Low"
	case "DueDate":
		return "Due date is required"
	case "SetupMinutes":
		return "Setup minutes must not be negative"
	case "CycleMinutes":
		return "Cycle minutes must not be negative"
	}
	return fe.Field() + " failed on " + fe.Tag()
}

// ValidateMachineAssignment reports whether machine may run an order whose
// eligible set is eligible. An absent set or an empty machine is never valid.
func ValidateMachineAssignment(machine string, eligible MachineSet) bool {
	if machine == "" || eligible == nil {
		return false
	}
	return eligible.Has(machine)
}

// Validator checks a single order
type Validator interface {
	Validate(order Order) ValidationResult
}

var _ Validator = (*OrderValidator)(nil)
