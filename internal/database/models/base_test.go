package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseModelStamp(t *testing.T) {
	var fresh ShiftTemplate
	fresh.Stamp("u-1")
	assert.Equal(t, "u-1", fresh.CreatedBy)
	assert.Equal(t, "u-1", fresh.UpdatedBy)

	fresh.Stamp("u-2")
	assert.Equal(t, "u-1", fresh.CreatedBy)
	assert.Equal(t, "u-2", fresh.UpdatedBy)

	stored := DailySchedule{BaseModel: BaseModel{ID: uuid.New(), CreatedBy: "seed"}}
	stored.Stamp("u-3")
	assert.Equal(t, "seed", stored.CreatedBy)
	assert.Equal(t, "u-3", stored.UpdatedBy)
}

func TestBaseModelBeforeCreate(t *testing.T) {
	var h Holiday
	assert.NoError(t, h.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, h.ID)

	id := uuid.New()
	h = Holiday{BaseModel: BaseModel{ID: id}}
	assert.NoError(t, h.BeforeCreate(nil))
	assert.Equal(t, id, h.ID)
}
