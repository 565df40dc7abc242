package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRunPermissionsFromCodes(t *testing.T) {
	testCases := []struct {
		name  string
		codes PermissionCodes
		want  RunAccess
	}{
		{"nothing", PermissionCodes{}, RunAccess{}},
		{"basic code only", PermissionCodes{HasRunBasicCode: true}, RunAccess{CanRunBasic: true}},
		{"advanced code only", PermissionCodes{HasRunAdvancedCode: true}, RunAccess{CanRunAdvanced: true}},
		{"create falls back to basic", PermissionCodes{CanCreate: true}, RunAccess{CanRunBasic: true}},
		{"edit unlocks both", PermissionCodes{CanEdit: true}, RunAccess{CanRunBasic: true, CanRunAdvanced: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveRunPermissionsFromCodes(tc.codes))
		})
	}
}

func TestResolveRunPermissions(t *testing.T) {
	fallback := RunAccess{CanRunBasic: true, CanRunAdvanced: true}

	t.Run("uses fallback until loaded", func(t *testing.T) {
		got := ResolveRunPermissions(PermissionState{Access: RunAccess{}}, fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("loaded state is used exclusively", func(t *testing.T) {
		state := PermissionState{Loaded: true, Access: RunAccess{CanRunBasic: true}}
		assert.Equal(t, RunAccess{CanRunBasic: true}, ResolveRunPermissions(state, fallback))
	})
}

func TestResolveProfileForExecution(t *testing.T) {
	assert.Equal(t, ProfileBasic, ResolveProfileForExecution(ProfileAdvanced, RunAccess{CanRunBasic: true}))
	assert.Equal(t, ProfileAdvanced, ResolveProfileForExecution(ProfileAdvanced, RunAccess{}))
	assert.Equal(t, ProfileAdvanced, ResolveProfileForExecution(ProfileAdvanced, RunAccess{CanRunBasic: true, CanRunAdvanced: true}))
	assert.Equal(t, ProfileBasic, ResolveProfileForExecution(ProfileBasic, RunAccess{CanRunAdvanced: true}))
}

func TestIsRunActionDisabled(t *testing.T) {
	access := RunAccess{CanRunBasic: true}

	assert.True(t, IsRunActionDisabled(RunActionState{OrdersCount: 0, Access: access}))
	assert.True(t, IsRunActionDisabled(RunActionState{OrdersCount: 3, Loading: true, Access: access}))
	assert.True(t, IsRunActionDisabled(RunActionState{OrdersCount: 3}))
	assert.False(t, IsRunActionDisabled(RunActionState{OrdersCount: 3, Access: access}))
}

func TestRunAccessFromPermissions(t *testing.T) {
	got := RunAccessFromPermissions([]string{PermissionView, PermissionCreate})
	assert.Equal(t, RunAccess{CanRunBasic: true}, got)

	got = RunAccessFromPermissions([]string{PermissionRunAdvanced})
	assert.Equal(t, RunAccess{CanRunAdvanced: true}, got)
}

func TestProfileApply(t *testing.T) {
	cfg := DefaultConfig()

	basic := ProfileBasic.Apply(cfg)
	assert.False(t, basic.AllowBatchContinuity)
	assert.Equal(t, 1, basic.MaxRescheduleAttempts)

	assert.Equal(t, cfg, ProfileAdvanced.Apply(cfg))
}
