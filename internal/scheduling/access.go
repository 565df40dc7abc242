package scheduling

// Permission codes granted by the external auth collaborator
const (
	PermissionRunBasic    = "schedule.run.basic"
	PermissionRunAdvanced = "schedule.run.advanced"
	PermissionCreate      = "schedule.create"
	PermissionEdit        = "schedule.edit"
	PermissionView        = "schedule.view"
)

// PermissionCodes are the raw capability flags of an actor
type PermissionCodes struct {
	HasRunBasicCode    bool `json:"hasRunBasicCode"`
	HasRunAdvancedCode bool `json:"hasRunAdvancedCode"`
	CanCreate          bool `json:"canCreate"`
	CanEdit            bool `json:"canEdit"`
}

// RunAccess says which scheduling profiles an actor may invoke
type RunAccess struct {
	CanRunBasic    bool `json:"canRunBasic"`
	CanRunAdvanced bool `json:"canRunAdvanced"`
}

// Any reports whether at least one profile is available
func (a RunAccess) Any() bool {
	return a.CanRunBasic || a.CanRunAdvanced
}

// PermissionState carries granular run flags once they have been loaded
type PermissionState struct {
	Loaded bool
	Access RunAccess
}

// RunActionState is what the run action depends on
type RunActionState struct {
	OrdersCount int
	Loading     bool
	Access      RunAccess
}

// DeriveRunPermissionsFromCodes maps capability flags to run access.
// Advanced needs edit-level trust; basic is also unlocked by create or edit.
func DeriveRunPermissionsFromCodes(codes PermissionCodes) RunAccess {
	return RunAccess{
		CanRunBasic:    codes.HasRunBasicCode || codes.CanCreate || codes.CanEdit,
		CanRunAdvanced: codes.HasRunAdvancedCode || codes.CanEdit,
	}
}

// ResolveRunPermissions uses the granular state once loaded and the coarse
// fallback before that. The two are never merged.
func ResolveRunPermissions(state PermissionState, fallback RunAccess) RunAccess {
	if !state.Loaded {
		return fallback
	}
	return state.Access
}

// ResolveProfileForExecution downgrades an advanced request to basic when the
// actor holds only basic access. Anything else is returned unchanged, including
// the no-access case, which IsRunActionDisabled gates.
func ResolveProfileForExecution(requested Profile, access RunAccess) Profile {
	if requested == ProfileAdvanced && !access.CanRunAdvanced && access.CanRunBasic {
		return ProfileBasic
	}
	return requested
}

// IsRunActionDisabled is true with no orders, a run in flight, or no access
func IsRunActionDisabled(state RunActionState) bool {
	return state.OrdersCount == 0 || state.Loading || !state.Access.Any()
}

// CodesFromPermissions reads capability flags out of a permission code list
func CodesFromPermissions(permissions []string) PermissionCodes {
	var codes PermissionCodes
	for _, p := range permissions {
		switch p {
		case PermissionRunBasic:
			codes.HasRunBasicCode = true
		case PermissionRunAdvanced:
			codes.HasRunAdvancedCode = true
		case PermissionCreate:
			codes.CanCreate = true
		case PermissionEdit:
			codes.CanEdit = true
		}
	}
	return codes
}

// RunAccessFromPermissions derives run access straight from permission codes
func RunAccessFromPermissions(permissions []string) RunAccess {
	return DeriveRunPermissionsFromCodes(CodesFromPermissions(permissions))
}
