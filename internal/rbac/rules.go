package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"insight:evaluate",
		"insight:read",
		"insight:history",
		"snapshot:read",
		"snapshot:write",
	},
	"advisor": {
		"insight:*",
		"snapshot:*",
		"records:any-student",
	},
	"admin": {
		"*", // everything
	},
}
