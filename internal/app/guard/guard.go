// Package guard implements the client-side navigation gate for the two
// dashboards. It trusts whatever the session store says and performs no
// signature check, so it is UX gating only; real authorization happens in
// the API middleware.
package guard

import "green_valley_api/internal/domain/model"

const (
	LoginPath          = "/login"
	UserDashboardPath  = "/user/dashboard"
	AdminDashboardPath = "/admin/dashboard"
)

type Action int

const (
	ActionRender Action = iota
	ActionRedirect
)

// Decision is the outcome of evaluating one protected navigation.
type Decision struct {
	Action Action
	// Target is the redirect destination; empty when Action is ActionRender.
	Target string
}

// Evaluate gates one navigation. requiredRole may be empty, meaning any
// authenticated session is admitted. No token redirects to login; a role
// mismatch redirects to the session's own dashboard root.
func Evaluate(store SessionStore, requiredRole string) Decision {
	token, ok := store.Get(KeyToken)
	if !ok || token == "" {
		return Decision{Action: ActionRedirect, Target: LoginPath}
	}

	if requiredRole != "" {
		role, _ := store.Get(KeyUserRole)
		if role != requiredRole {
			target := UserDashboardPath
			if role == model.RoleAdmin {
				target = AdminDashboardPath
			}
			return Decision{Action: ActionRedirect, Target: target}
		}
	}

	return Decision{Action: ActionRender}
}
