package authz

import (
	"fmt"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
)

// RoleSeed describes one built-in role and its default policies.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the default role matrix. Clients own the
// authenticated storefront surface; suppliers and admins inherit it and
// add their own route families on top.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleClient,
			Policies: []Policy{
				{Object: "/user", Action: "GET"},
				{Object: "/logout", Action: "POST"},
				{Object: "/profile/remove-image", Action: "DELETE"},
				{Object: "/cart", Action: "GET"},
				{Object: "/cart/add", Action: "POST"},
				{Object: "/cart/update/:id", Action: "PUT"},
				{Object: "/cart/remove/:id", Action: "DELETE"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders", Action: "POST"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/:id", Action: "DELETE"},
			},
		},
		{
			Role:     constants.RoleSupplier,
			Inherits: []string{constants.RoleClient},
			Policies: []Policy{
				{Object: "/supplier/*", Action: "*"},
			},
		},
		{
			Role:     constants.RoleAdmin,
			Inherits: []string{constants.RoleClient},
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
				{Object: "/supplier", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the default role policies. Existing rules
// are left untouched, so operators can extend the matrix at runtime
// without losing their changes on restart.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddGroupingPolicy(role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}
