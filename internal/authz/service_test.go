package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func mustEnforceRole(t *testing.T, svc *Service, role, obj, act string) bool {
	t.Helper()
	allow, err := svc.EnforceRole(role, obj, act)
	if err != nil {
		t.Fatalf("enforce role failed: %v", err)
	}
	return allow
}

func TestEnforceRoleWithGrantedPolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("moderator", "/admin/products/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	if !mustEnforceRole(t, svc, "moderator", "/api/admin/products/42", "get") {
		t.Fatalf("expected allow=true")
	}
	if mustEnforceRole(t, svc, "moderator", "/api/admin/products/42", "POST") {
		t.Fatalf("expected allow=false for unlisted action")
	}
	if mustEnforceRole(t, svc, "moderator", "/api/admin/orders", "GET") {
		t.Fatalf("expected allow=false for unlisted route")
	}
}

func TestRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("moderator", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if !mustEnforceRole(t, svc, "moderator", "/api/admin/orders", "GET") {
		t.Fatalf("expected allow before revoke")
	}

	if err := svc.RevokeRolePolicy("moderator", "/admin/orders", "GET"); err != nil {
		t.Fatalf("revoke role policy failed: %v", err)
	}
	if mustEnforceRole(t, svc, "moderator", "/api/admin/orders", "GET") {
		t.Fatalf("expected deny after revoke")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	// Every role owns the authenticated storefront surface.
	for _, role := range []string{constants.RoleClient, constants.RoleSupplier, constants.RoleAdmin} {
		if !mustEnforceRole(t, svc, role, "/api/cart/add", "POST") {
			t.Fatalf("role %q should reach the cart", role)
		}
		if !mustEnforceRole(t, svc, role, "/api/orders/7", "GET") {
			t.Fatalf("role %q should read own orders", role)
		}
	}

	// Supplier routes stay off limits for clients.
	if mustEnforceRole(t, svc, constants.RoleClient, "/api/supplier/sales-evolution", "GET") {
		t.Fatalf("client must not reach supplier reporting")
	}
	if !mustEnforceRole(t, svc, constants.RoleSupplier, "/api/supplier/sales-evolution", "GET") {
		t.Fatalf("supplier should reach supplier reporting")
	}
	if !mustEnforceRole(t, svc, constants.RoleSupplier, "/api/supplier/orders/12/status", "PUT") {
		t.Fatalf("supplier should update own order statuses")
	}

	// Supplier account creation is an admin action on /supplier itself.
	if mustEnforceRole(t, svc, constants.RoleSupplier, "/api/supplier", "POST") {
		t.Fatalf("supplier must not create supplier accounts")
	}
	if !mustEnforceRole(t, svc, constants.RoleAdmin, "/api/supplier", "POST") {
		t.Fatalf("admin should create supplier accounts")
	}

	// Admin surface is admin-only.
	if !mustEnforceRole(t, svc, constants.RoleAdmin, "/api/admin/orders/3/status", "PUT") {
		t.Fatalf("admin should update any order status")
	}
	if mustEnforceRole(t, svc, constants.RoleSupplier, "/api/admin/orders", "GET") {
		t.Fatalf("supplier must not list all orders")
	}

	// Idempotent on restart.
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
}
