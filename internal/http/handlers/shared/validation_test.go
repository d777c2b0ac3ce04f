package shared

import "testing"

func TestSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Email", "email"},
		{"ProductID", "product_id"},
		{"PasswordConfirmation", "password_confirmation"},
		{"quantity", "quantity"},
	}
	for _, tc := range cases {
		if got := snakeCase(tc.in); got != tc.want {
			t.Fatalf("snakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
