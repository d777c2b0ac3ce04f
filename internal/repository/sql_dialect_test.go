package repository

import "testing"

func TestSalesBucketExprByDialectSQLite(t *testing.T) {
	cases := map[string]string{
		"day":     "strftime('%Y-%m-%d', orders.order_date)",
		"week":    "strftime('%G-%V', orders.order_date)",
		"month":   "strftime('%Y-%m', orders.order_date)",
		"unknown": "strftime('%Y-%m-%d', orders.order_date)",
	}
	for period, want := range cases {
		got := salesBucketExprByDialect("sqlite", period)
		if got != want {
			t.Fatalf("sqlite bucket expr for %s: want %s got %s", period, want, got)
		}
	}
}

func TestSalesBucketExprByDialectPostgres(t *testing.T) {
	cases := map[string]string{
		"day":   "to_char(orders.order_date, 'YYYY-MM-DD')",
		"week":  "to_char(orders.order_date, 'IYYY-IW')",
		"month": "to_char(orders.order_date, 'YYYY-MM')",
	}
	for period, want := range cases {
		got := salesBucketExprByDialect("postgres", period)
		if got != want {
			t.Fatalf("postgres bucket expr for %s: want %s got %s", period, want, got)
		}
	}
}

func TestDBDialectNameNilDefaultsToSQLite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db dialect want sqlite got %s", got)
	}
}
