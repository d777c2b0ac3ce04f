package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dbDialectName returns the dialect name, defaulting to sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// salesBucketExpr builds the period bucket expression over order_date,
// compatible with sqlite and postgres. Week buckets use ISO year-week
// so the last days of December land in the right bucket.
func salesBucketExpr(db *gorm.DB, period string) string {
	return salesBucketExprByDialect(dbDialectName(db), period)
}

func salesBucketExprByDialect(dialect, period string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		switch period {
		case "week":
			return "to_char(orders.order_date, 'IYYY-IW')"
		case "month":
			return "to_char(orders.order_date, 'YYYY-MM')"
		default:
			return "to_char(orders.order_date, 'YYYY-MM-DD')"
		}
	default:
		switch period {
		case "week":
			return "strftime('%G-%V', orders.order_date)"
		case "month":
			return "strftime('%Y-%m', orders.order_date)"
		default:
			return "strftime('%Y-%m-%d', orders.order_date)"
		}
	}
}

// applyRowLock adds FOR UPDATE on dialects that support it. SQLite has
// no row locks; its write transactions serialize on the database file.
func applyRowLock(query *gorm.DB) *gorm.DB {
	switch dbDialectName(query) {
	case "postgres", "postgresql":
		return query.Clauses(clause.Locking{Strength: "UPDATE"})
	default:
		return query
	}
}
