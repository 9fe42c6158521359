package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReadOnlyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"plain select", "SELECT * FROM orders LIMIT 10", true},
		{"lowercase select", "select name from inventory_items", true},
		{"cte", "WITH low AS (SELECT * FROM inventory_stock) SELECT * FROM low", true},
		{"insert", "INSERT INTO orders (id) VALUES ('x')", false},
		{"update", "UPDATE orders SET status = 'shipped'", false},
		{"delete", "DELETE FROM warehouse_locations", false},
		{"drop", "DROP TABLE orders", false},
		{"stacked statements", "SELECT 1; DROP TABLE orders", false},
		{"select hiding delete", "SELECT * FROM orders; delete from orders", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isReadOnlyQuery(tt.query))
		})
	}
}
