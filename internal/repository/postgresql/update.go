package postgresql

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// buildUpdate renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
// Columns are emitted in name order so the statement is stable across calls.
func buildUpdate(table string, updates map[string]interface{}, id string, returning string) (string, []interface{}) {
	updates["updated_at"] = time.Now()

	cols := make([]string, 0, len(updates))
	for col := range updates {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	setClauses := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, updates[col])
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(setClauses, ", "), len(args), returning)
	return sql, args
}
