// Package resource implements the CRUD lifecycle shared by every catalog
// entity: filtered listing, lookup, key checks, insert, update and the two
// delete policies. Entity repositories describe their table once and
// delegate here.
package resource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

type DeletePolicy int

const (
	// HardDelete removes the row; its natural key becomes reusable.
	HardDelete DeletePolicy = iota
	// SoftDelete clears the active flag; the natural key stays reserved.
	SoftDelete
)

func (p DeletePolicy) String() string {
	if p == SoftDelete {
		return "soft"
	}
	return "hard"
}

type Table struct {
	Name     string
	ID       string
	Key      string // natural key column
	KeyLabel string // used in conflict messages, e.g. "Product SKU"
	// Active is the lifecycle flag column. Soft-deleted tables only return
	// rows where it is true.
	Active  string
	Columns []string
	Sort    query.SortColumns
	Delete  DeletePolicy
}

// live is the predicate every read applies, empty when all rows are live.
func (t *Table) live() string {
	if t.Delete == SoftDelete && t.Active != "" {
		return t.Active + " = true"
	}
	return ""
}

func (t *Table) Builder() *query.Builder {
	b := query.NewBuilder(t.Name, t.ID, t.Columns, t.Sort)
	if live := t.live(); live != "" {
		b.Where(live)
	}
	return b
}

// Assign is one column of an UPDATE's SET list.
type Assign struct {
	Column string
	Value  any
	// Keep leaves the current value in place when Value is nil.
	Keep bool
}

func Set(column string, value any) Assign { return Assign{Column: column, Value: value} }

func SetIfPresent(column string, value any) Assign {
	return Assign{Column: column, Value: value, Keep: true}
}

func (t *Table) returning() string {
	return " RETURNING " + strings.Join(t.Columns, ", ")
}

func (t *Table) insertSQL(columns []string) string {
	marks := make([]string, len(columns))
	for i := range columns {
		marks[i] = "$" + strconv.Itoa(i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		t.Name, strings.Join(columns, ", "), strings.Join(marks, ", "), t.returning())
}

// updateSQL binds the assignments first, then updated_at, then the id.
// updated_at never moves before created_at.
func (t *Table) updateSQL(set []Assign) string {
	parts := make([]string, 0, len(set)+1)
	for i, a := range set {
		mark := "$" + strconv.Itoa(i+1)
		if a.Keep {
			parts = append(parts, fmt.Sprintf("%s = COALESCE(%s, %s)", a.Column, mark, a.Column))
			continue
		}
		parts = append(parts, a.Column+" = "+mark)
	}
	n := len(set)
	parts = append(parts, fmt.Sprintf("updated_at = GREATEST($%d, created_at)", n+1))

	where := fmt.Sprintf("%s = $%d", t.ID, n+2)
	if live := t.live(); live != "" {
		where += " AND " + live
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s%s", t.Name, strings.Join(parts, ", "), where, t.returning())
}

func (t *Table) deleteSQL() string {
	if t.Delete == SoftDelete {
		return fmt.Sprintf("UPDATE %s SET %s = false, updated_at = GREATEST($2, created_at) WHERE %s = $1 AND %s = true",
			t.Name, t.Active, t.ID, t.Active)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.ID)
}

func (t *Table) keyExistsSQL() string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", t.Name, t.Key)
}

// selectSQL reads one live row matching cond, whose placeholders start at $1.
func (t *Table) selectSQL(cond string) string {
	where := cond
	if live := t.live(); live != "" {
		where += " AND " + live
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1", strings.Join(t.Columns, ", "), t.Name, where)
}
