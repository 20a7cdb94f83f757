// Package query builds the parameterized count and data statements behind
// every paginated listing.
package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 1000
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortColumns is the whitelist translating public sort tokens to columns.
// Keys are matched case-insensitively.
type SortColumns struct {
	Default string
	Columns map[string]string
}

// NewSortColumns whitelists columns under their snake_case name and the
// same name without underscores, which is how camelCase tokens arrive
// once lowercased. def is the fallback column.
func NewSortColumns(def string, columns ...string) SortColumns {
	s := SortColumns{Default: def, Columns: make(map[string]string, 2*len(columns))}
	for _, c := range columns {
		s.Columns[c] = c
		s.Columns[strings.ReplaceAll(c, "_", "")] = c
	}
	return s
}

// Resolve parses "<field>,<asc|desc>". Unknown fields fall back to Default
// and anything but "desc" sorts ascending; raw input never reaches SQL.
func (s SortColumns) Resolve(raw string) (string, Direction) {
	field, dir, _ := strings.Cut(raw, ",")

	column, ok := s.Columns[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		column = s.Default
	}

	if strings.EqualFold(strings.TrimSpace(dir), string(Desc)) {
		return column, Desc
	}
	return column, Asc
}

type Params struct {
	Page int    `json:"page"`
	Size int    `json:"size"`
	Sort string `json:"sort"`
}

// Offset saturates at math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

type Statement struct {
	SQL  string
	Args []any
}

type Queries struct {
	Count Statement
	Data  Statement
}

// Builder accumulates a filter predicate shared by the count and data
// statements. Column names always come from code.
type Builder struct {
	table   string
	id      string
	columns []string
	sort    SortColumns
	conds   []string
	args    []any
}

func NewBuilder(table, id string, columns []string, sort SortColumns) *Builder {
	return &Builder{table: table, id: id, columns: columns, sort: sort}
}

// Where adds a condition. Each "?" in cond binds the next arg.
func (b *Builder) Where(cond string, args ...any) *Builder {
	var sb strings.Builder
	next := 0
	for _, r := range cond {
		if r == '?' && next < len(args) {
			b.args = append(b.args, args[next])
			next++
			sb.WriteString("$" + strconv.Itoa(len(b.args)))
			continue
		}
		sb.WriteRune(r)
	}
	b.conds = append(b.conds, sb.String())
	return b
}

// Eq matches a categorical column exactly. Empty values are ignored.
func (b *Builder) Eq(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" = ?", value)
}

// Contains is a case-insensitive substring match. Empty values are ignored.
func (b *Builder) Contains(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" ILIKE ?", "%"+escapeLike(value)+"%")
}

// Flag matches a boolean column. A nil value is ignored.
func (b *Builder) Flag(column string, value *bool) *Builder {
	if value == nil {
		return b
	}
	return b.Where(column+" = ?", *value)
}

func (b *Builder) Build(p Params) Queries {
	where := ""
	if len(b.conds) > 0 {
		where = " WHERE " + strings.Join(b.conds, " AND ")
	}

	column, dir := b.sort.Resolve(p.Sort)
	order := fmt.Sprintf("%s %s", column, dir)
	if b.id != "" && b.id != column {
		order += fmt.Sprintf(", %s %s", b.id, dir)
	}

	n := len(b.args)
	data := make([]any, 0, n+2)
	data = append(data, b.args...)
	data = append(data, p.Size, p.Offset())

	return Queries{
		Count: Statement{
			SQL:  "SELECT COUNT(*) FROM " + b.table + where,
			Args: append([]any(nil), b.args...),
		},
		Data: Statement{
			SQL: fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
				strings.Join(b.columns, ", "), b.table, where, order, n+1, n+2),
			Args: data,
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
