package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnSetFirstAppearanceOrder(t *testing.T) {
	t.Parallel()
	c := NewColumnSet()
	c.Add("name")
	c.Add("industry")
	c.Add("name") // already present, position unchanged
	c.Add("description")

	assert.Equal(t, []string{"name", "industry", "description"}, c.Columns())
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains("industry"))
	assert.False(t, c.Contains("missing"))
}

func TestReconcilerHeterogeneousRows(t *testing.T) {
	t.Parallel()
	r := NewReconciler()

	a := NewRow()
	a.Set("name", "Acme")
	a.Set("industry", "Software")
	r.AddRow(a)

	b := NewRow()
	b.Set("name", "Globex")
	b.Set("description", "Big company")
	r.AddRow(b)

	// Header order = first appearance
	assert.Equal(t, []string{"name", "industry", "description"}, r.Columns())

	// Missing columns become empty cells
	assert.Equal(t, []string{"Acme", "Software", ""}, r.Cells(a))
	assert.Equal(t, []string{"Globex", "", "Big company"}, r.Cells(b))
	assert.Equal(t, 2, r.Len())
}

func TestReconcilerAddColumns(t *testing.T) {
	t.Parallel()
	r := NewReconciler()
	r.AddColumns("name", "industry")

	// Pre-registered columns survive without any row
	assert.Equal(t, []string{"name", "industry"}, r.Columns())
	assert.Equal(t, 0, r.Len())

	// Rows extend, never reorder, the pre-registered set
	row := NewRow()
	row.Set("description", "x")
	row.Set("name", "Acme")
	r.AddRow(row)
	assert.Equal(t, []string{"name", "industry", "description"}, r.Columns())
	assert.Equal(t, []string{"Acme", "", "x"}, r.Cells(row))
}

func TestReconcilerDeterministicOrder(t *testing.T) {
	t.Parallel()

	build := func() []string {
		r := NewReconciler()
		for _, columns := range [][]string{
			{"b", "a"},
			{"c", "a"},
			{"d"},
		} {
			row := NewRow()
			for _, col := range columns {
				row.Set(col, "x")
			}
			r.AddRow(row)
		}
		return r.Columns()
	}

	// Same input order -> identical header, every time
	first := build()
	assert.Equal(t, []string{"b", "a", "c", "d"}, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestRowSetOverwrite(t *testing.T) {
	t.Parallel()
	row := NewRow()
	row.Set("name", "first")
	row.Set("name", "second")

	assert.Equal(t, "second", row.Get("name"))
	assert.Equal(t, []string{"name"}, row.Columns())
	assert.True(t, row.Has("name"))
	assert.False(t, row.Has("missing"))
}
