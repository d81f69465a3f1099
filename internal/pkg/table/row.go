// Package table accumulates flat rows with heterogeneous columns
// and writes them as one CSV artifact with a deterministic header.
package table

// Row is the flat, normalized representation of one source record.
// Values are immutable once produced, every value is a single-line string.
type Row struct {
	columns []string
	values  map[string]string
}

func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

func (r *Row) Set(column, value string) {
	if _, exists := r.values[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

func (r *Row) Get(column string) string {
	return r.values[column]
}

func (r *Row) Has(column string) bool {
	_, exists := r.values[column]
	return exists
}

// Columns in the order of first Set call.
func (r *Row) Columns() []string {
	return r.columns
}
