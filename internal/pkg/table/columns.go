package table

// ColumnSet is the order-preserving union of all column names across a run.
// A newly seen column is appended at the position of first appearance, so the
// output header is a pure function of the input row order.
type ColumnSet struct {
	order []string
	index map[string]int
}

func NewColumnSet() *ColumnSet {
	return &ColumnSet{index: make(map[string]int)}
}

func (c *ColumnSet) Add(column string) {
	if _, exists := c.index[column]; exists {
		return
	}
	c.index[column] = len(c.order)
	c.order = append(c.order, column)
}

func (c *ColumnSet) Contains(column string) bool {
	_, exists := c.index[column]
	return exists
}

func (c *ColumnSet) Len() int {
	return len(c.order)
}

func (c *ColumnSet) Columns() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Reconciler buffers rows and grows the column set as rows arrive.
// Buffering is intentional: the header must be complete before any row can be
// written, and inputs are bounded (hundreds to low thousands of records).
type Reconciler struct {
	columns *ColumnSet
	rows    []*Row
}

func NewReconciler() *Reconciler {
	return &Reconciler{columns: NewColumnSet()}
}

// AddColumns registers columns ahead of any row, so a fixed schema keeps
// its full header even when no row arrives.
func (r *Reconciler) AddColumns(columns ...string) {
	for _, column := range columns {
		r.columns.Add(column)
	}
}

func (r *Reconciler) AddRow(row *Row) {
	for _, column := range row.Columns() {
		r.columns.Add(column)
	}
	r.rows = append(r.rows, row)
}

func (r *Reconciler) Columns() []string {
	return r.columns.Columns()
}

func (r *Reconciler) Rows() []*Row {
	return r.rows
}

func (r *Reconciler) Len() int {
	return len(r.rows)
}

// Cells returns the values of one row in the final column order,
// empty string for columns the row does not have.
func (r *Reconciler) Cells(row *Row) []string {
	cells := make([]string, 0, r.columns.Len())
	for _, column := range r.columns.Columns() {
		cells = append(cells, row.Get(column))
	}
	return cells
}
