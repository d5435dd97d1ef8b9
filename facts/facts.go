// Package facts converts document tables into Ansible fact records.
//
// A table is selected when every requested header appears in its first
// row; each remaining row then becomes one record keyed by the header
// row text. The package is a pure transformation: it never performs I/O
// and never mutates its inputs, so concurrent calls over independent
// table sets are safe.
package facts

// Cell holds the text content of a single table cell.
type Cell struct {
	Text string
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell
}

// Texts returns the cell texts in column order.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		texts[i] = c.Text
	}
	return texts
}

// Table is an ordered sequence of rows. The first row is always treated
// as the header row and never appears in extracted records.
type Table struct {
	Rows []Row
}

// HeaderTexts returns the cell texts of the header row, or nil for a
// table with no rows.
func (t Table) HeaderTexts() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0].Texts()
}

// Matches reports whether every requested header appears among the
// table's header row cells. Both sides are compared as sets: order and
// duplicates are irrelevant. An empty headers set matches any table,
// including one with no rows at all.
func (t Table) Matches(headers []string) bool {
	return containsAll(t.HeaderTexts(), headers)
}

// Record maps header text to the cell text beneath it for one data row.
// When a header row repeats the same text, the rightmost column wins;
// this mirrors the long-standing observable behavior and is deliberate.
type Record map[string]string

// ResultSet maps the derived fact name ("table_" + name) to the records
// collected from every matching table, in document order.
type ResultSet map[string][]Record

// KeyPrefix is prepended to the caller-supplied name to build the
// ResultSet key.
const KeyPrefix = "table_"

// FactsKey is the envelope key under which the host automation
// framework expects facts to be returned.
const FactsKey = "ansible_facts"

// Extract scans tables in order and flattens the data rows of every
// table whose header row contains each of the requested headers.
//
// Rows are paired with header cells positionally: a row shorter than
// the header row yields a record with only the keys it could pair, and
// cells beyond the header row's width are ignored. The returned
// ResultSet always contains the "table_"+name key, even when no table
// matched.
func Extract(tables []Table, name string, headers []string) ResultSet {
	key := KeyPrefix + name
	result := ResultSet{key: []Record{}}

	for _, table := range tables {
		if len(table.Rows) == 0 {
			continue
		}
		keys := table.Rows[0].Texts()
		if !containsAll(keys, headers) {
			continue
		}
		for _, row := range table.Rows[1:] {
			record := Record{}
			for i, cell := range row.Cells {
				if i >= len(keys) {
					break
				}
				record[keys[i]] = cell.Text
			}
			result[key] = append(result[key], record)
		}
	}

	return result
}

// Envelope wraps a ResultSet under the ansible_facts key.
func Envelope(rs ResultSet) map[string]ResultSet {
	return map[string]ResultSet{FactsKey: rs}
}

// containsAll reports whether every element of want appears in have.
func containsAll(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
