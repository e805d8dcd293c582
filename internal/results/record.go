// Package results holds scraped rows as ordered records and writes them out.
package results

// Record is an ordered mapping from field name to value. Setting an existing
// field replaces its value but keeps its position.
type Record struct {
	keys   []string
	values map[string]string
}

func NewRecord() Record {
	return Record{values: map[string]string{}}
}

func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r Record) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int {
	return len(r.keys)
}

// Row lays the record out along `header`, fields the record lacks are left
// empty and fields missing from the header are not included.
func (r Record) Row(header []string) []string {
	row := make([]string, len(header))
	for i, key := range header {
		row[i] = r.values[key]
	}
	return row
}

// Header is the union of the keys of all records, in the order they are first
// seen when walking the records in order.
func Header(records []Record) []string {
	var header []string
	seen := map[string]bool{}
	for _, rec := range records {
		for _, key := range rec.keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			header = append(header, key)
		}
	}
	return header
}
