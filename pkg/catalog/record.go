package catalog

import "time"

// Record is one catalog entry. The field set comes from the source schema at
// read time, only a handful of names (Code, Item, ClientPrice, VendorPrice,
// Vendor) are meaningful to the rest of the system.
type Record struct {
	Id     string
	Fields map[string]string
}

// Field returns the named field, empty string when absent.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// Snapshot is an immutable, timestamped copy of catalog records taken at one
// refresh. Every record in it was read by the same load operation.
type Snapshot struct {
	records    []Record
	fieldNames []string
	loadedAt   time.Time
	byId       map[string]int
}

func NewSnapshot(records []Record, fieldNames []string, loadedAt time.Time) *Snapshot {
	byId := make(map[string]int, len(records))
	for i, r := range records {
		if r.Id == "" {
			continue
		}
		if _, ok := byId[r.Id]; !ok {
			byId[r.Id] = i
		}
	}
	return &Snapshot{
		records:    records,
		fieldNames: fieldNames,
		loadedAt:   loadedAt,
		byId:       byId,
	}
}

// Records returns the snapshot's records in load order.
func (s *Snapshot) Records() []Record {
	return s.records
}

// FieldNames returns the field names observed at load time.
func (s *Snapshot) FieldNames() []string {
	return s.fieldNames
}

func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

// Lookup resolves an item id against the snapshot.
func (s *Snapshot) Lookup(id string) (Record, bool) {
	i, ok := s.byId[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}
