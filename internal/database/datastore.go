package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller EntryReader or EntryWriter instead.
type DataStore interface {
	EntryRepository
}

var _ DataStore = (*Repository)(nil)
