package store

// Storages aggregates the repositories used by the services.
type Storages struct {
	PayloadRepository PayloadRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB) *Storages {
	return &Storages{
		PayloadRepository: NewPayloadRepository(db, db.logger),
	}
}
