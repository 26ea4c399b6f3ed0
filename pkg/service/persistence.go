package service

import (
	"time"

	"github.com/pkg/errors"
)

var ErrPersistenceNotExists = errors.New("persistent data does not exist")

// PersistenceService hands out keyed stores; used as the report cache so
// repeated dashboard queries within the TTL do not hammer the data source.
type PersistenceService interface {
	NewStore(id string, subIDs ...string) Store
}

type Store interface {
	Load(val interface{}) error
	Save(val interface{}) error
	Reset() error
}

// Expirable values carry their own TTL; stores honor it on Save.
type Expirable interface {
	Expiration() time.Duration
}
