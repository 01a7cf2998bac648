package storage

import "time"

// Composite chains several backends. Reads return the first non-empty
// value scanning backends in order, writes and deletes fan out to all
// of them. The redundancy is deliberate: a value mangled or deleted in
// one backend can still be served from another.
type Composite struct {
	storages []Storage
}

func NewComposite(storages ...Storage) *Composite {
	return &Composite{storages: storages}
}

func (c *Composite) GetItem(key string, def string) string {
	for _, s := range c.storages {
		if value := s.GetItem(key, ""); value != "" {
			return value
		}
	}
	return def
}

func (c *Composite) PutItem(key string, value string, ttl time.Duration) {
	for _, s := range c.storages {
		s.PutItem(key, value, ttl)
	}
}

func (c *Composite) DeleteItem(key string) {
	for _, s := range c.storages {
		s.DeleteItem(key)
	}
}
