// Package cache records the outcome of past generation runs keyed by
// model-file fingerprint, so taskgen can skip models that have not
// changed since their task was last written.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketRuns = []byte("runs")

// Entry is the recorded outcome for one model file.
type Entry struct {
	TaskName    string    `json:"task_name"`
	OutputPath  string    `json:"output_path"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Cache is a bbolt-backed generation cache.
type Cache struct {
	db *bolt.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRuns)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache bucket: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the recorded entry for a fingerprint, or nil when the model
// has never been generated.
func (c *Cache) Get(fingerprint string) (*Entry, error) {
	var entry *Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRuns).Get([]byte(fingerprint))
		if data == nil {
			return nil
		}
		entry = &Entry{}
		return json.Unmarshal(data, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	return entry, nil
}

// Put records the outcome for a fingerprint, replacing any prior entry.
func (c *Cache) Put(fingerprint string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRuns).Put([]byte(fingerprint), data)
	})
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
