// Package cache is the repository's one stateful, I/O-performing
// collaborator: a bbolt-backed store the developer-facing CLI uses to keep a
// local history of decoded accounts and events for later inspection. Never
// imported by pkg/codec, pkg/idl, pkg/instructions, or pkg/events, which stay
// synchronous and side-effect-free.
package cache

import (
	"encoding/hex"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAccounts = []byte("decoded_accounts_by_key")
	bucketEvents   = []byte("decoded_events_by_key")
)

// Entry is one cached decode result: the raw wire bytes plus the schema or
// event name the CLI resolved them to, and when the decode happened.
type Entry struct {
	Name      string
	Data      []byte
	DecodedAt time.Time
}

// Cache wraps a single bbolt file holding two buckets, one per inspection
// kind (account, event).
type Cache struct {
	db *bolt.DB
}

// Open creates or opens the bbolt file at path, ensuring both buckets exist.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketAccounts, bucketEvents} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// PutAccount records a decoded account under key (cmd/idlcli uses the
// schema name, a colon, and the first 16 hex characters of the data).
func (c *Cache) PutAccount(key string, e Entry) error {
	return c.put(bucketAccounts, key, e)
}

// GetAccount retrieves a previously cached account decode, ok=false if
// absent.
func (c *Cache) GetAccount(key string) (Entry, bool, error) {
	return c.get(bucketAccounts, key)
}

// PutEvent records a decoded event under key (cmd/idlcli uses the first 16
// hex characters of the event data).
func (c *Cache) PutEvent(key string, e Entry) error {
	return c.put(bucketEvents, key, e)
}

// GetEvent retrieves a previously cached event decode, ok=false if absent.
func (c *Cache) GetEvent(key string) (Entry, bool, error) {
	return c.get(bucketEvents, key)
}

func (c *Cache) put(bucket []byte, key string, e Entry) error {
	val := encodeEntry(e)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), val)
	})
}

func (c *Cache) get(bucket []byte, key string) (Entry, bool, error) {
	var out Entry
	var ok bool
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		e, err := decodeEntry(v)
		if err != nil {
			return err
		}
		out = e
		ok = true
		return nil
	})
	return out, ok, err
}

// encodeEntry lays out an Entry as: decoded_at unix-nano (8 bytes LE) |
// name_len u16 LE | name bytes | data bytes — a developer-tooling format,
// never exposed to the wire ABI the four core packages implement.
func encodeEntry(e Entry) []byte {
	nameBytes := []byte(e.Name)
	out := make([]byte, 8+2+len(nameBytes)+len(e.Data))
	putUint64LE(out[0:8], uint64(e.DecodedAt.UnixNano()))
	putUint16LE(out[8:10], uint16(len(nameBytes)))
	copy(out[10:10+len(nameBytes)], nameBytes)
	copy(out[10+len(nameBytes):], e.Data)
	return out
}

func decodeEntry(b []byte) (Entry, error) {
	if len(b) < 10 {
		return Entry{}, fmt.Errorf("cache entry truncated (%d bytes)", len(b))
	}
	nanos := getUint64LE(b[0:8])
	nameLen := int(getUint16LE(b[8:10]))
	if 10+nameLen > len(b) {
		return Entry{}, fmt.Errorf("cache entry: name length %d exceeds remaining %d bytes", nameLen, len(b)-10)
	}
	name := string(b[10 : 10+nameLen])
	data := append([]byte(nil), b[10+nameLen:]...)
	return Entry{
		Name:      name,
		Data:      data,
		DecodedAt: time.Unix(0, int64(nanos)),
	}, nil
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUint64LE(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putUint16LE(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func getUint16LE(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// KeyFromHex derives a cache key from an account pubkey's hex encoding: it
// checks that the input is valid hex and returns it unchanged.
func KeyFromHex(pubkeyHex string) (string, error) {
	if _, err := hex.DecodeString(pubkeyHex); err != nil {
		return "", fmt.Errorf("invalid hex pubkey: %w", err)
	}
	return pubkeyHex, nil
}
