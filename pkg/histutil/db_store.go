package histutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCmd = []byte("cmd")

// dbStore persists command history in a bbolt database, one bucket
// keyed by an auto-incrementing big-endian sequence number. Grounded on
// elvish's pkg/store/cmd.go bucket-and-sequence scheme.
type dbStore struct {
	db *bolt.DB
}

// OpenDBStore opens (creating if necessary, including parent
// directories) a bbolt-backed Store at path.
func OpenDBStore(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCmd)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db: db}, nil
}

func (s *dbStore) AllCmds() ([]string, error) {
	var cmds []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmd)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			cmds = append(cmds, string(v))
		}
		return nil
	})
	return cmds, err
}

func (s *dbStore) AddCmd(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmd)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Close releases the underlying database file.
func (s *dbStore) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
