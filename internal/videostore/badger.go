// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/dgraph-io/badger/v4"
)

var (
	badgerVideoPrefix = []byte("video:")
	badgerSequenceKey = []byte("seq:video")
)

// badgerSequenceLease is how many ids a sequence leases at a time. Leased ids
// that are never used are skipped after a restart, never handed out twice.
const badgerSequenceLease = 64

// BadgerStore keeps video records in an embedded Badger key-value store:
//   - records: key = "video:<big-endian id>" (JSON), so key order is insertion order
//   - ids: a Badger sequence under "seq:video"
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence
}

// OpenBadgerStore opens the store at path. An empty path opens an in-memory instance.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	seq, err := db.GetSequence(badgerSequenceKey, badgerSequenceLease)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open badger id sequence: %w", err)
	}
	return &BadgerStore{db: db, seq: seq}, nil
}

// Close releases the id lease and closes the database.
func (s *BadgerStore) Close() error {
	relErr := s.seq.Release()
	if err := s.db.Close(); err != nil {
		return err
	}
	return relErr
}

func badgerVideoKey(id int64) []byte {
	key := make([]byte, len(badgerVideoPrefix)+8)
	copy(key, badgerVideoPrefix)
	binary.BigEndian.PutUint64(key[len(badgerVideoPrefix):], uint64(id))
	return key
}

func (s *BadgerStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = badgerVideoPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return n, nil
}

func (s *BadgerStore) List(ctx context.Context) ([]video.Video, error) {
	videos := make([]video.Video, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = badgerVideoPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var v video.Video
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			}); err != nil {
				return err
			}
			videos = append(videos, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

func (s *BadgerStore) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	if err := ctx.Err(); err != nil {
		return video.Video{}, err
	}
	next, err := s.seq.Next()
	if err != nil {
		return video.Video{}, fmt.Errorf("insert video: next id: %w", err)
	}
	// sequences start at 0; ids start at 1
	v.ID = int64(next) + 1

	buf, err := json.Marshal(v)
	if err != nil {
		return video.Video{}, fmt.Errorf("insert video: encode: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerVideoKey(v.ID), buf)
	}); err != nil {
		return video.Video{}, fmt.Errorf("insert video: %w", err)
	}
	return v, nil
}
