// Package matchlog records arena transcripts in a LevelDB database:
// every round played and a summary per match.
//
// It is an audit log for offline analysis. Nothing in it is ever read back
// into a predictor, so engines still start every match from scratch.
package matchlog

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/timpalpant/go-rps"
)

const (
	roundPrefix   = "r:"
	summaryPrefix = "s:"
)

// Round is one round of a recorded match, from player A's point of view.
type Round struct {
	Match   string
	Round   int
	PlayerA string
	PlayerB string
	MoveA   rps.Move
	MoveB   rps.Move
	Outcome rps.Outcome
}

// MatchSummary is the final record of a match.
type MatchSummary struct {
	Match   string
	PlayerA string
	PlayerB string
	Rounds  int
	WinsA   int
	WinsB   int
	Draws   int
}

// Store is a transcript store backed by LevelDB. It is safe for
// concurrent use.
type Store struct {
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// Open opens (creating if necessary) a Store at path.
func Open(path string, opts *opt.Options) (*Store, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open match log %s", path)
	}

	return New(db), nil
}

// New returns a Store using db.
func New(db *leveldb.DB) *Store {
	return &Store{db: db}
}

// Close implements io.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendRound stores r under its match and round number.
func (s *Store) AppendRound(r Round) error {
	return s.put(roundKey(r.Match, r.Round), r)
}

// Rounds returns the recorded rounds of match in round order.
func (s *Store) Rounds(match string) ([]Round, error) {
	var result []Round
	err := s.scan(roundPrefix+match+":", func(buf []byte) error {
		var r Round
		if err := decode(buf, &r); err != nil {
			return err
		}

		result = append(result, r)
		return nil
	})

	return result, err
}

// PutSummary stores the summary of a match, replacing any earlier one.
func (s *Store) PutSummary(sum MatchSummary) error {
	return s.put(summaryPrefix+sum.Match, sum)
}

// Summaries returns all match summaries ordered by match name.
func (s *Store) Summaries() ([]MatchSummary, error) {
	var result []MatchSummary
	err := s.scan(summaryPrefix, func(buf []byte) error {
		var sum MatchSummary
		if err := decode(buf, &sum); err != nil {
			return err
		}

		result = append(result, sum)
		return nil
	})

	return result, err
}

func (s *Store) put(key string, v interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.db.Put([]byte(key), buf.Bytes(), s.wOpts); err != nil {
		return errors.Wrapf(err, "put %s", key)
	}

	return nil
}

func (s *Store) scan(prefix string, visit func(value []byte) error) error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefix)), s.rOpts)
	defer iter.Release()

	n := 0
	for iter.Next() {
		if err := visit(iter.Value()); err != nil {
			return errors.Wrapf(err, "decode %s", iter.Key())
		}
		n++
	}

	if err := iter.Error(); err != nil {
		return errors.Wrapf(err, "scan %s", prefix)
	}

	glog.V(2).Infof("Read %d records with prefix %q", n, prefix)
	return nil
}

// roundKey zero-pads the round number so that keys sort in round order.
func roundKey(match string, round int) string {
	return fmt.Sprintf("%s%s:%08d", roundPrefix, match, round)
}

func decode(buf []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(buf)).Decode(v)
}
