package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
)

// BestScoreKey is the fixed name the best score is stored under.
const BestScoreKey = "best_score"

// ErrCorruptBest is returned when a stored best score is not an integer.
var ErrCorruptBest = errors.New("storage: corrupt best score")

// BestStore reads and writes the single durable value of a game: its best
// score. LoadBest returns 0 and no error when nothing has been saved yet.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// BestKey returns the key for a game's best score. The main game uses the
// bare key; variants get a prefix so their records stay separate.
func BestKey(gameID string) string {
	if gameID == "" || gameID == "jumper" {
		return BestScoreKey
	}
	return gameID + "." + BestScoreKey
}

func parseBest(key string, data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s = %q", ErrCorruptBest, key, text)
	}
	return n, nil
}

// Best returns a BestStore backed by the database's kv table.
func (s *Store) Best(key string) BestStore {
	return sqliteBest{store: s, key: key}
}

type sqliteBest struct {
	store *Store
	key   string
}

func (b sqliteBest) LoadBest() (int, error) {
	value, ok, err := b.store.get(b.key)
	if err != nil || !ok {
		return 0, err
	}
	return parseBest(b.key, []byte(value))
}

func (b sqliteBest) SaveBest(score int) error {
	return b.store.put(b.key, strconv.Itoa(score))
}

// GDataBest keeps the best score in the per-user application data
// directory managed by gdata, for players who run without a database.
type GDataBest struct {
	m   *gdata.Manager
	key string
}

// OpenGDataBest opens the data directory of appName.
func OpenGDataBest(appName, key string) (*GDataBest, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data for %s: %w", appName, err)
	}
	return &GDataBest{m: m, key: key}, nil
}

// LoadBest implements BestStore.
func (g *GDataBest) LoadBest() (int, error) {
	data, err := g.m.LoadItem(g.key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load %s: %w", g.key, err)
	}
	return parseBest(g.key, data)
}

// SaveBest implements BestStore.
func (g *GDataBest) SaveBest(score int) error {
	if err := g.m.SaveItem(g.key, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", g.key, err)
	}
	return nil
}

var (
	_ BestStore = sqliteBest{}
	_ BestStore = (*GDataBest)(nil)
)
