package database

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fulldump/inceptionstore/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

// Openable is the lifecycle of a persistence.
type Openable interface {
	Open(correlationID string) error
	Close(correlationID string) error
	IsOpen() bool
}

type Config struct {
	Dir string
}

// Database opens and closes a set of named persistences together.
type Database struct {
	Config       *Config
	Logger       *slog.Logger
	status       string
	persistences map[string]Openable
	mutex        *sync.RWMutex
	exit         chan struct{}
	stopOnce     sync.Once
}

func NewDatabase(config *Config) *Database {
	return &Database{
		Config:       config,
		Logger:       slog.Default(),
		status:       StatusOpening,
		persistences: map[string]Openable{},
		mutex:        &sync.RWMutex{},
		exit:         make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

// Register adds a persistence to be opened by Load and closed by Stop.
func (db *Database) Register(name string, p Openable) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.persistences[name]; exists {
		return fmt.Errorf("persistence '%s' already exists", name)
	}
	db.persistences[name] = p

	return nil
}

func (db *Database) Get(name string) (Openable, bool) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	p, ok := db.persistences[name]
	return p, ok
}

func (db *Database) Names() []string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return utils.GetKeys(db.persistences)
}

// Load creates the data directory and opens every registered persistence.
func (db *Database) Load() error {

	db.Logger.Info("loading database", "dir", db.Config.Dir)

	if db.Config.Dir != "" {
		err := os.MkdirAll(db.Config.Dir, 0755)
		if err != nil {
			db.setStatus(StatusClosing)
			return err
		}
	}

	for _, name := range db.Names() {
		p, _ := db.Get(name)

		t0 := time.Now()
		err := p.Open("database.load")
		if err != nil {
			db.Logger.Error("open persistence", "name", name, "error", err)
			db.setStatus(StatusClosing)
			return fmt.Errorf("open '%s': %w", name, err)
		}
		db.Logger.Info("persistence opened", "name", name, "elapsed", time.Since(t0))
	}

	db.setStatus(StatusOperating)

	return nil
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

// Stop closes every open persistence and returns the last close error.
func (db *Database) Stop() error {

	defer db.stopOnce.Do(func() {
		close(db.exit)
	})

	db.setStatus(StatusClosing)

	var lastErr error
	for _, name := range db.Names() {
		p, _ := db.Get(name)
		if !p.IsOpen() {
			continue
		}
		db.Logger.Info("closing persistence", "name", name)
		err := p.Close("database.stop")
		if err != nil {
			db.Logger.Error("close persistence", "name", name, "error", err)
			lastErr = err
		}
	}

	return lastErr
}
