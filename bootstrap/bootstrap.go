package bootstrap

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/api"
	"github.com/fulldump/inceptionstore/configuration"
	"github.com/fulldump/inceptionstore/database"
	"github.com/fulldump/inceptionstore/filepersistence"
	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/service"
	"github.com/fulldump/inceptionstore/sqlitepersistence"
)

var VERSION = "dev"

// NewDocuments builds the documents persistence for the configured backend.
// The returned closer releases backend resources after the database is stopped.
func NewDocuments(c *configuration.Configuration) (*service.Documents, func() error, error) {

	var documents *service.Documents
	closer := func() error { return nil }

	switch c.Backend {
	case configuration.BackendFile, "":
		filename := filepath.Join(c.Dir, service.DocumentsName+".json")
		if c.Compress {
			filename += ".gz"
		}
		documents, _ = filepersistence.NewStringIdentifiableFilePersistence[*service.Document](
			filepersistence.NewJsonFilePersister[*service.Document](filename),
		)

	case configuration.BackendSqlite:
		err := os.MkdirAll(c.Dir, 0755)
		if err != nil {
			return nil, nil, err
		}
		persister, err := sqlitepersistence.Open[*service.Document](filepath.Join(c.Dir, "inceptionstore.sqlite"), service.DocumentsName)
		if err != nil {
			return nil, nil, err
		}
		documents = persistence.NewStringIdentifiableMemoryPersistence[*service.Document](persister, persister)
		closer = persister.Close

	default:
		return nil, nil, fmt.Errorf("unknown backend '%s'", c.Backend)
	}

	documents.Configure(&persistence.Config{
		MaxPageSize:      c.MaxPageSize,
		SortBeforePaging: c.SortBeforePaging,
	})

	return documents, closer, nil
}

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(c.LogLevel),
	})))

	db := database.NewDatabase(&database.Config{
		Dir: c.Dir,
	})

	documents, closeBackend, err := NewDocuments(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	s, err := service.NewService(db, documents)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	b := api.Build(s, VERSION)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
		api.InterceptorUnavailable(db),
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stopOnce := &sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			err := db.Stop()
			if err != nil {
				log.Println("ERROR: stop database:", err.Error())
			}
			err = closeBackend()
			if err != nil {
				log.Println("ERROR: close backend:", err.Error())
			}
			server.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		fmt.Println("Signal received", sig.String())
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := server.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	err := l.UnmarshalText([]byte(level))
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
