package configuration

type Configuration struct {
	HttpAddr         string `usage:"HTTP address"`
	Dir              string `usage:"data directory"`
	Backend          string `usage:"storage backend: file or sqlite"`
	Compress         bool   `usage:"gzip the data files (file backend)"`
	MaxPageSize      int    `usage:"maximum number of records returned by a page"`
	SortBeforePaging bool   `usage:"sort the whole filtered set before skip/take"`
	LogLevel         string `usage:"log level: debug, info, warn or error"`
	Version          bool   `usage:"show version and exit"`
	ShowBanner       bool   `usage:"show big banner"`
	ShowConfig       bool   `usage:"print config"`
}

const (
	BackendFile   = "file"
	BackendSqlite = "sqlite"
)

func Default() Configuration {
	return Configuration{
		HttpAddr:    "127.0.0.1:8080",
		Dir:         "data",
		Backend:     BackendFile,
		MaxPageSize: 100,
		LogLevel:    "info",
		ShowBanner:  true,
	}
}
