package conf

// Bootstrap is the root configuration scanned from config.yaml.
type Bootstrap struct {
	Server *Server
	Data   *Data
	Log    *Log
	Report *Report
}

type Server struct {
	Http        *HTTP
	Concurrency *Concurrency
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Concurrency bounds the write endpoints (mention/client mutations).
type Concurrency struct {
	Rpm   int32
	Burst int32
}

type Data struct {
	Database *Database
}

type Database struct {
	Driver       string
	Source       string
	MaxOpenConns int32
}

type Log struct {
	Level string
	File  string
}

// Report holds the aggregation policy knobs.
type Report struct {
	// MonthlyThresholdDays is the span above which the trend series
	// switches from daily to monthly buckets. Zero means the default.
	MonthlyThresholdDays int32
}
