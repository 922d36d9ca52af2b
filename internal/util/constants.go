package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	DriverFile     = "file"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverObject   = "object"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// ExcerptLength is how much of a question's text error messages quote.
const ExcerptLength = 50

const (
	TestsObjectKey = "data_tests.json"
	StatsObjectKey = "data_stats.json"
)
