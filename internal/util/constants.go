package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	IndexChroma = "chroma"
	IndexMemory = "memory"
)

// 分页默认值
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// 语义检索
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
	SummaryWindowDays  = 7
	RecentUpdatesLimit = 5
)
