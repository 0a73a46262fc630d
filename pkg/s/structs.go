package s

// Record is one row of a JSONL dataset file. Raw holds the exact line bytes so
// records the fix does not touch survive a rewrite byte-for-byte.
type Record struct {
	Line int // 1-based line number in the source file
	Raw  []byte
}

// BrowserRecord is the typed view of one dataset row.
type BrowserRecord struct {
	UserAgent string  `json:"useragent"`
	Browser   string  `json:"browser"`
	Version   string  `json:"version"`
	OS        string  `json:"os"`
	Type      string  `json:"type"`
	System    string  `json:"system"`
	Percent   float64 `json:"percent"`
}

// RequiredFields are the keys every dataset row must define.
var RequiredFields = []string{"useragent", "browser", "version", "os", "type", "system", "percent"}

// DatasetStats summarises whitespace issues and duplication across a dataset.
type DatasetStats struct {
	Total       int
	Trailing    int // useragents ending in whitespace
	Leading     int // useragents starting with whitespace
	DoubleSpace int // useragents containing a double space
	Unique      int
	Duplicates  int
}
