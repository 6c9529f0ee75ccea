package types

// DatasetList is the result of listing stored datasets
type DatasetList struct {
	DataDir  string   `json:"dataDir"`
	Datasets []string `json:"datasets"`
}

// BackupList is the result of listing the backups of one dataset
type BackupList struct {
	Filename string       `json:"filename"`
	Backups  []BackupInfo `json:"backups"`
}

// RestoreResult reports a completed restore
type RestoreResult struct {
	Filename string `json:"filename"`
	Backup   string `json:"backup"`
}
