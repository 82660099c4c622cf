package fsinfo

// PermissionReport describes what the current user may do with a path
type PermissionReport struct {
	Path       string  `json:"path"`
	Exists     bool    `json:"exists"`
	IsFile     bool    `json:"is_file"`
	IsDir      bool    `json:"is_dir"`
	Readable   bool    `json:"readable"`
	Writable   bool    `json:"writable"`
	Executable bool    `json:"executable"`
	Mode       *string `json:"mode"`
}

// FolderStats is the result of a full size walk
type FolderStats struct {
	Path      string `json:"path"`
	SizeBytes uint64 `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Files     int    `json:"files"`
	Dirs      int    `json:"dirs"`
}

// EntryCounts is the result of a counting walk
type EntryCounts struct {
	Path  string `json:"path"`
	Files int    `json:"files"`
	Dirs  int    `json:"dirs"`
}
