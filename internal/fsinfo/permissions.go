package fsinfo

import (
	"fmt"
	"os"
)

// CheckPermissions reports existence, type and access flags for path. It
// never fails: a missing path just reports false everywhere.
func CheckPermissions(path string) PermissionReport {
	path = ExpandPath(path)
	report := PermissionReport{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return report
	}

	report.Exists = true
	report.IsDir = info.IsDir()
	report.IsFile = info.Mode().IsRegular()
	report.Readable, report.Writable, report.Executable = access(path, info)

	mode := fmt.Sprintf("0o%o", info.Mode().Perm())
	report.Mode = &mode
	return report
}
