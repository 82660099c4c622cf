//go:build !unix

package fsinfo

import (
	"os"
	"path/filepath"
	"strings"
)

// access approximates access(2) where it does not exist
func access(path string, info os.FileInfo) (readable, writable, executable bool) {
	if info.IsDir() {
		_, err := os.ReadDir(path)
		readable = err == nil
		executable = readable
	} else if f, err := os.Open(path); err == nil {
		readable = true
		f.Close()
	}
	writable = info.Mode().Perm()&0o200 != 0

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(path))
		pathext := os.Getenv("PATHEXT")
		if pathext == "" {
			pathext = ".com;.exe;.bat;.cmd"
		}
		for _, e := range strings.Split(strings.ToLower(pathext), ";") {
			if e != "" && e == ext {
				executable = true
				break
			}
		}
	}
	return
}
