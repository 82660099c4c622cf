package fsinfo

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"sysutil/internal/system"
)

type entryKind int

const (
	kindDir entryKind = iota
	kindFile
	kindDirLink   // symlink to a directory, never descended
	kindOtherLink // symlink to anything else, or dangling
	kindSpecial   // sockets, fifos, devices
)

// walk visits everything below root without following directory symlinks.
// Entries that fail (permission denied, removed mid-walk) are skipped.
func walk(root string, visit func(path string, kind entryKind, d fs.DirEntry)) {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("walk entry skipped", "path", path, "err", err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		switch {
		case d.IsDir():
			visit(path, kindDir, d)
		case d.Type()&fs.ModeSymlink != 0:
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				visit(path, kindDirLink, d)
			} else {
				visit(path, kindOtherLink, d)
			}
		case d.Type().IsRegular():
			visit(path, kindFile, d)
		default:
			visit(path, kindSpecial, d)
		}
		return nil
	})
}

// FolderSize walks path and sums the sizes of regular files. Symlinked files
// are left out of both size and count.
func FolderSize(path string) FolderStats {
	path = ExpandPath(path)
	stats := FolderStats{Path: path}

	walk(path, func(p string, kind entryKind, d fs.DirEntry) {
		switch kind {
		case kindDir, kindDirLink:
			stats.Dirs++
		case kindFile, kindSpecial:
			info, err := d.Info()
			if err != nil {
				slog.Debug("size lookup failed", "path", p, "err", err)
				return
			}
			stats.SizeBytes += uint64(info.Size())
			stats.Files++
		}
	})

	stats.SizeHuman = system.HumanBytes(stats.SizeBytes)
	return stats
}

// CountEntries counts files and directories under path without sizing them
func CountEntries(path string) EntryCounts {
	path = ExpandPath(path)
	counts := EntryCounts{Path: path}

	walk(path, func(_ string, kind entryKind, _ fs.DirEntry) {
		switch kind {
		case kindDir, kindDirLink:
			counts.Dirs++
		default:
			counts.Files++
		}
	})
	return counts
}
