package mapfs

import "strings"

// Path separator and the relative parent reference recognized by ResolvePath.
const (
	Slash     = "/"
	parentRef = ".."
)

// ResolvePath converts path to absolute form against the working directory.
// Absolute paths are returned unchanged. The literal ".." resolves to the
// parent of the working directory rather than concatenating textually.
func ResolvePath(path, workingDirectory string) string {
	if strings.HasPrefix(path, Slash) {
		return path
	}
	if path == parentRef {
		return ParentPath(workingDirectory)
	}
	if workingDirectory == Slash {
		return Slash + path
	}
	return workingDirectory + Slash + path
}

// ParentPath returns the parent of an absolute path. The root is its own
// parent. A direct root child ("/a") yields the root; otherwise the last
// segment and its separator are stripped.
//
// An empty or blank path is a storage-integrity violation (a programming
// error, not a user-facing filesystem condition) and panics.
func ParentPath(path string) string {
	if strings.TrimSpace(path) == "" {
		panic("path is empty")
	}
	if path == Slash {
		return path
	}
	segments := strings.Split(path, Slash)
	if len(segments) == 2 {
		return Slash
	}
	last := segments[len(segments)-1]
	return path[:len(path)-1-len(last)]
}

// PathDepth returns the number of path segments from the root.
// The root itself has depth 0, "/a" has depth 1, "/a/b" has depth 2.
func PathDepth(absolutePath string) int {
	if absolutePath == Slash {
		return 0
	}
	return len(strings.Split(absolutePath, Slash)) - 1
}
