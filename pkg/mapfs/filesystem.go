package mapfs

import (
	"sort"
	"strings"
)

// Filesystem exposes a hierarchical, path-addressed view over a flat Map.
//
// Command-style operations (Mkdir, Cd, Touch, Cp, Mv, SaveText, SaveBin)
// return "" on success and a non-empty human-readable message on failure;
// callers distinguish the outcome solely by string emptiness. Query-style
// operations return a value plus an ok flag (ReadText), a possibly-nil slice
// (ReadBin), or a boolean (Rm). Every recoverable failure is also reported
// through the injected Logger.
//
// Thread-Safety: NOT safe for concurrent use. Compound operations such as
// Cp and Mv are check-then-act sequences over the map; callers sharing one
// instance (or one map) across goroutines must serialize access externally.
type Filesystem struct {
	store            Map
	logger           Logger
	workingDirectory string
}

// New creates a Filesystem over the given map and eagerly creates the root
// directory entry. The working directory starts at "/".
// Panics if store or logger is nil: missing dependencies are programmer
// errors that should fail loudly at construction, not during operations.
func New(store Map, logger Logger) *Filesystem {
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	fs := &Filesystem{
		store:            store,
		logger:           logger,
		workingDirectory: Slash,
	}
	fs.Mkdir(Slash)
	return fs
}

// abs resolves a path argument against the current working directory.
func (f *Filesystem) abs(path string) string {
	return ResolvePath(path, f.workingDirectory)
}

// fail logs a recoverable failure and returns it as the operation result.
func (f *Filesystem) fail(msg string) string {
	f.logger.Error(msg)
	return msg
}

// Mkdir creates a directory at path. The parent must exist and be a
// directory; the target must not exist yet.
func (f *Filesystem) Mkdir(path string) string {
	if path == "" {
		return f.fail("Missing argument")
	}
	absolutePath := f.abs(path)
	parentPath := ParentPath(absolutePath)
	if path != Slash && !f.Exists(parentPath) {
		return f.fail("Cannot create new directory, because parent path does not exist: " + parentPath)
	}
	if path != Slash && !f.IsDir(parentPath) {
		return f.fail("Cannot create new directory, because parent path is not directory: " + parentPath)
	}
	if f.Exists(absolutePath) {
		return f.fail("Cannot create new directory, because path already exists: " + absolutePath)
	}
	f.store.PutString(absolutePath, EncodeEntry(Directory, ""))
	return ""
}

// Cd changes the working directory. The target must exist and be a
// directory; on failure the working directory is left unchanged.
func (f *Filesystem) Cd(path string) string {
	absolutePath := f.abs(path)
	if !f.Exists(absolutePath) {
		return f.fail("Path does not exist: " + absolutePath)
	}
	if !f.IsDir(absolutePath) {
		return f.fail("Path is not directory: " + absolutePath)
	}
	f.workingDirectory = absolutePath
	return ""
}

// Pwd returns the current working directory.
func (f *Filesystem) Pwd() string {
	return f.workingDirectory
}

// Depth returns the number of path segments from the root, after resolving
// the argument against the working directory. The root has depth 0.
func (f *Filesystem) Depth(path string) int {
	return PathDepth(f.abs(path))
}

// Ls lists the direct children of path: every key exactly one level deeper
// under the resolved path. Results are sorted; absent or childless paths
// yield an empty slice.
func (f *Filesystem) Ls(path string) []string {
	absolutePath := f.abs(path)
	currentDepth := PathDepth(absolutePath)
	children := []string{}
	for _, key := range f.store.KeyList() {
		if absolutePath != Slash && key != absolutePath && !strings.HasPrefix(key, absolutePath+Slash) {
			continue
		}
		if PathDepth(key) == currentDepth+1 {
			children = append(children, key)
		}
	}
	sort.Strings(children)
	return children
}

// Touch creates an empty file at path.
func (f *Filesystem) Touch(path string) string {
	return f.touch(path, "")
}

// touch creates a file entry holding content as its payload. The parent must
// exist and be a directory; the target must not exist yet.
func (f *Filesystem) touch(path, content string) string {
	absolutePath := f.abs(path)
	parentPath := ParentPath(absolutePath)
	if !f.Exists(parentPath) {
		return f.fail("Cannot create new file, because parent path does not exist: " + parentPath)
	}
	if !f.IsDir(parentPath) {
		return f.fail("Cannot create new file, because parent path is not directory: " + parentPath)
	}
	if f.Exists(absolutePath) {
		return f.fail("Cannot create new file, because path already exists: " + absolutePath)
	}
	f.store.PutString(absolutePath, EncodeEntry(File, content))
	return ""
}

// Rm removes the entry at path. Returns false without mutation if the path
// does not exist. Removal never cascades to descendants.
func (f *Filesystem) Rm(path string) bool {
	absolutePath := f.abs(path)
	if !f.store.Contains(absolutePath) {
		f.logger.Error("Cannot remove file, because it does not exist: " + absolutePath)
		return false
	}
	f.store.Remove(absolutePath)
	return true
}

// Cp copies the file at source to target. Directories are rejected, and the
// target must not exist yet.
func (f *Filesystem) Cp(source, target string) string {
	return f.moveOrCopy(source, target, false)
}

// Mv moves the file at source to target: a copy followed by removal of the
// source. The two mutations are not atomic with respect to concurrent
// access to the same keys.
func (f *Filesystem) Mv(source, target string) string {
	return f.moveOrCopy(source, target, true)
}

func (f *Filesystem) moveOrCopy(source, target string, move bool) string {
	absolutePathSource := f.abs(source)
	absolutePathTarget := f.abs(target)
	targetParentPath := ParentPath(absolutePathTarget)

	if !f.Exists(absolutePathSource) {
		return f.fail("absolutePathSource does not exist: " + absolutePathSource)
	}
	if f.IsDir(absolutePathSource) {
		return f.fail("absolutePathSource is directory: " + absolutePathSource)
	}
	if !f.Exists(targetParentPath) {
		return f.fail("targetParentPath does not exist: " + absolutePathSource)
	}
	if !f.IsDir(targetParentPath) {
		return f.fail("targetParentPath is not directory: " + absolutePathSource)
	}
	// The full encoded value is carried over, preserving text and binary
	// payloads alike.
	raw := f.store.GetString(absolutePathSource)
	if result := f.touch(absolutePathTarget, ""); result != "" {
		return f.fail("Creating new file failed: " + absolutePathTarget)
	}
	f.store.Remove(absolutePathTarget)
	f.store.PutString(absolutePathTarget, raw)
	if move {
		f.store.Remove(absolutePathSource)
	}
	return ""
}

// ReadText returns the decoded payload of the file at path. The ok result is
// false (and the cause logged) when the path is absent, a directory, or
// undecodable.
func (f *Filesystem) ReadText(path string) (string, bool) {
	absolutePath := f.abs(path)
	if !f.Exists(absolutePath) {
		f.logger.Error("Path does not exist: " + absolutePath)
		return "", false
	}
	if f.IsDir(absolutePath) {
		f.logger.Error("Path is directory: " + absolutePath)
		return "", false
	}
	_, payload, err := DecodeEntry(f.store.GetString(absolutePath))
	if err != nil {
		f.logger.Error("Cannot decode entry %s: %v", absolutePath, err)
		return "", false
	}
	return payload, true
}

// ReadBin returns the decoded bytes of a binary file at path. Returns nil
// (and logs) when the path cannot be read as text or the payload does not
// carry the binary marker.
func (f *Filesystem) ReadBin(path string) []byte {
	absolutePath := f.abs(path)
	payload, ok := f.ReadText(absolutePath)
	if !ok {
		return nil
	}
	data, err := DecodeBinary(payload)
	if err != nil {
		f.logger.Error("File is not binary: " + absolutePath)
		return nil
	}
	return data
}

// SaveText creates a file at name holding text. Delegates to touch, so the
// same preconditions and failure messages apply.
func (f *Filesystem) SaveText(name, text string) string {
	return f.touch(name, text)
}

// SaveBin creates a file at name holding data as a marked base64 payload.
func (f *Filesystem) SaveBin(name string, data []byte) string {
	return f.SaveText(name, EncodeBinary(data))
}

// Exists reports whether the resolved path is present in the store.
func (f *Filesystem) Exists(path string) bool {
	return f.store.Contains(f.abs(path))
}

// IsFile reports whether the resolved path exists and is a file.
func (f *Filesystem) IsFile(path string) bool {
	t, ok := f.FileType(path)
	return ok && t == File
}

// IsDir reports whether the resolved path exists and is a directory.
func (f *Filesystem) IsDir(path string) bool {
	t, ok := f.FileType(path)
	return ok && t == Directory
}

// FileType returns the entry type of the resolved path. The ok result is
// false when the path is absent or its entry cannot be decoded.
func (f *Filesystem) FileType(path string) (EntryType, bool) {
	absolutePath := f.abs(path)
	if !f.store.Contains(absolutePath) {
		return 0, false
	}
	t, _, err := DecodeEntry(f.store.GetString(absolutePath))
	if err != nil {
		f.logger.Error("Cannot decode entry %s: %v", absolutePath, err)
		return 0, false
	}
	return t, true
}

// Debug returns a newline-joined key=value dump of every entry, sorted by
// key for stable output.
func (f *Filesystem) Debug() string {
	keys := f.store.KeyList()
	sort.Strings(keys)
	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("=")
		sb.WriteString(f.store.GetString(key))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Flush delegates to the underlying map's durability commit.
func (f *Filesystem) Flush() error {
	return f.store.Flush()
}

// Rmdir is deliberately unsupported: recursive delete semantics and
// orphaned-descendant handling were never specified, and silently removing
// a single directory key would strand its children. Always panics.
func (f *Filesystem) Rmdir(path string) bool {
	panic("rmdir is not supported")
}
