// Package source loads subject text for matching. Files are read through a
// read-only memory map from [mmapfile] when the platform allows it, falling
// back to [os.File] otherwise (for example for empty files, pipes and
// devices).
package source
