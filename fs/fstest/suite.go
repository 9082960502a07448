// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the behavior the tree package depends on: reads, writes,
// sorted directory listings, lexical walks and symlink reporting.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/fstree/fs/core"
)

// Config adapts the suite to a provider.
type Config struct {
	// SkipTests lists test names to skip.
	// Format: "Group/SubTest" (e.g., "WriteFS/MkdirNoParent").
	SkipTests []string
}

func (c Config) skip(t *testing.T, name string) bool {
	t.Helper()
	for _, s := range c.SkipTests {
		if s == name {
			t.Skip("Skipped by provider configuration")
			return true
		}
	}
	return false
}

// TestSuite runs all conformance tests against a filesystem.
// newFS must return a fresh, empty filesystem on every call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, Config{})
}

// TestSuiteWithConfig runs all conformance tests with provider configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config Config) {
	t.Run("ReadFS", func(t *testing.T) {
		if config.skip(t, "ReadFS") {
			return
		}
		TestReadFS(t, newFS(), config)
	})

	t.Run("WriteFS", func(t *testing.T) {
		if config.skip(t, "WriteFS") {
			return
		}
		TestWriteFS(t, newFS(), config)
	})

	t.Run("WalkFS", func(t *testing.T) {
		if config.skip(t, "WalkFS") {
			return
		}
		TestWalkFS(t, newFS(), config)
	})

	t.Run("SymlinkFS", func(t *testing.T) {
		if config.skip(t, "SymlinkFS") {
			return
		}
		TestSymlinkFS(t, newFS(), config)
	})
}

// run executes a subtest unless it is listed in config.SkipTests.
func run(t *testing.T, config Config, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if config.skip(t, group+"/"+name) {
			return
		}
		fn(t)
	})
}
