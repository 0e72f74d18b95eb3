package store

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/ncruces/go-sqlite3/vfs"
	"github.com/ncruces/go-sqlite3/vfs/adiantum"
)

// registeredVFS tracks which adiantum-wrapped VFS names have already been
// registered with the driver in this process, so opening databases with the
// same passphrase twice (e.g. a test that reopens a database) doesn't panic
// on a duplicate vfs.Register call.
var (
	vfsMu        sync.Mutex
	registeredVFS = map[string]bool{}
)

// encryptedVFSName derives a 32-byte key from passphrase with SHA-256 and
// registers (once per process, per distinct passphrase digest) a named
// adiantum VFS wrapping the engine's default VFS; path does not affect the
// name. It returns the name to pass as the DSN's vfs=
// parameter.
//
// Whether the resulting file is new (the passphrase becomes its key) or
// already exists and encrypted (the passphrase must match to unlock it) is
// entirely a property of adiantum's own page-level encryption — this
// function does no key management of its own beyond the derivation.
func encryptedVFSName(path string, passphrase []byte) (string, error) {
	var key [32]byte
	sum := sha256.Sum256(passphrase)
	copy(key[:], sum[:])

	name := fmt.Sprintf("treedb-adiantum-%x", sum[:8])

	vfsMu.Lock()
	defer vfsMu.Unlock()

	if !registeredVFS[name] {
		base := vfs.Find("")
		if base == nil {
			return "", fmt.Errorf("treedb: no base VFS available for encryption")
		}
		adiantum.Register(name, base, key)
		registeredVFS[name] = true
	}

	return name, nil
}
