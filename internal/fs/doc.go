// Package fs provides the filesystem abstraction behind the local blob store,
// and a fault-injecting wrapper for tests.
//
// Production code uses fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to simulate a full disk or a failing sync:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("primes.txt", fs.Fault{FailAfterBytes: 1024})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
//
// The package does not take a context.Context. Local file operations are
// not interruptible at the syscall level.
package fs
