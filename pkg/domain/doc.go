// Package domain contains the core types shared across the runner: puzzle
// identities, benchmark measurements, per-day results and stored runs. They
// are free of infrastructure concerns so the reporters, the blog generator,
// the storage layer and the preview server can all exchange them.
package domain
