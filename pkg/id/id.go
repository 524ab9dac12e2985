// Package id issues the reference attached to every calculation request, so
// an exported spreadsheet row, its Org block and the log line that produced
// them can be matched up later.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// ulid.Monotonic keeps refs issued within the same millisecond in order.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID reference stamped with t.
func New(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	ref, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		// Only possible if t is outside the ULID time range or the
		// monotonic entropy overflows within one millisecond.
		panic(err)
	}
	return ref.String()
}

// Time recovers the timestamp a reference was issued with.
func Time(ref string) (time.Time, error) {
	u, err := ulid.ParseStrict(ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ref %q: %w", ref, err)
	}
	return ulid.Time(u.Time()), nil
}

// Short returns the first eight characters of ref, enough to tell plans
// apart by eye.
func Short(ref string) string {
	if len(ref) <= 8 {
		return ref
	}
	return ref[:8]
}
