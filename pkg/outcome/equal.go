package outcome

import (
	"hash/fnv"
	"io"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// Equal reports whether two outcomes agree on the succeeded flag,
// message, cause and payload. Causes and payloads are compared
// structurally: pointers are followed, and two independently built
// causes with identical state (say, two errors.New of the same text)
// compare equal rather than falling back to reference identity. That
// is a deliberate choice, Go errors being plain values. Creation
// metadata (id, timestamp) is excluded: two outcomes built
// independently from the same inputs are equal.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.succeeded != other.succeeded || o.message != other.message {
		return false
	}
	if (o.cause == nil) != (other.cause == nil) {
		return false
	}
	if o.cause != nil && !reflect.DeepEqual(o.cause, other.cause) {
		return false
	}
	return reflect.DeepEqual(o.payload, other.payload)
}

// hashConf renders values for hashing: pointers are followed and
// addresses omitted, so the rendering tracks the structural comparison
// Equal performs instead of where a value happens to live.
var hashConf = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Hash returns a digest consistent with Equal: equal outcomes hash
// identically. Cause and payload contribute a deep, address-free
// rendering of their state.
func (o Outcome[T]) Hash() uint64 {
	h := fnv.New64a()

	if o.succeeded {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}

	io.WriteString(h, o.message)
	h.Write([]byte{0})

	if o.cause != nil {
		io.WriteString(h, hashConf.Sdump(o.cause))
	}
	h.Write([]byte{0})

	io.WriteString(h, hashConf.Sdump(o.payload))
	return h.Sum64()
}
