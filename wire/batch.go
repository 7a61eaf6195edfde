package wire

import (
	"github.com/himanchali/kvwire/common"
)

// --------------------------------------------------------------------------
// Collaborator Interfaces
// --------------------------------------------------------------------------

// Expression is the filter expression surface consumed by the size
// calculator. The expression itself is built and encoded by the policy
// layer; only its wire size matters here.
type Expression interface {
	// Size returns the encoded size of the expression including its
	// field header
	Size() int
}

// --------------------------------------------------------------------------
// Policy and Key
// --------------------------------------------------------------------------

// BatchWritePolicy carries the per-record write policy fields whose presence
// affects the serialized size of a batch write entry. Entries sharing one
// policy instance within a batch should reference the same *BatchWritePolicy
// so the repeat optimization can detect it (see Repeatable).
type BatchWritePolicy struct {
	// FilterExp is an optional filter expression evaluated server side
	FilterExp Expression

	// SendKey requests that the record's user key is embedded in the frame
	SendKey bool
}

// Key identifies a record. Only the user key participates in sizing, and
// only when the policy requests key embedding.
type Key struct {
	Namespace string
	SetName   string
	UserKey   Value
}

// --------------------------------------------------------------------------
// Batch Write Entry
// --------------------------------------------------------------------------

// BatchWrite is one record's set of read/write operations plus an optional
// per-record policy, as embedded in a multi-record batch request.
type BatchWrite struct {
	// Policy is the optional write policy (nil = batch defaults)
	Policy *BatchWritePolicy

	// Key identifies the target record
	Key Key

	// Ops are the operations for this key
	Ops []Operation
}

// NewBatchWrite creates a batch write entry without a per-record policy.
func NewBatchWrite(key Key, ops []Operation) *BatchWrite {
	return &BatchWrite{Key: key, Ops: ops}
}

// NewBatchWriteWithPolicy creates a batch write entry with a per-record
// policy.
func NewBatchWriteWithPolicy(policy *BatchWritePolicy, key Key, ops []Operation) *BatchWrite {
	return &BatchWrite{Policy: policy, Key: key, Ops: ops}
}

// Size returns the exact serialized byte length of the entry so the caller
// can pre-allocate an exact-size send buffer.
//
// An entry whose operations contain no write-type operation is a contract
// violation and fails with a ParameterError instead of being deferred to
// the server.
func (b *BatchWrite) Size() (int, error) {
	size := 6 // gen(2) + exp(4)

	if b.Policy != nil {
		if b.Policy.FilterExp != nil {
			size += b.Policy.FilterExp.Size()
		}

		if b.Policy.SendKey {
			size += b.Key.UserKey.EstimateSize() + FieldHeaderSize + 1
		}
	}

	hasWrite := false

	for i := range b.Ops {
		op := &b.Ops[i]
		if op.Type.IsWrite() {
			hasWrite = true
		}
		size += EstimateSizeUtf8(op.BinName) + OperationHeaderSize
		size += op.Value.EstimateSize()
	}

	if !hasWrite {
		return 0, common.NewParameterError("batch write operations do not contain a write")
	}
	return size, nil
}

// Repeatable reports whether this entry may set the wire protocol repeat
// flag relative to other, letting the encoder omit its per-entry policy
// bytes. This is deliberately a reference identity check, not a structural
// one: it only needs to detect literally shared operation slices and policy
// instances within one batch request. Entries that embed their user key are
// never repeatable, since the key differs per record.
func (b *BatchWrite) Repeatable(other *BatchWrite) bool {
	return sameOps(b.Ops, other.Ops) &&
		b.Policy == other.Policy &&
		(b.Policy == nil || !b.Policy.SendKey)
}

// sameOps reports whether the two slices share the identical backing array,
// the Go analog of array reference equality.
func sameOps(a, b []Operation) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
