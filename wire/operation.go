package wire

// --------------------------------------------------------------------------
// Operation Type Definition
// --------------------------------------------------------------------------

// OperationType identifies one kind of per-bin operation within a request.
type OperationType uint8

// Protocol codes of the supported operation types.
const (
	OpTRead    OperationType = 1
	OpTWrite   OperationType = 2
	OpTAdd     OperationType = 5
	OpTAppend  OperationType = 9
	OpTPrepend OperationType = 10
	OpTTouch   OperationType = 11
	OpTDelete  OperationType = 14
)

// IsWrite reports whether the operation type mutates the record. A batch
// write entry must contain at least one such operation.
func (t OperationType) IsWrite() bool {
	switch t {
	case OpTWrite, OpTAdd, OpTAppend, OpTPrepend, OpTTouch, OpTDelete:
		return true
	default:
		return false
	}
}

// String returns the string representation of an OperationType.
func (t OperationType) String() string {
	switch t {
	case OpTRead:
		return "read"
	case OpTWrite:
		return "write"
	case OpTAdd:
		return "add"
	case OpTAppend:
		return "append"
	case OpTPrepend:
		return "prepend"
	case OpTTouch:
		return "touch"
	case OpTDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Operation Structure
// --------------------------------------------------------------------------

// Operation is one per-bin operation of a request: an operation type, the
// target bin name and the value payload (NullValue for value-less ops).
type Operation struct {
	Type    OperationType
	BinName string
	Value   Value
}

// --------------------------------------------------------------------------
// Operation Factory Functions
// --------------------------------------------------------------------------

// GetBinOp creates a read operation for a single bin.
func GetBinOp(binName string) Operation {
	return Operation{Type: OpTRead, BinName: binName, Value: NullValue{}}
}

// PutOp creates a write operation setting a bin to the given value.
func PutOp(binName string, value Value) Operation {
	return Operation{Type: OpTWrite, BinName: binName, Value: value}
}

// AddOp creates an operation adding to an integer bin.
func AddOp(binName string, value IntegerValue) Operation {
	return Operation{Type: OpTAdd, BinName: binName, Value: value}
}

// AppendOp creates an operation appending to a string bin.
func AppendOp(binName string, value StringValue) Operation {
	return Operation{Type: OpTAppend, BinName: binName, Value: value}
}

// PrependOp creates an operation prepending to a string bin.
func PrependOp(binName string, value StringValue) Operation {
	return Operation{Type: OpTPrepend, BinName: binName, Value: value}
}

// TouchOp creates an operation updating the record's metadata without
// touching any bin.
func TouchOp() Operation {
	return Operation{Type: OpTTouch, Value: NullValue{}}
}

// DeleteOp creates an operation deleting the record.
func DeleteOp() Operation {
	return Operation{Type: OpTDelete, Value: NullValue{}}
}
