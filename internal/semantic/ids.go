// Package semantic implements the two-pass resolver: syntactic ast.Ast in,
// a resolved Program out, with every identifier bound to its declaration
// and every type annotation canonicalized to a shared Type handle.
//
// Modules, files, type definitions, functions, and globals are allocated
// once and shared by ordinary Go pointers: the Program and the resolved
// nodes refer to one another through those pointers, not through index
// tables. A skeleton is a node allocated with placeholder content in
// pass 1; pass 2 mutates it in place through the same pointer.
package semantic

// TypeID uniquely numbers every TypeDef across a whole Program,
// independent of which module or file defined it. Size resolution does
// not use it: cycles are detected with each TypeDef's color mark.
type TypeID uint32

// NoTypeID is the zero value; no TypeDef ever has it. Type nodes are not
// numbered, so Type.ID returns NoTypeID for every Type.
const NoTypeID TypeID = 0

// ModuleID, FileID, TypeDefID, FunctionID, and GlobalID are 1-based index
// types where zero means "absent". The Program does not use them: it
// holds its modules, files, type definitions, functions, and globals by
// pointer.
type (
	ModuleID   uint32
	FileID     uint32
	TypeDefID  uint32
	FunctionID uint32
	GlobalID   uint32
)

const (
	NoModule   ModuleID   = 0
	NoFile     FileID     = 0
	NoTypeDef  TypeDefID  = 0
	NoFunction FunctionID = 0
	NoGlobal   GlobalID   = 0
)

func (id ModuleID) IsValid() bool   { return id != NoModule }
func (id FileID) IsValid() bool     { return id != NoFile }
func (id TypeDefID) IsValid() bool  { return id != NoTypeDef }
func (id FunctionID) IsValid() bool { return id != NoFunction }
func (id GlobalID) IsValid() bool   { return id != NoGlobal }
