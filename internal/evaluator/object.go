package evaluator

import "strconv"

// ObjectType names the variant of an Object.
type ObjectType string

const (
	IntegerObj     ObjectType = "INTEGER"
	BooleanObj     ObjectType = "BOOLEAN"
	ReturnValueObj ObjectType = "RETURN_VALUE"
	NullObj        ObjectType = "NULL"
)

// Object is a runtime value. The set of variants is closed; all of them are
// plain comparable values.
type Object interface {
	Type() ObjectType
	Inspect() string
	isObject()
}

type (
	Integer struct{ Value int64 }
	Boolean struct{ Value bool }
	Null    struct{}

	// ReturnValue marks a value produced by a return statement while it
	// travels up through enclosing blocks. It never escapes a Program.
	ReturnValue struct{ Value Object }
)

func (Integer) Type() ObjectType     { return IntegerObj }
func (Boolean) Type() ObjectType     { return BooleanObj }
func (Null) Type() ObjectType        { return NullObj }
func (ReturnValue) Type() ObjectType { return ReturnValueObj }

func (v Integer) Inspect() string     { return strconv.FormatInt(v.Value, 10) }
func (v Boolean) Inspect() string     { return strconv.FormatBool(v.Value) }
func (Null) Inspect() string          { return "null" }
func (v ReturnValue) Inspect() string { return Format(v.Value) }

func (Integer) isObject()     {}
func (Boolean) isObject()     {}
func (Null) isObject()        {}
func (ReturnValue) isObject() {}

// Format produces the canonical printed representation for a value.
func Format(v Object) string {
	if v == nil {
		return Null{}.Inspect()
	}
	return v.Inspect()
}

var (
	null     Object = Null{}
	trueObj  Object = Boolean{Value: true}
	falseObj Object = Boolean{Value: false}
)

func nativeBool(b bool) Object {
	if b {
		return trueObj
	}
	return falseObj
}

// isTruthy treats null and false as falsy. A return marker is as truthy as
// the value it carries.
func isTruthy(v Object) bool {
	switch x := v.(type) {
	case Boolean:
		return x.Value
	case Null:
		return false
	case ReturnValue:
		return isTruthy(x.Value)
	case nil:
		return false
	default:
		return true
	}
}
