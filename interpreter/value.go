package interpreter

import "strconv"

type ValueKind string

const (
	KindInt    ValueKind = "Int"
	KindString ValueKind = "String"
	KindBool   ValueKind = "Bool"
	KindVoid   ValueKind = "Void"
)

// Value is a runtime value. Int and Bool convert freely between each
// other; 0 is false and everything else is true.
type Value struct {
	Kind ValueKind
	Int  int
	Str  string
	Bool bool
}

func IntValue(n int) Value {
	return Value{Kind: KindInt, Int: n}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func VoidValue() Value {
	return Value{Kind: KindVoid}
}

func (v Value) AsInt() (int, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case KindBool:
		return v.Bool, true
	case KindInt:
		return v.Int != 0, true
	}
	return false, false
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return "void"
}
