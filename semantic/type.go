package semantic

// Type is the static type assigned to an expression.
type Type string

const (
	TypeInt          Type = "Int"
	TypeString       Type = "String"
	TypeBool         Type = "Bool"
	TypeVoid         Type = "Void"
	TypeMaquina      Type = "Maquina"
	TypeConcentrador Type = "Concentrador"
	TypeCoaxial      Type = "Coaxial"
	TypeUnknown      Type = "Unknown"
)

func (t Type) String() string {
	return string(t)
}

// compatible reports whether a value of type actual may appear where
// expected is required. Unknown matches anything, and Int and Bool
// convert to each other (0 is false, anything else is true).
func compatible(actual, expected Type) bool {
	if actual == TypeUnknown || expected == TypeUnknown {
		return true
	}
	if actual == expected {
		return true
	}
	switch {
	case actual == TypeInt && expected == TypeBool:
		return true
	case actual == TypeBool && expected == TypeInt:
		return true
	}
	return false
}
