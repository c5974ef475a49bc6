package value

// InputValue is the superset of Value used for literal arguments in the
// AST and for coerced variables: it adds Variable references, Enum
// names, and an ordered InputObject distinct from the response Object.
type InputValue interface {
	isInputValue()
}

func (Null) isInputValue()    {}
func (Int) isInputValue()     {}
func (Float) isInputValue()   {}
func (String) isInputValue()  {}
func (Boolean) isInputValue() {}

// InputList is an ordered sequence of InputValues, e.g. a list literal
// or a coerced list variable.
type InputList []InputValue

func (InputList) isInputValue() {}

// Variable is an unresolved reference to a request variable by name.
type Variable string

func (Variable) isInputValue() {}

// Enum is a bare enum value name, distinct from String so coercion can
// tell the two apart before the enum's declared type is known.
type Enum string

func (Enum) isInputValue() {}

// InputObject is an ordered mapping from field name to InputValue,
// used for input-object literals and coerced input-object variables.
type InputObject struct {
	keys   []string
	values map[string]InputValue
}

func (*InputObject) isInputValue() {}

// NewInputObject returns an empty, ready-to-use ordered input object.
func NewInputObject() *InputObject {
	return &InputObject{values: make(map[string]InputValue)}
}

func (o *InputObject) Set(key string, v InputValue) {
	if o.values == nil {
		o.values = make(map[string]InputValue)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *InputObject) Get(key string) (InputValue, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

func (o *InputObject) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// InputValueFromGo converts a plain Go value (as already produced by
// the argument/variable coercion path) into the InputValue sum type,
// for callers that hold coerced arguments as bare any and need the
// InputValue shape, e.g. the Resolvable dispatch.
func InputValueFromGo(v any) InputValue {
	switch v := v.(type) {
	case nil:
		return Null{}
	case InputValue:
		return v
	case bool:
		return Boolean(v)
	case string:
		return String(v)
	case int:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(int32(v))
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case []any:
		l := make(InputList, len(v))
		for i, e := range v {
			l[i] = InputValueFromGo(e)
		}
		return l
	case map[string]any:
		o := NewInputObject()
		for k, e := range v {
			o.Set(k, InputValueFromGo(e))
		}
		return o
	default:
		return Null{}
	}
}

// InputValueToGo converts an InputValue back into plain Go data, for
// callers that bridge into code which still expects bare any — the
// scalar/enum ParseValue and ParseLiteral hooks, and the legacy
// map[string]any shape resolvers receive through ResolveParams.Args.
// An unresolved Variable has no Go equivalent at this point and
// converts to nil; callers that still carry unresolved variables
// should substitute them before calling InputValueToGo.
func InputValueToGo(iv InputValue) any {
	switch iv := iv.(type) {
	case nil:
		return nil
	case Null:
		return nil
	case Variable:
		return nil
	case Boolean:
		return bool(iv)
	case String:
		return string(iv)
	case Enum:
		return string(iv)
	case Int:
		return int(iv)
	case Float:
		return float64(iv)
	case InputList:
		out := make([]any, len(iv))
		for i, e := range iv {
			out[i] = InputValueToGo(e)
		}
		return out
	case *InputObject:
		out := make(map[string]any, len(iv.Keys()))
		for _, k := range iv.Keys() {
			v, _ := iv.Get(k)
			out[k] = InputValueToGo(v)
		}
		return out
	default:
		return nil
	}
}

// ToValue converts a fully-coerced InputValue into a response Value,
// used once coercion has resolved variables and enums to concrete
// leaves. Variable and bare Enum nodes have no Value equivalent and
// convert to Null — callers must resolve them before calling ToValue.
func ToValue(iv InputValue) Value {
	switch iv := iv.(type) {
	case nil:
		return Null{}
	case Null:
		return Null{}
	case Int:
		return iv
	case Float:
		return iv
	case String:
		return iv
	case Boolean:
		return iv
	case Enum:
		return String(iv)
	case InputList:
		l := make(List, len(iv))
		for i, e := range iv {
			l[i] = ToValue(e)
		}
		return l
	case *InputObject:
		o := NewObject()
		for _, k := range iv.Keys() {
			v, _ := iv.Get(k)
			o.Set(k, ToValue(v))
		}
		return o
	default:
		return Null{}
	}
}
