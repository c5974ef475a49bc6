package graphql

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/kestrelgraph/graphql/gqlerrors"
	"github.com/kestrelgraph/graphql/language/ast"
	"github.com/kestrelgraph/graphql/language/printer"
	"github.com/kestrelgraph/graphql/value"
)

// Prepares an object map of variableValues of the correct type based on the
// provided variable definitions and arbitrary input. If the input cannot be
// parsed to match the variable definitions, a GraphQLError will be returned.
//
// inputs holds the raw, host-supplied variables (JSON-shaped any); the
// result holds each variable coerced into the InputValue model, which is
// what the rest of the engine — argument coercion, the Resolvable
// dispatch path — consumes from here on.
func getVariableValues(schema Schema, definitionASTs []*ast.VariableDefinition, inputs map[string]any) (map[string]value.InputValue, error) {
	values := make(map[string]value.InputValue, len(definitionASTs))
	for _, defAST := range definitionASTs {
		if defAST == nil || defAST.Variable == nil || defAST.Variable.Name == nil {
			continue
		}
		varName := defAST.Variable.Name.Value
		varValue, err := getVariableValue(schema, defAST, value.InputValueFromGo(inputs[varName]))
		if err != nil {
			return values, err
		}
		values[varName] = varValue
	}
	return values, nil
}

// Prepares an object map of argument values given a list of argument
// definitions and list of argument AST nodes. This is §4.F's Variable/
// Argument Coercion deliverable: every argument comes out as a typed
// InputValue, ready for Resolvable.ResolveField or for bridging to the
// legacy map[string]any ResolveParams.Args via value.InputValueToGo.
func getArgumentValues(argDefs []*Argument, argASTs []*ast.Argument, variableValues map[string]value.InputValue) map[string]value.InputValue {
	argASTMap := make(map[string]*ast.Argument, len(argASTs))
	for _, argAST := range argASTs {
		if argAST.Name != nil {
			argASTMap[argAST.Name.Value] = argAST
		}
	}
	results := make(map[string]value.InputValue, len(argDefs))
	for _, argDef := range argDefs {
		name := argDef.PrivateName
		var valueAST ast.Value
		if argAST, ok := argASTMap[name]; ok {
			valueAST = argAST.Value
		}
		v := valueFromAST(valueAST, argDef.Type, variableValues)
		if isNullishInput(v) {
			v = value.InputValueFromGo(argDef.DefaultValue)
		}
		if !isNullishInput(v) {
			results[name] = v
		}
	}
	return results
}

// Given a variable definition, and any value of input, return a value which
// adheres to the variable definition, or throw an error.
func getVariableValue(schema Schema, definitionAST *ast.VariableDefinition, input value.InputValue) (value.InputValue, error) {
	ttype, err := typeFromAST(schema, definitionAST.Type)
	if err != nil {
		return nil, err
	}
	variable := definitionAST.Variable

	if ttype == nil || !IsInputType(ttype) {
		return value.Null{}, gqlerrors.NewError(
			gqlerrors.ErrorTypeInvalidInput,
			fmt.Sprintf(`Variable "$%v" expected value of type `+
				`"%v" which cannot be used as an input type.`, variable.Name.Value, printer.Print(definitionAST.Type)),
			[]ast.Node{definitionAST},
			"",
			nil,
			[]int{},
			nil,
		)
	}

	isValid, messages := isValidInputValue(input, ttype)
	if isValid {
		if isNullishInput(input) {
			defaultValue := definitionAST.DefaultValue
			if defaultValue != nil {
				val := valueFromAST(defaultValue, ttype, map[string]value.InputValue{})
				return val, nil
			}
		}
		return coerceValue(ttype, input), nil
	}
	if isNullishInput(input) {
		return value.Null{}, gqlerrors.NewError(
			gqlerrors.ErrorTypeInvalidInput,
			fmt.Sprintf(`Variable "$%v" of required type `+
				`"%v" was not provided.`, variable.Name.Value, printer.Print(definitionAST.Type)),
			[]ast.Node{definitionAST},
			"",
			nil,
			[]int{},
			nil,
		)
	}
	// convert input interface into string for error message
	var inputStr string
	b, err := json.Marshal(value.InputValueToGo(input))
	if err == nil {
		inputStr = string(b)
	}
	messagesStr := ""
	if len(messages) > 0 {
		messagesStr = "\n" + strings.Join(messages, "\n")
	}
	return value.Null{}, gqlerrors.NewError(
		gqlerrors.ErrorTypeInvalidInput,
		fmt.Sprintf(`Variable "$%v" got invalid value `+
			`%v.%v`, variable.Name.Value, inputStr, messagesStr),
		[]ast.Node{definitionAST},
		"",
		nil,
		[]int{},
		nil,
	)
}

// Given a type and an InputValue, return a runtime InputValue coerced to
// match the type: unwraps NonNull, spreads a bare value into a one-element
// list where a list is expected, fills in InputObject field defaults, and
// routes Scalar/Enum leaves through the type's ParseValue hook.
func coerceValue(ttype Input, v value.InputValue) value.InputValue {
	if ttype, ok := ttype.(*NonNull); ok {
		return coerceValue(ttype.OfType, v)
	}
	if isNullishInput(v) {
		return value.Null{}
	}
	if ttype, ok := ttype.(*List); ok {
		itemType := ttype.OfType
		if list, ok := v.(value.InputList); ok {
			values := make(value.InputList, 0, len(list))
			for _, item := range list {
				values = append(values, coerceValue(itemType, item))
			}
			return values
		}
		return value.InputList{coerceValue(itemType, v)}
	}
	if ttype, ok := ttype.(*InputObject); ok {
		valueObj, _ := v.(*value.InputObject)

		obj := value.NewInputObject()
		for fieldName, field := range ttype.Fields() {
			var fv value.InputValue
			if valueObj != nil {
				fv, _ = valueObj.Get(fieldName)
			}
			fieldValue := coerceValue(field.Type, fv)
			if isNullishInput(fieldValue) {
				fieldValue = value.InputValueFromGo(field.DefaultValue)
			}
			if !isNullishInput(fieldValue) {
				obj.Set(fieldName, fieldValue)
			}
		}
		return obj
	}

	switch ttype := ttype.(type) {
	case *Scalar:
		parsed := ttype.ParseValue(value.InputValueToGo(v))
		if !isNullish(parsed) {
			return value.InputValueFromGo(parsed)
		}
	case *Enum:
		parsed := ttype.ParseValue(value.InputValueToGo(v))
		if !isNullish(parsed) {
			return value.InputValueFromGo(parsed)
		}
	}
	return value.Null{}
}

// graphql-js/src/utilities.js`
// TODO: figure out where to organize utils
// TODO: change to *Schema
func typeFromAST(schema Schema, inputTypeAST ast.Type) (Type, error) {
	switch inputTypeAST := inputTypeAST.(type) {
	case *ast.List:
		innerType, err := typeFromAST(schema, inputTypeAST.Type)
		if err != nil {
			return nil, err
		}
		return NewList(innerType), nil
	case *ast.NonNull:
		innerType, err := typeFromAST(schema, inputTypeAST.Type)
		if err != nil {
			return nil, err
		}
		return NewNonNull(innerType), nil
	case *ast.Named:
		nameValue := ""
		if inputTypeAST.Name != nil {
			nameValue = inputTypeAST.Name.Value
		}
		ttype := schema.Type(nameValue)
		return ttype, nil
	default:
		if _, ok := inputTypeAST.(*ast.Named); !ok {
			return nil, gqlerrors.NewFormattedError("Must be a named type.")
		}
		return nil, nil
	}
}

// isValidInputValue alias isValidJSValue
// Given an InputValue and a GraphQL type, determine if the value will be
// accepted for that type. This is primarily useful for validating the
// runtime values of query variables.
func isValidInputValue(v value.InputValue, ttype Input) (bool, []string) {
	if ttype, ok := ttype.(*NonNull); ok {
		if isNullishInput(v) {
			if ttype.OfType.Name() != "" {
				return false, []string{fmt.Sprintf(`Expected "%v!", found null.`, ttype.OfType.Name())}
			}
			return false, []string{"Expected non-null value, found null."}
		}
		return isValidInputValue(v, ttype.OfType)
	}

	if isNullishInput(v) {
		return true, nil
	}

	switch ttype := ttype.(type) {
	case *List:
		itemType := ttype.OfType
		if list, ok := v.(value.InputList); ok {
			var messagesReduce []string
			for i, item := range list {
				_, messages := isValidInputValue(item, itemType)
				for _, message := range messages {
					messagesReduce = append(messagesReduce, fmt.Sprintf(`In element #%v: %v`, i, message))
				}
			}
			return len(messagesReduce) == 0, messagesReduce
		}
		return isValidInputValue(v, itemType)

	case *InputObject:
		valueObj, ok := v.(*value.InputObject)
		if !ok {
			return false, []string{fmt.Sprintf(`Expected "%v", found not an object.`, ttype.Name())}
		}
		fields := ttype.Fields()

		// to ensure stable order of field evaluation

		fieldNames := make([]string, 0, len(fields))
		for fieldName := range fields {
			fieldNames = append(fieldNames, fieldName)
		}
		sort.Strings(fieldNames)

		valueObjFieldNames := append([]string(nil), valueObj.Keys()...)
		sort.Strings(valueObjFieldNames)

		var messagesReduce []string

		// Ensure every provided field is defined.
		for _, fieldName := range valueObjFieldNames {
			if _, ok := fields[fieldName]; !ok {
				messagesReduce = append(messagesReduce, fmt.Sprintf(`In field "%v": Unknown field.`, fieldName))
			}
		}
		// Ensure every defined field is valid.
		for _, fieldName := range fieldNames {
			fv, _ := valueObj.Get(fieldName)
			_, messages := isValidInputValue(fv, fields[fieldName].Type)
			for _, message := range messages {
				messagesReduce = append(messagesReduce, fmt.Sprintf(`In field "%v": %v`, fieldName, message))
			}
		}

		return len(messagesReduce) == 0, messagesReduce
	}

	switch ttype := ttype.(type) {
	case *Scalar:
		goVal := value.InputValueToGo(v)
		parsedVal := ttype.ParseValue(goVal)
		if isNullish(parsedVal) {
			return false, []string{fmt.Sprintf(`Expected type "%v", found "%v".`, ttype.Name(), goVal)}
		}
		return true, nil

	case *Enum:
		goVal := value.InputValueToGo(v)
		parsedVal := ttype.ParseValue(goVal)
		if isNullish(parsedVal) {
			return false, []string{fmt.Sprintf(`Expected type "%v", found "%v".`, ttype.Name(), goVal)}
		}
		return true, nil
	}
	return true, nil
}

// Returns true if a raw Go value is null, undefined, or NaN. Used for the
// scalar/enum ParseValue and ParseLiteral results and the executor's
// output-side serialization, both of which traffic in bare any rather
// than the InputValue/Value models.
func isNullish(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case float32:
		return math.IsNaN(float64(v))
	case float64:
		return math.IsNaN(v)
	}
	// The any can hide an underlying nil ptr
	if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr {
		return v.IsNil()
	}
	return false
}

// isNullishInput is isNullish's counterpart for the InputValue model: an
// absent argument is a nil interface, an explicit null literal is
// value.Null{}, and both mean the same thing to the coercion pipeline.
func isNullishInput(v value.InputValue) bool {
	switch v.(type) {
	case nil:
		return true
	case value.Null:
		return true
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

/**
 * Produces an InputValue given a GraphQL Value AST.
 *
 * A GraphQL type must be provided, which will be used to interpret different
 * GraphQL Value literals.
 *
 * | GraphQL Value        | InputValue           |
 * | -------------------- | --------------------- |
 * | Input Object         | *value.InputObject    |
 * | List                 | value.InputList       |
 * | Boolean               | value.Boolean         |
 * | String / Enum Value  | value.String/value.Enum |
 * | Int / Float          | value.Int/value.Float |
 *
 */
func valueFromAST(valueAST ast.Value, ttype Input, variables map[string]value.InputValue) value.InputValue {
	if ttype, ok := ttype.(*NonNull); ok {
		return valueFromAST(valueAST, ttype.OfType, variables)
	}

	if valueAST == nil {
		return value.Null{}
	}

	if valueAST, ok := valueAST.(*ast.Variable); ok {
		if valueAST.Name == nil {
			return value.Null{}
		}
		if variables == nil {
			return value.Null{}
		}
		variableName := valueAST.Name.Value
		variableVal, ok := variables[variableName]
		if !ok {
			return value.Null{}
		}
		// Note: we're not doing any checking that this variable is correct. We're
		// assuming that this query has been validated and the variable usage here
		// is of the correct type.
		return variableVal
	}

	if ttype, ok := ttype.(*List); ok {
		itemType := ttype.OfType
		if valueAST, ok := valueAST.(*ast.ListValue); ok {
			values := make(value.InputList, 0, len(valueAST.Values))
			for _, itemAST := range valueAST.Values {
				values = append(values, valueFromAST(itemAST, itemType, variables))
			}
			return values
		}
		return value.InputList{valueFromAST(valueAST, itemType, variables)}
	}

	if ttype, ok := ttype.(*InputObject); ok {
		objAST, ok := valueAST.(*ast.ObjectValue)
		if !ok {
			return value.Null{}
		}
		fieldASTs := map[string]*ast.ObjectField{}
		for _, fieldAST := range objAST.Fields {
			if fieldAST.Name == nil {
				continue
			}
			fieldName := fieldAST.Name.Value
			fieldASTs[fieldName] = fieldAST

		}
		obj := value.NewInputObject()
		for fieldName, field := range ttype.Fields() {
			fieldAST, ok := fieldASTs[fieldName]
			if !ok || fieldAST == nil {
				continue
			}
			fieldValue := valueFromAST(fieldAST.Value, field.Type, variables)
			if isNullishInput(fieldValue) {
				fieldValue = value.InputValueFromGo(field.DefaultValue)
			}
			if !isNullishInput(fieldValue) {
				obj.Set(fieldName, fieldValue)
			}
		}
		return obj
	}

	switch ttype := ttype.(type) {
	case *Scalar:
		parsed := ttype.ParseLiteral(valueAST)
		if !isNullish(parsed) {
			return value.InputValueFromGo(parsed)
		}
	case *Enum:
		parsed := ttype.ParseLiteral(valueAST)
		if !isNullish(parsed) {
			return value.InputValueFromGo(parsed)
		}
	}
	return value.Null{}
}
