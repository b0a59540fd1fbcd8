/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// The result value type for each built-in scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type                         |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// | DateTime     | string (RFC 3339)               |
// | JSONString   | string (JSON text)              |
// +--------------+---------------------------------+

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger       = "not an integer"
	coercionErrorIntegerTooLarge  = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall  = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric       = "not a numeric value"
	coercionErrorNonBoolean       = "not a boolean value"
	coercionErrorNonTime          = "not a time value"
	coercionErrorUnsupportedValue = "unsupported value"
)

func raiseCoercionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, reason)
}

// hexer is implemented by identifiers with a hexadecimal representation such as BSON ObjectIDs.
type hexer interface {
	Hex() string
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// The Int scalar type represents a signed 32‐bit numeric non‐fractional value as per spec.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

func coerceInt(value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i > math.MaxInt32 {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
		} else if i < math.MinInt32 {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooSmall)
		}
		return int(i), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt32 {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(u), nil

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		// Make sure the conversion is lossless.
		i := int32(f)
		if float64(i) != f {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(i), nil

	case reflect.String:
		i, err := strconv.ParseInt(v.String(), 10, 32)
		if err != nil {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(i), nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return coerceInt(v.Elem().Interface())
	}

	return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
}

var intTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: CoerceScalarResultFunc(coerceInt),
})

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// The Float scalar type represents signed double‐precision fractional values as specified by IEEE
// 754.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

func coerceFloat(value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return float64(1), nil
		}
		return float64(0), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return f, nil

	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return f, nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return coerceFloat(v.Elem().Interface())
	}

	// Decimal types such as primitive.Decimal128 know how to print themselves.
	if s, ok := value.(fmt.Stringer); ok {
		return coerceFloat(s.String())
	}

	return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
}

var floatTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values as " +
		"specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: CoerceScalarResultFunc(coerceFloat),
})

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// The String scalar type represents textual data, represented as UTF‐8 character sequences.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

func coerceString(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case []byte:
		// Binary data is exposed in base64.
		return base64.StdEncoding.EncodeToString(value), nil
	case fmt.Stringer:
		return value.String(), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil

	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil

	case reflect.String:
		return v.String(), nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return coerceString(v.Elem().Interface())
	}

	return nil, raiseCoercionError("String", value, coercionErrorUnsupportedValue)
}

var stringTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences. The String type is most often used by GraphQL to represent free-form " +
		"human-readable text.",
	ResultCoercer: CoerceScalarResultFunc(coerceString),
})

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// The Boolean scalar type represents true or false.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

func coerceBoolean(value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return coerceBoolean(v.Elem().Interface())
	}

	return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
}

var booleanTypeInstance = MustNewScalar(&ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: CoerceScalarResultFunc(coerceBoolean),
})

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// The ID scalar type represents a unique identifier. It is serialized in the same way as a String.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

func coerceID(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case hexer:
		return value.Hex(), nil
	case fmt.Stringer:
		return value.String(), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil

	case reflect.String:
		return v.String(), nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return coerceID(v.Elem().Interface())
	}

	return nil, raiseCoercionError("ID", value, coercionErrorUnsupportedValue)
}

var idTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; " +
		"however, it is not intended to be human-readable.",
	ResultCoercer: CoerceScalarResultFunc(coerceID),
})

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// DateTime
//===-----------------------------------------------------------------------------------------===//

func coerceDateTime(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case time.Time:
		return value.Format(time.RFC3339Nano), nil
	case *time.Time:
		if value == nil {
			return nil, nil
		}
		return value.Format(time.RFC3339Nano), nil
	case string:
		if _, err := time.Parse(time.RFC3339Nano, value); err != nil {
			return nil, raiseCoercionError("DateTime", value, coercionErrorNonTime)
		}
		return value, nil
	case interface{ Time() time.Time }:
		// primitive.DateTime and friends.
		return value.Time().UTC().Format(time.RFC3339Nano), nil
	}
	return nil, raiseCoercionError("DateTime", value, coercionErrorNonTime)
}

var dateTimeTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "DateTime",
	Description: "The `DateTime` scalar type represents a DateTime value as specified by " +
		"[iso8601](https://en.wikipedia.org/wiki/ISO_8601).",
	ResultCoercer: CoerceScalarResultFunc(coerceDateTime),
})

// DateTime returns the DateTime scalar which serializes time values in RFC 3339 format.
func DateTime() *Scalar {
	return dateTimeTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// JSONString
//===-----------------------------------------------------------------------------------------===//
// JSONString carries values that have no structured representation in the type system (such as
// dictionaries and GeoJSON shapes) as JSON text. Nested structure is flattened into the text, so a
// client has to parse the string to recover it.

var jsonStringAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func coerceJSONString(value interface{}) (interface{}, error) {
	s, err := jsonStringAPI.MarshalToString(value)
	if err != nil {
		return nil, NewError(fmt.Sprintf("JSONString cannot represent %T", value), err, ErrKindCoercion)
	}
	return s, nil
}

var jsonStringTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "JSONString",
	Description: "Allows use of a JSON String for input / output from the GraphQL schema. Use of " +
		"this type is *not recommended* as you lose the benefits of having a defined, static " +
		"schema (one of the key benefits of GraphQL).",
	ResultCoercer: CoerceScalarResultFunc(coerceJSONString),
})

// JSONString returns the JSONString scalar which serializes any value into JSON text.
func JSONString() *Scalar {
	return jsonStringTypeInstance
}

// IsBuiltinScalar returns true if s is one of the scalars defined by GraphQL specification (i.e.,
// Int, Float, String, Boolean and ID).
func IsBuiltinScalar(s *Scalar) bool {
	switch s {
	case intTypeInstance, floatTypeInstance, stringTypeInstance, booleanTypeInstance, idTypeInstance:
		return true
	}
	return false
}
