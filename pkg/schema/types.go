package schema

import (
	"fmt"
	"strings"
)

// PropertyType is the required type of a property definition.
type PropertyType int

const (
	PropertyTypeUndefined PropertyType = iota
	PropertyTypeString
	PropertyTypeBinary
	PropertyTypeLong
	PropertyTypeDouble
	PropertyTypeDate
	PropertyTypeBoolean
	PropertyTypeName
	PropertyTypePath
	PropertyTypeReference
	PropertyTypeWeakReference
	PropertyTypeURI
	PropertyTypeDecimal
)

var propertyTypeNames = map[PropertyType]string{
	PropertyTypeUndefined:     "UNDEFINED",
	PropertyTypeString:        "STRING",
	PropertyTypeBinary:        "BINARY",
	PropertyTypeLong:          "LONG",
	PropertyTypeDouble:        "DOUBLE",
	PropertyTypeDate:          "DATE",
	PropertyTypeBoolean:       "BOOLEAN",
	PropertyTypeName:          "NAME",
	PropertyTypePath:          "PATH",
	PropertyTypeReference:     "REFERENCE",
	PropertyTypeWeakReference: "WEAKREFERENCE",
	PropertyTypeURI:           "URI",
	PropertyTypeDecimal:       "DECIMAL",
}

func (t PropertyType) String() string {
	if name, ok := propertyTypeNames[t]; ok {
		return name
	}
	return "UNDEFINED"
}

// ParsePropertyType maps a CND type keyword to its PropertyType. Matching is
// case-insensitive; "*" is the undefined type.
func ParsePropertyType(s string) (PropertyType, error) {
	if s == "*" {
		return PropertyTypeUndefined, nil
	}
	for t, name := range propertyTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return PropertyTypeUndefined, fmt.Errorf("unknown property type `%s`", s)
}

// OnParentVersion is the on-parent-version behavior of a property or child
// node definition.
type OnParentVersion int

const (
	OnParentVersionCopy OnParentVersion = iota
	OnParentVersionVersion
	OnParentVersionInitialize
	OnParentVersionCompute
	OnParentVersionIgnore
	OnParentVersionAbort
)

var onParentVersionNames = map[OnParentVersion]string{
	OnParentVersionCopy:       "COPY",
	OnParentVersionVersion:    "VERSION",
	OnParentVersionInitialize: "INITIALIZE",
	OnParentVersionCompute:    "COMPUTE",
	OnParentVersionIgnore:     "IGNORE",
	OnParentVersionAbort:      "ABORT",
}

func (v OnParentVersion) String() string {
	if name, ok := onParentVersionNames[v]; ok {
		return name
	}
	return "COPY"
}

// ParseOnParentVersion maps an OPV keyword to its value, case-insensitively.
func ParseOnParentVersion(s string) (OnParentVersion, error) {
	for v, name := range onParentVersionNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return OnParentVersionCopy, fmt.Errorf("unknown on-parent-version value `%s`", s)
}

// IsOnParentVersionKeyword reports whether s is one of the OPV keywords.
func IsOnParentVersionKeyword(s string) bool {
	_, err := ParseOnParentVersion(s)
	return err == nil
}
