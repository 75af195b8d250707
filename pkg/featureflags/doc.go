// Package featureflags is the declared registry of feature flag defaults.
//
// Each group is a string-based enumeration with a compiled-in default per
// case:
//
//	featureflags.SearchBoolEnableHistory.DefaultValue() // true
//	featureflags.AppStringFeatureFlags.DefaultValueOf("apiEndpoint")
//
// Typed constants cannot name an undeclared flag; the string-keyed lookups
// return flagdefaults.ErrUnknownFlag for names outside the enumeration.
package featureflags

//go:generate go run github.com/vovanwin/flagdefaults/cmd/flagscan gen --root ../../testdata/flags --source "**/*FeatureFlag.swift" --output . --package featureflags
