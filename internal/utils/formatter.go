package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
)

// FormatGoCodeString formats Go source code from a string and returns a string
func FormatGoCodeString(source string) (string, error) {
	formatted, err := format.Source([]byte(source))
	if err != nil {
		// If formatting fails, parse to tell invalid syntax apart from a
		// formatter problem
		fset := token.NewFileSet()
		_, parseErr := parser.ParseFile(fset, "", source, parser.ParseComments)
		if parseErr != nil {
			return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
		}
		return source, err
	}
	return string(formatted), nil
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
