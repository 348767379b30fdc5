package domain

import "strings"

var identifierReplacer = strings.NewReplacer(".", "_", "-", "_")

// Identifier derives the C++ symbol for a file name: dots and dashes become
// underscores, everything else is kept.
func Identifier(fileName string) string {
	return identifierReplacer.Replace(fileName)
}

// ScopeName derives the namespace for a directory name.
func ScopeName(dirName string) string {
	return strings.ToLower(dirName)
}

// IsHidden reports whether an entry is skipped by the scanner.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
