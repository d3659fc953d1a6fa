// Package enum defines the enumerations shared across shade packages.
// Exported types and values are produced by go-pkgz/enum from the lower-case declarations below.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeUnset theme = iota // enum:alias=
	themeLight
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres,postgresql
)
