package matchset

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the internal representation of a Set.
type Kind int

const (
	_ Kind = iota // zero value is invalid, a Set built by New never reports it

	KindBitmask
	KindSlice
)
