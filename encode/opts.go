package encode

import "github.com/bridge-core/tree-editor/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects compact JSON output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
