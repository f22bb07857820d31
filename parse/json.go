package parse

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/tree"

	"github.com/goccy/go-json"
)

func decodeJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailing, dec.InputOffset())
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, x, dec.InputOffset())
	case json.Number:
		return stdjson.Number(x), nil
	}
	return tok, nil
}

func decodeObject(dec *json.Decoder) (tree.Members, error) {
	res := tree.Members{}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		k, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrParse, tok)
		}
		if seen[k] {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrDuplicateKey, k, dec.InputOffset())
		}
		seen[k] = true
		v, err := decodeValue(dec)
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		res = append(res, tree.Member{Key: k, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, unexpectedEOF(err))
	}
	return res, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	res := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		res = append(res, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, unexpectedEOF(err))
	}
	return res, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: %w", ErrParse, io.ErrUnexpectedEOF)
	}
	return err
}
