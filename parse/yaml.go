package parse

import (
	"fmt"

	"github.com/bridge-core/tree-editor/tree"

	"github.com/goccy/go-yaml"
)

func decodeYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(tree.Members, 0, len(x))
		seen := map[string]bool{}
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			if seen[k] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
			}
			seen[k] = true
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, tree.Member{Key: k, Value: val})
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return v, nil
}
