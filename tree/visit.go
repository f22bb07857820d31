package tree

// Visit calls f on n before (isPost false) and after (isPost true) its
// children. Children are visited only when the pre call returns true.
func Visit(n Node, f func(n Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if c, ok := n.(Container); ok && dive {
		for _, child := range c.Children() {
			if err := Visit(child, f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Root follows attached parent links up from n.
func Root(n Node) Node {
	res := n
	for Attached(res) {
		res = res.Parent()
	}
	return res
}

// Depth is the number of attached ancestors of n.
func Depth(n Node) int {
	d := 0
	for Attached(n) {
		n = n.Parent()
		d++
	}
	return d
}

// SelectedNodes returns the selected nodes under root in document order.
func SelectedNodes(root Node) []Node {
	var res []Node
	Visit(root, func(n Node, isPost bool) (bool, error) {
		if !isPost && n.Selected() {
			res = append(res, n)
		}
		return true, nil
	})
	return res
}
