package metaphor

// NodeType identifies the kind of a syntax tree node.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeText
	NodeRole
	NodeContext
	NodeAction
)

func (t NodeType) String() string {
	switch t {
	case NodeRoot:
		return "root"
	case NodeText:
		return "text"
	case NodeRole:
		return "Role"
	case NodeContext:
		return "Context"
	case NodeAction:
		return "Action"
	default:
		return "unknown"
	}
}

// Node is an element of a parsed Metaphor document. For blocks, Value is the
// text following the keyword; for text nodes it is the line itself.
type Node struct {
	Type     NodeType
	Value    string
	Children []*Node
}

func (n *Node) add(child *Node) {
	n.Children = append(n.Children, child)
}

// Child returns the first direct child of the given type, or nil.
func (n *Node) Child(t NodeType) *Node {
	for _, c := range n.Children {
		if c.Type == t {
			return c
		}
	}
	return nil
}
