package text

import "fmt"

// Symbol is the tagged variant at the root of every concrete syntax tree:
// either a Leaf wrapping one Token, or a Node tagging an ordered sequence
// of (possibly absent) children. Nodes exclusively own their present
// children.
type Symbol interface {
	isSymbol()
}

// Leaf wraps a single Token. Leaves are held by pointer so that
// mutate-in-place visitors (mutate_leaves, rebase) can update the wrapped
// Token without replacing the Symbol slot that holds it.
type Leaf struct {
	Token Token
}

func (*Leaf) isSymbol() {}

// Node tags an ordered sequence of children. A nil entry in Children is an
// absent ("null") child and must be preserved by visitors as a gap in the
// child-rank sequence, not silently skipped from the slice.
type Node struct {
	Tag      int
	Children []Symbol
}

func (*Node) isSymbol() {}

// AsLeaf returns sym as a *Leaf if it is one.
func AsLeaf(sym Symbol) (*Leaf, bool) {
	l, ok := sym.(*Leaf)
	return l, ok
}

// AsNode returns sym as a *Node if it is one.
func AsNode(sym Symbol) (*Node, bool) {
	n, ok := sym.(*Node)
	return n, ok
}

// MustLeaf returns sym as a *Leaf, panicking if it is not one.
func MustLeaf(sym Symbol) *Leaf {
	l, ok := AsLeaf(sym)
	if !ok {
		panic(fmt.Sprintf("text: MustLeaf: %T is not a Leaf", sym))
	}
	return l
}

// MustNode returns sym as a *Node, panicking if it is not one.
func MustNode(sym Symbol) *Node {
	n, ok := AsNode(sym)
	if !ok {
		panic(fmt.Sprintf("text: MustNode: %T is not a Node", sym))
	}
	return n
}

// RecursiveVisitor is implemented by callers that drive their own
// recursion into children; used for search and printing.
type RecursiveVisitor interface {
	Visit(sym Symbol)
}

// MutatingVisitor is the mutating counterpart: it receives a pointer to
// the owning slot so it can replace or null out the subtree in place.
type MutatingVisitor interface {
	VisitMutable(slot *Symbol)
}

// SingleLevelVisitor does not recurse; the caller drives traversal
// (typically via SyntaxTreeContext) to implement context-aware walks.
type SingleLevelVisitor interface {
	VisitOneLevel(sym Symbol)
}

// SyntaxTreeContext is a stack of ancestor Nodes, live only for the
// duration of a single-level-driven walk. It is never stored past the walk.
type SyntaxTreeContext struct {
	stack []*Node
}

// Push records n as the current innermost ancestor.
func (c *SyntaxTreeContext) Push(n *Node) { c.stack = append(c.stack, n) }

// Pop removes the innermost ancestor.
func (c *SyntaxTreeContext) Pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Ancestors returns the stack from outermost to innermost. The caller must
// not mutate the returned slice.
func (c *SyntaxTreeContext) Ancestors() []*Node { return c.stack }

// Innermost returns the nearest ancestor, or nil if the stack is empty.
func (c *SyntaxTreeContext) Innermost() *Node {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// LeftmostLeaf descends through the leftmost present child at each level
// until it reaches a Leaf, or returns nil if sym is nil or an all-absent
// subtree.
func LeftmostLeaf(sym Symbol) *Leaf {
	for {
		switch v := sym.(type) {
		case nil:
			return nil
		case *Leaf:
			return v
		case *Node:
			next := firstPresentChild(v)
			if next == nil {
				return nil
			}
			sym = next
		default:
			return nil
		}
	}
}

// RightmostLeaf is the mirror of LeftmostLeaf.
func RightmostLeaf(sym Symbol) *Leaf {
	for {
		switch v := sym.(type) {
		case nil:
			return nil
		case *Leaf:
			return v
		case *Node:
			next := lastPresentChild(v)
			if next == nil {
				return nil
			}
			sym = next
		default:
			return nil
		}
	}
}

func firstPresentChild(n *Node) Symbol {
	for _, c := range n.Children {
		if c != nil {
			return c
		}
	}
	return nil
}

func lastPresentChild(n *Node) Symbol {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i] != nil {
			return n.Children[i]
		}
	}
	return nil
}

// DescendThroughSingletons skips chains of one-present-child nodes,
// returning the first node/leaf with zero or 2+ present children (or the
// innermost leaf).
func DescendThroughSingletons(sym Symbol) Symbol {
	for {
		n, ok := sym.(*Node)
		if !ok {
			return sym
		}
		var only Symbol
		count := 0
		for _, c := range n.Children {
			if c != nil {
				count++
				only = c
			}
		}
		if count != 1 {
			return sym
		}
		sym = only
	}
}

// SpanOfSymbol returns the byte range from the leftmost leaf's start to
// the rightmost leaf's end. ok is false for a nil or all-absent subtree.
func SpanOfSymbol(sym Symbol) (lo, hi int, ok bool) {
	l := LeftmostLeaf(sym)
	r := RightmostLeaf(sym)
	if l == nil || r == nil {
		return 0, 0, false
	}
	return l.Token.Lo, r.Token.Hi, true
}

// FindFirstSubtree returns the first subtree (pre-order, including sym
// itself) satisfying pred, or nil.
func FindFirstSubtree(sym Symbol, pred func(Symbol) bool) Symbol {
	if sym == nil {
		return nil
	}
	if pred(sym) {
		return sym
	}
	if n, ok := sym.(*Node); ok {
		for _, c := range n.Children {
			if found := FindFirstSubtree(c, pred); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindSubtreeStartingAtOffset returns the shallowest subtree whose
// leftmost leaf starts exactly at off, or nil.
func FindSubtreeStartingAtOffset(sym Symbol, off int) Symbol {
	return FindFirstSubtree(sym, func(s Symbol) bool {
		lo, _, ok := SpanOfSymbol(s)
		return ok && lo == off
	})
}

// Zoom descends to the shallowest subtree whose leftmost leaf starts at
// rng.Lo and whose rightmost leaf ends at or before rng.Hi, stepping
// through the leftmost child while the right bound exceeds rng.Hi.
// Returns nil if no such subtree exists.
func Zoom(sym Symbol, rng Interval[int]) Symbol {
	sym = FindSubtreeStartingAtOffset(sym, rng.Lo)
	for {
		lo, hi, ok := SpanOfSymbol(sym)
		if !ok || lo != rng.Lo || hi > rng.Hi {
			n, isNode := sym.(*Node)
			if !isNode {
				return nil
			}
			child := firstPresentChild(n)
			if child == nil {
				return nil
			}
			sym = child
			continue
		}
		return sym
	}
}

// Trim replaces the tree rooted at root with the result of Zoom(root,
// rng), or nil if no zoomed subtree exists.
func Trim(root Symbol, rng Interval[int]) Symbol {
	return Zoom(root, rng)
}

// PruneTreeAfterOffset deletes every leaf whose extent ends past off, then
// every node that loses all its children as a result. Returns the
// (possibly nil) new root.
func PruneTreeAfterOffset(root Symbol, off int) Symbol {
	switch v := root.(type) {
	case nil:
		return nil
	case *Leaf:
		if v.Token.Hi > off {
			return nil
		}
		return v
	case *Node:
		anyKept := false
		for i, c := range v.Children {
			pruned := PruneTreeAfterOffset(c, off)
			v.Children[i] = pruned
			if pruned != nil {
				anyKept = true
			}
		}
		if !anyKept {
			return nil
		}
		return v
	default:
		return root
	}
}

// MutateLeaves applies f to every leaf's Token in place, pre-order.
func MutateLeaves(root Symbol, f func(*Token)) {
	switch v := root.(type) {
	case nil:
		return
	case *Leaf:
		f(&v.Token)
	case *Node:
		for _, c := range v.Children {
			MutateLeaves(c, f)
		}
	}
}

// WalkRecursive calls v.Visit on sym if sym is present. It does not descend
// into children: a RecursiveVisitor drives its own recursion from Visit.
func WalkRecursive(sym Symbol, v RecursiveVisitor) {
	if sym == nil {
		return
	}
	v.Visit(sym)
}

// WalkMutable applies a MutatingVisitor to every child slot of root,
// pre-order, allowing replacement of any subtree in place. After each call
// WalkMutable itself descends into the children of the (possibly replaced)
// slot, so the visitor does not recurse.
func WalkMutable(root *Symbol, v MutatingVisitor) {
	if root == nil || *root == nil {
		return
	}
	v.VisitMutable(root)
	if n, ok := (*root).(*Node); ok {
		for i := range n.Children {
			WalkMutable(&n.Children[i], v)
		}
	}
}
