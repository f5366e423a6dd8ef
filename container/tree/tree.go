package tree

import "golang.org/x/exp/constraints"

// Node of a tree. A node owns its left and right children. The
// parent reference only exists to walk upwards when the node is
// removed and is nil for the root and for detached nodes
type Node[V any] struct {
	Value V

	left   *Node[V]
	right  *Node[V]
	parent *Node[V]
}

// Left returns the node's left child
func (n *Node[V]) Left() *Node[V] {
	return n.left
}

// Right returns the node's right child
func (n *Node[V]) Right() *Node[V] {
	return n.right
}

// Parent returns the node's parent
func (n *Node[V]) Parent() *Node[V] {
	return n.parent
}

// min returns the node in the subtree of the
// lowest order
func (n *Node[V]) min() *Node[V] {
	curr := n

	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// detach clears all the links of a node that is no longer
// part of a tree
func (n *Node[V]) detach() {
	n.left = nil
	n.right = nil
	n.parent = nil
}

// Tree represents an unbalanced binary search tree. Values that
// compare lower than a node are stored in its left subtree, all
// others, equal values included, in its right subtree.
//
// A Tree is not safe for concurrent use. Callers that share a tree
// between goroutines must serialize every operation, reads included.
type Tree[V any] struct {
	root *Node[V]
	cmp  Lesser[V]
	len  int
}

// New creates an empty tree that orders its values with cmp
func New[V any](cmp Lesser[V]) *Tree[V] {
	return &Tree[V]{cmp: cmp}
}

// NewOrdered creates an empty tree for any type that
// supports the builtin ordering operators
func NewOrdered[V constraints.Ordered]() *Tree[V] {
	return New[V](OrderedLesser[V]{})
}

// Len returns the number of nodes in the tree
func (t *Tree[V]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[V]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[V]) Root() *Node[V] {
	return t.root
}

// Contains returns true if the tree contains at
// least one node with a value equal to v
func (t *Tree[V]) Contains(v V) bool {
	return t.find(v) != nil
}

// Count returns the number of occurrences of v
// in the tree
func (t *Tree[V]) Count(v V) (count int) {
	for curr := t.find(v); curr != nil; {
		// equal values are always inserted to the right, so the
		// remaining occurrences live in the right subtree of the
		// first match
		count++
		curr = t.findFrom(curr.right, v)
	}

	return count
}

// find returns the first node in the tree that
// contains a value equal to the one provided
func (t *Tree[V]) find(v V) *Node[V] {
	return t.findFrom(t.root, v)
}

func (t *Tree[V]) findFrom(n *Node[V], v V) *Node[V] {
	for curr := n; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c == 0:
			return curr
		default:
			curr = curr.right
		}
	}

	return nil
}

// Insert a value into the tree. Values already present
// are inserted again
func (t *Tree[V]) Insert(v V) {
	t.insert(&Node[V]{Value: v})
	t.len++
}

// Remove the first node on the tree that has value
// equal to v. It returns false if no such node exists
func (t *Tree[V]) Remove(v V) bool {
	n := t.find(v)
	if n == nil {
		return false
	}

	t.delete(n)
	n.detach()
	t.len--
	return true
}
