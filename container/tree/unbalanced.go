package tree

import (
	errs "github.com/eaugeas/arboretum/errors"
)

// insert the node into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (t *Tree[V]) insert(n *Node[V]) {
	var parent *Node[V]
	var isLeft bool

	curr := t.root

	for curr != nil {
		parent = curr
		if t.cmp.Less(n.Value, curr.Value) < 0 {
			isLeft = true
			curr = curr.left
		} else {
			isLeft = false
			curr = curr.right
		}
	}

	n.parent = parent

	switch {
	case parent == nil:
		t.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}
}

// delete the node from the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (t *Tree[V]) delete(n *Node[V]) {
	switch {
	case n.left == nil:
		t.transplant(n, n.right)
	case n.right == nil:
		t.transplant(n, n.left)
	default:
		successor := n.right.min()
		if successor.parent != n {
			t.transplant(successor, successor.right)
			successor.right = n.right
			successor.right.parent = successor
		}

		t.transplant(n, successor)
		successor.left = n.left
		successor.left.parent = successor
	}
}

// transplant replaces the subtree rooted at u as a child of its
// parent with the subtree rooted at v. v may be nil
func (t *Tree[V]) transplant(u *Node[V], v *Node[V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	case u == u.parent.right:
		u.parent.right = v
	default:
		panic(errs.NewOrphanNode())
	}

	if v != nil {
		v.parent = u.parent
	}
}
