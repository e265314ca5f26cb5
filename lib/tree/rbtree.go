package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type rbNode[K any, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
	hasKV  bool
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) HasKeyVal() bool {
	if node == nil {
		return false
	}
	return node.hasKV
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) isNilLeaf() bool {
	return isNilLeaf[K, V](node)
}

func (node *rbNode[K, V]) isRed() bool {
	return isRed[K, V](node)
}

func (node *rbNode[K, V]) isBlack() bool {
	return isBlack[K, V](node)
}

func (node *rbNode[K, V]) isRoot() bool {
	return isRoot[K, V](node)
}

func (node *rbNode[K, V]) isLeaf() bool {
	return node != nil && node.parent != nil && node.left.isNilLeaf() && node.right.isNilLeaf()
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:
	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

// fixLink restores the child back-references after a link swap, the
// "set also maintains the back-reference" half of the node contract.
func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K, V]) pred() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the ancestor that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the ancestor that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
//
// There is no shared sentinel object here: nil is the always-black leaf
// (p2, tested through isNilLeaf/isBlack) and the remove rebalance runs on a
// real node before it is unlinked, so no scratch state ever needs a home.
type rbTree[K any, V any] struct {
	root       *rbNode[K, V]
	min        *rbNode[K, V]
	max        *rbNode[K, V]
	kcmp       infra.KeyComparator[K]
	count      int64
	borrowPred bool
}

func (tree *rbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[K, V]) Min() RBNode[K, V] {
	if tree.min == nil {
		return nil
	}
	return tree.min
}

func (tree *rbTree[K, V]) Max() RBNode[K, V] {
	if tree.max == nil {
		return nil
	}
	return tree.max
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// i1: Empty rbtree, insert directly; the zero color value paints the new
// root black.
// The comparator runs before any link is touched, so an ordering error
// leaves the tree exactly as it was.
func (tree *rbTree[K, V]) Insert(key K, val V) (updated bool, err error) {
	if _, err = tree.kcmp(key, key); err != nil {
		return false, err
	}

	if /* i1 */ tree.root.isNilLeaf() {
		tree.root = &rbNode[K, V]{
			key:   key,
			val:   val,
			hasKV: true,
		}
		tree.min, tree.max = tree.root, tree.root
		tree.count++
		return false, nil
	}

	var (
		x, y *rbNode[K, V] = tree.root, nil
		res  int64
	)
	for !x.isNilLeaf() {
		y = x
		if res, err = tree.kcmp(key, x.key); err != nil {
			return false, err
		}
		if /* equal */ res == 0 {
			break
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	if y.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] insert a new value into nil node")
	}

	if /* equal */ res == 0 {
		// Equal keys may still be distinct representations; replace both
		// in place. The shape is untouched, so no rebalance.
		y.key, y.val = key, val
		return true, nil
	}

	z := &rbNode[K, V]{
		key:    key,
		val:    val,
		color:  Red,
		parent: y,
		hasKV:  true,
	}
	if /* less */ res < 0 {
		y.left = z
		if y == tree.min {
			tree.min = z
		}
	} else /* greater */ {
		y.right = z
		if y == tree.max {
			tree.max = z
		}
	}

	tree.count++
	tree.insertRebalance(z)
	return false, nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: X's parent P is black, no violation left; stop.

im2: Both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainting, G may violate again one level up; recurse to G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im3: The parent P is red but the uncle U is black, and X is the opposite
direction to P (inner child). Rotate P to turn X into an outer child, then
fall through to im4 with the old P as the new X.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im4: The parent P is red, the uncle U is black, X is the same direction as
P (outer child). Rotate G away from X's side and swap colors; no violation
can propagate further.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x *rbNode[K, V]) {
	for !x.isNilLeaf() {
		if x.isRoot() {
			// Covers the recolored-to-root case; the root is forced black.
			x.color = Black
			return
		}

		if /* im1 */ x.parent.isBlack() {
			return
		}

		// The parent is red, hence not the root (the root stays black),
		// hence the grandpa exists.
		if /* im2 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* im3 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im3)")
			}
			x = p // enter im4 to fix
		}

		switch /* im4 */ x.parent.Direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
		}

		x.parent.color = Black
		x.sibling().color = Red
		return
	}
}

/*
r1: Only the root node left, unlink it directly.

r2: Victim node X has both a left and a right child.
Find X's succ (or pred, under the borrow-pred option) and swap the key and
value into X; the succ owns at most a right child, so the removal proceeds
on it through r3/r4.

	  |                    |
	  X                    S
	 / \                  / \
	L  ..   swap(X, S)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  S  ..                X  ..

r3: (1) Victim is a red leaf, unlink directly.
r3: (2) Victim is a black leaf; its removal is one-black-short, rebalance
before unlinking so the fixup position is always a real node.

r4: Victim is not a leaf, so it has exactly one child and that child must
be red (see conclusion above). Splice the child in and repaint it black if
the victim was black.
*/
func (tree *rbTree[K, V]) removeNode(z *rbNode[K, V]) *rbNode[K, V] {
	if /* r1 */ tree.count == 1 && z.isRoot() {
		tree.root = nil
		z.left, z.right = nil, nil
		return z
	}

	res := &rbNode[K, V]{
		key:   z.key,
		val:   z.val,
		hasKV: true,
	}

	y := z
	if /* r2 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		if tree.borrowPred {
			y = z.pred() // enter r3-r4
		} else {
			y = z.succ() // enter r3-r4
		}
		// Swap key & value; z keeps its color and position.
		z.key, z.val = y.key, y.val
	}

	if /* r3 */ y.isLeaf() {
		if /* r3 (1) */ y.isRed() {
			switch y.Direction() {
			case Left:
				y.parent.left = nil
			case Right:
				y.parent.right = nil
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] y should be a leaf node, violate (r3-1)")
			}
			y.parent = nil
			return res
		}
		/* r3 (2) */
		tree.removeRebalance(y)
	} else /* r4 */ {
		var replace *rbNode[K, V]
		if !y.right.isNilLeaf() {
			replace = y.right
		} else {
			replace = y.left
		}

		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a non-leaf node without child, violate (r4)")
		}

		switch y.Direction() {
		case Root:
			tree.root = replace
			tree.root.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (r4)")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = Black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	// Unlink the victim.
	if !y.isRoot() && y == y.parent.left {
		y.parent.left = nil
	} else if !y.isRoot() && y == y.parent.right {
		y.parent.right = nil
	}
	y.parent, y.left, y.right = nil, nil, nil
	y.hasKV = false

	return res
}

// Remove unlinks the entry for key. An absent key is a nil result, not an
// error; the only possible error is an ordering error from the descent.
func (tree *rbTree[K, V]) Remove(key K) (RBNode[K, V], error) {
	if tree.count <= 0 {
		return nil, nil
	}
	z, err := tree.findNode(key)
	if err != nil || z == nil {
		return nil, err
	}
	res := tree.removeNode(z)
	tree.count--
	tree.refreshExtremes()
	return res, nil
}

func (tree *rbTree[K, V]) RemoveMin() (RBNode[K, V], error) {
	if tree.count <= 0 {
		return nil, nil
	}
	res := tree.removeNode(tree.root.minimum())
	tree.count--
	tree.refreshExtremes()
	return res, nil
}

func (tree *rbTree[K, V]) RemoveMax() (RBNode[K, V], error) {
	if tree.count <= 0 {
		return nil, nil
	}
	res := tree.removeNode(tree.root.maximum())
	tree.count--
	tree.refreshExtremes()
	return res, nil
}

// refreshExtremes recomputes the cached min/max references. Removal may
// have spliced or key-swapped an extreme node, so both are rebuilt from
// the root; the walk is bounded by the tree height the removal already
// paid for.
func (tree *rbTree[K, V]) refreshExtremes() {
	if tree.root == nil {
		tree.min, tree.max = nil, nil
		return
	}
	tree.min = tree.root.minimum()
	tree.max = tree.root.maximum()
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the nephew on X's side, Sd the nephew on the far side.

rm1: X's sibling S is red, so P, Sc and Sd must be black. Rotate P toward
X's side and swap P/S colors; X's new sibling is the black Sc and one of
rm2-rm5 applies next.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: S, Sc and Sd are black and P is red. Swapping P/S colors settles the
shortage at this level.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: P, S, Sc and Sd are all black. Painting S red balances p4 locally but
leaves the whole subtree one black short; recurse to P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: S is black, the near nephew Sc is red, the far nephew Sd is black
(P's color is irrelevant). Rotate S away from X's side and swap S/Sc
colors, producing a red far nephew; enter rm5.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: S is black and the far nephew Sd is red. Rotate P toward X's side,
give S P's color, paint P and Sd black; the shortage is fully repaired.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K, V]) removeRebalance(x *rbNode[K, V]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K, V]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				break
			} else /* rm3 */ {
				sibling.color = Red
				x = x.parent
				continue
			}
		}

		if /* rm4 */ sc.isRed() {
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
			sc.color = Black
			sibling.color = Red
			sibling = x.sibling()
			switch dir {
			case Left:
				sd = sibling.right
			case Right:
				sd = sibling.left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
		}

		switch /* rm5 */ dir {
		case Left:
			tree.leftRotate(x.parent)
		case Right:
			tree.rightRotate(x.parent)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm5)")
		}
		sibling.color = x.parent.color
		x.parent.color = Black
		if !sd.isNilLeaf() {
			sd.color = Black
		}
		break
	}
}

// Release unlinks every node iteratively so the whole structure is
// immediately collectible, then resets the tree to empty.
func (tree *rbTree[K, V]) Release() {
	size := tree.count
	aux := tree.root
	tree.root, tree.min, tree.max = nil, nil, nil
	tree.count = 0
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		stack = stack[:size-1]
		if r != nil {
			for aux = r; !aux.isNilLeaf(); aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// NewRBTree builds a tree over the built-in orderable key families with
// the default ascending comparator.
func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{
		kcmp: infra.OrderedKeyCompare[K],
	}
	for _, o := range opts {
		o(tree)
	}
	return tree
}

// NewRBTreeDesc is NewRBTree with the key order reversed.
func NewRBTreeDesc[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{
		kcmp: infra.DescOrderedKeyCompare[K],
	}
	for _, o := range opts {
		o(tree)
	}
	return tree
}

// NewRBTreeFromComparator builds a tree over an arbitrary key type ordered
// by the given comparator. The comparator is fixed for the tree's
// lifetime; a nil comparator is rejected here rather than failing at
// first use.
func NewRBTreeFromComparator[K any, V any](kcmp infra.KeyComparator[K], opts ...RBTreeOpt[K, V]) (RBTree[K, V], error) {
	if kcmp == nil {
		return nil, infra.ErrMissingKeyComparator
	}
	tree := &rbTree[K, V]{
		kcmp: kcmp,
	}
	for _, o := range opts {
		o(tree)
	}
	return tree, nil
}
