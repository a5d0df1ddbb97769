package traverse

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvtree/core"
)

// frame is one pending unit of work for the explicit-stack walk.
type frame[T any] struct {
	node  *core.Node[T]
	layer int  // 1-based
	ready bool // true: children already scheduled, emit on pop
}

// walker encapsulates the state of a single Walk pass.
type walker[T any] struct {
	opts  WalkOptions
	yield func(int, T) bool
}

// Walk returns an iterator over (layer, value) pairs of the tree in the
// requested order. Layers are 1-based, the root being layer 1.
//
// Unlike PreOrder and friends, Walk never recurses: depth-first orders use
// a heap-allocated stack and Level uses a FIFO queue, so arbitrarily deep
// trees are safe. Within the layer band set by options the visiting order
// is identical to the recursive functions.
//
// Returns ErrOptionViolation for bad options or ErrUnknownOrder for an
// unsupported order; the iterator is nil in both cases.
func Walk[T any](root *core.Node[T], order Order, opts ...Option) (iter.Seq2[int, T], error) {
	// 1. Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// 2. Resolve the order
	if order < Pre || order > Level {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}

	// 3. Each range loop gets a fresh walker
	return func(yield func(int, T) bool) {
		if root == nil {
			return
		}
		w := &walker[T]{opts: o, yield: yield}
		if order == Level {
			w.level(root)
			return
		}
		w.depthFirst(root, order)
	}, nil
}

// descend reports whether children of a node on layer are within the band.
func (w *walker[T]) descend(layer int) bool {
	return w.opts.MaxLayer == 0 || layer < w.opts.MaxLayer
}

// emit yields the value if its layer is within the band. It returns false
// when the consumer stopped the iteration.
func (w *walker[T]) emit(n *core.Node[T], layer int) bool {
	if layer < w.opts.MinLayer {
		return true
	}

	return w.yield(layer, n.Value)
}

// depthFirst runs pre-, in- or post-order with an explicit stack. A popped
// frame that is not ready schedules its node and children so that they pop
// in the desired order; a ready frame is emitted.
func (w *walker[T]) depthFirst(root *core.Node[T], order Order) {
	stack := arraystack.New()
	stack.Push(frame[T]{node: root, layer: 1})

	var f frame[T]
	for !stack.Empty() {
		v, _ := stack.Pop()
		f = v.(frame[T])
		if f.ready {
			if !w.emit(f.node, f.layer) {
				return
			}
			continue
		}

		// Pushes are in reverse of the wanted pop order.
		self := frame[T]{node: f.node, layer: f.layer, ready: true}
		switch order {
		case Pre:
			w.pushChild(stack, f.node.Right, f.layer)
			w.pushChild(stack, f.node.Left, f.layer)
			stack.Push(self)
		case In:
			w.pushChild(stack, f.node.Right, f.layer)
			stack.Push(self)
			w.pushChild(stack, f.node.Left, f.layer)
		case Post:
			stack.Push(self)
			w.pushChild(stack, f.node.Right, f.layer)
			w.pushChild(stack, f.node.Left, f.layer)
		}
	}
}

// pushChild schedules child (if any) one layer below parentLayer.
func (w *walker[T]) pushChild(stack *arraystack.Stack, child *core.Node[T], parentLayer int) {
	if child == nil || !w.descend(parentLayer) {
		return
	}
	stack.Push(frame[T]{node: child, layer: parentLayer + 1})
}

// level runs a breadth-first pass with a FIFO queue.
func (w *walker[T]) level(root *core.Node[T]) {
	q := linkedlistqueue.New()
	q.Enqueue(frame[T]{node: root, layer: 1})

	var f frame[T]
	for !q.Empty() {
		v, _ := q.Dequeue()
		f = v.(frame[T])
		if !w.emit(f.node, f.layer) {
			return
		}
		if !w.descend(f.layer) {
			continue
		}
		if f.node.Left != nil {
			q.Enqueue(frame[T]{node: f.node.Left, layer: f.layer + 1})
		}
		if f.node.Right != nil {
			q.Enqueue(frame[T]{node: f.node.Right, layer: f.layer + 1})
		}
	}
}
