// Package builder defines shared constants used by the tree constructors.
package builder

// Method names used to prefix constructor errors.
const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodRandomBST is the canonical name for the RandomBST constructor.
	MethodRandomBST = "RandomBST"
)

// MaxCompleteDepth bounds Complete: a perfect tree of this depth already
// holds 2^24-1 nodes.
const MaxCompleteDepth = 24
