package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velkatra/algolith/bintree"
)

// sampleTree builds:
//
//	        1
//	      /   \
//	     2     3
//	    / \     \
//	   4   5     6
func sampleTree() *bintree.Node[int] {
	root := bintree.NewNode(1)
	root.Left = bintree.NewNode(2)
	root.Right = bintree.NewNode(3)
	root.Left.Left = bintree.NewNode(4)
	root.Left.Right = bintree.NewNode(5)
	root.Right.Right = bintree.NewNode(6)
	return root
}

func TestInOrder(t *testing.T) {
	assert.Equal(t, []int{4, 2, 5, 1, 3, 6}, bintree.InOrder(sampleTree()))
}

func TestPreOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6}, bintree.PreOrder(sampleTree()))
}

func TestPostOrder(t *testing.T) {
	assert.Equal(t, []int{4, 5, 2, 6, 3, 1}, bintree.PostOrder(sampleTree()))
}

func TestLevelOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, bintree.LevelOrder(sampleTree()))
}

func TestTraversals_NilRoot(t *testing.T) {
	assert.Nil(t, bintree.InOrder[int](nil))
	assert.Nil(t, bintree.PreOrder[int](nil))
	assert.Nil(t, bintree.PostOrder[int](nil))
	assert.Nil(t, bintree.LevelOrder[int](nil))
}

func TestTraversals_SingleNode(t *testing.T) {
	leaf := bintree.NewNode("only")

	assert.Equal(t, []string{"only"}, bintree.InOrder(leaf))
	assert.Equal(t, []string{"only"}, bintree.PreOrder(leaf))
	assert.Equal(t, []string{"only"}, bintree.PostOrder(leaf))
	assert.Equal(t, []string{"only"}, bintree.LevelOrder(leaf))
}

// A left-leaning chain exercises the degenerate shape: in-order must walk
// bottom-up, level order top-down.
func TestTraversals_LeftChain(t *testing.T) {
	root := bintree.NewNode(3)
	root.Left = bintree.NewNode(2)
	root.Left.Left = bintree.NewNode(1)

	assert.Equal(t, []int{1, 2, 3}, bintree.InOrder(root))
	assert.Equal(t, []int{3, 2, 1}, bintree.LevelOrder(root))
}

func TestHeight(t *testing.T) {
	assert.Zero(t, bintree.Height[int](nil))
	assert.Equal(t, 1, bintree.Height(bintree.NewNode(1)))
	assert.Equal(t, 3, bintree.Height(sampleTree()))
}

func TestCount(t *testing.T) {
	assert.Zero(t, bintree.Count[int](nil))
	assert.Equal(t, 6, bintree.Count(sampleTree()))
}

// Every traversal is a permutation of the same node set, so lengths agree.
func TestTraversals_SameLength(t *testing.T) {
	root := sampleTree()
	n := bintree.Count(root)

	assert.Len(t, bintree.InOrder(root), n)
	assert.Len(t, bintree.PreOrder(root), n)
	assert.Len(t, bintree.PostOrder(root), n)
	assert.Len(t, bintree.LevelOrder(root), n)
}
