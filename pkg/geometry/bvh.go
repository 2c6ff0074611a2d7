package geometry

import (
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy.
// Right is nil when the node has a single child.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVH builds a hierarchy over objects, splitting at the median along an axis
// drawn from sampler at every level. The input slice is not modified.
func NewBVH(objects []Hittable, sampler core.Sampler) *BVHNode {
	return NewBVHWithLeafSize(objects, 0, sampler)
}

// NewBVHWithLeafSize is NewBVH but stops splitting once a node holds at most
// leafSize objects, storing them in a HittableList. Sizes below 3 split fully.
func NewBVHWithLeafSize(objects []Hittable, leafSize int, sampler core.Sampler) *BVHNode {
	// Copy so concurrent builders over the same scene never share backing arrays
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, leafSize, sampler)
}

// buildBVH recursively partitions objects in place
func buildBVH(objects []Hittable, leafSize int, sampler core.Sampler) *BVHNode {
	axis := min(int(sampler.Get1D()*3), 2)
	compare := func(a, b Hittable) int {
		return core.CompareAxis(boxOf(a), boxOf(b), axis)
	}

	node := &BVHNode{}
	switch {
	case len(objects) == 0:
		return node
	case len(objects) == 1:
		node.Left = objects[0]
	case len(objects) > 2 && len(objects) <= leafSize:
		node.Left = NewHittableList(objects...)
	case len(objects) == 2:
		if compare(objects[0], objects[1]) <= 0 {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		slices.SortFunc(objects, compare)
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], leafSize, sampler)
		node.Right = buildBVH(objects[mid:], leafSize, sampler)
	}

	node.Box = surroundingBox(node.Left, node.Right)
	return node
}

// boxOf returns an object's box, degenerate at the origin when unbounded
func boxOf(object Hittable) core.AABB {
	box, _ := object.BoundingBox()
	return box
}

// surroundingBox unions the children's boxes; an unbounded child yields the zero box
func surroundingBox(left, right Hittable) core.AABB {
	leftBox, ok := left.BoundingBox()
	if !ok {
		return core.AABB{}
	}
	if right == nil {
		return leftBox
	}
	rightBox, ok := right.BoundingBox()
	if !ok {
		return core.AABB{}
	}
	return leftBox.Union(rightBox)
}

// Hit tests the first child over the full range and the second only up to
// the first child's hit, so the second wins only when strictly closer
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if n.Left == nil || !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if n.Right != nil {
		// Inclusive bounds let an equal t through; ties stay with the first child
		if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight && (!hitLeft || rightHit.T < leftHit.T) {
			return rightHit, true
		}
	}

	return leftHit, hitLeft
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, n.Left != nil
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	avgDepth    float64
	totalShapes int
}

// getStats returns statistics about the BVH structure
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.leafNodes > 0 {
		stats.avgDepth = stats.avgDepth / float64(stats.leafNodes)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH.
// A node is a leaf when none of its children is another BVHNode.
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	isLeaf := true
	for _, child := range []Hittable{n.Left, n.Right} {
		switch c := child.(type) {
		case nil:
		case *BVHNode:
			isLeaf = false
			c.collectStats(depth+1, stats)
		case *HittableList:
			stats.totalShapes += c.Len()
		default:
			stats.totalShapes++
		}
	}

	if isLeaf {
		stats.leafNodes++
		stats.avgDepth += float64(depth) // Accumulate depth for average calculation
	}
}
