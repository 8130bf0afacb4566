package core

import "github.com/kestrelrender/raytracer/pkg/vecmath"

// bvhLeafThreshold is the object count at or below which a BVH node
// is scanned linearly instead of split further.
const bvhLeafThreshold = 4

// BVHNode is a median-split bounding volume hierarchy node over
// scene objects, adapted from the same fast-median-split approach a
// mesh's triangle BVH uses, applied here to whole Objects instead.
type BVHNode struct {
	Bounds      BoundingBox
	Left, Right *BVHNode
	Objects     []Object // non-nil only on leaves
}

// BVH accelerates closest-hit queries across an object list.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a BVH over objects. It copies the input slice so a
// caller's later mutation of it cannot change the objects the BVH's
// leaves hold.
func NewBVH(objects []Object) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}
	cp := make([]Object, len(objects))
	copy(cp, objects)
	return &BVH{Root: buildBVH(cp)}
}

func buildBVH(objects []Object) *BVHNode {
	bounds := EmptyBoundingBox()
	for _, o := range objects {
		bounds = bounds.Union(o.BoundingBox())
	}

	if len(objects) <= bvhLeafThreshold {
		return &BVHNode{Bounds: bounds, Objects: objects}
	}

	axis, splitPos, ok := bestObjectSplit(bounds)
	if !ok {
		return &BVHNode{Bounds: bounds, Objects: objects}
	}

	var left, right []Object
	for _, o := range objects {
		if objectCenter(o).Component(axis) < splitPos {
			left = append(left, o)
		} else {
			right = append(right, o)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{Bounds: bounds, Objects: objects}
	}

	return &BVHNode{
		Bounds: bounds,
		Left:   buildBVH(left),
		Right:  buildBVH(right),
	}
}

func objectCenter(o Object) vecmath.Vector {
	b := o.BoundingBox()
	return b.Lower.Add(b.Upper).Scale(0.5)
}

func bestObjectSplit(bounds BoundingBox) (axis int, splitPos float64, ok bool) {
	extent := bounds.Upper.Sub(bounds.Lower)
	axis = 0
	if extent.Y > extent.Component(axis) {
		axis = 1
	}
	if extent.Z > extent.Component(axis) {
		axis = 2
	}
	lo := bounds.Lower.Component(axis)
	hi := bounds.Upper.Component(axis)
	if hi <= lo {
		return 0, 0, false
	}
	return axis, (lo + hi) / 2, true
}

// Intersect returns the closest object the ray hits and its distance,
// or ok=false if the BVH is empty or the ray misses everything.
func (bvh *BVH) Intersect(ray Ray) (Object, float64, bool) {
	if bvh == nil || bvh.Root == nil {
		return nil, 0, false
	}
	return intersectNode(bvh.Root, ray, NoHit)
}

func intersectNode(node *BVHNode, ray Ray, maxDistance float64) (Object, float64, bool) {
	if node.Bounds.Intersect(ray) == NoHit {
		return nil, 0, false
	}

	if node.Objects != nil {
		var closest Object
		best := maxDistance
		found := false
		for _, o := range node.Objects {
			if d, ok := o.Intersect(ray); ok && d < best {
				closest, best, found = o, d, true
			}
		}
		return closest, best, found
	}

	leftObj, leftT, leftOK := intersectNode(node.Left, ray, maxDistance)
	bound := maxDistance
	if leftOK {
		bound = leftT
	}
	rightObj, rightT, rightOK := intersectNode(node.Right, ray, bound)
	if rightOK {
		return rightObj, rightT, true
	}
	if leftOK {
		return leftObj, leftT, true
	}
	return nil, 0, false
}
