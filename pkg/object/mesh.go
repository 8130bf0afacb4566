package object

import (
	"fmt"
	"math"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Vertex is one corner of a mesh triangle.
type Vertex struct {
	Position vecmath.Vector
	Normal   vecmath.Vector
	U, V     float64
}

// Triangle indexes three vertices of the owning MeshData.
type Triangle struct {
	A, B, C uint32
}

// meshBVHLeafSize is the triangle count at or below which a BVH node
// is scanned linearly instead of split further.
const meshBVHLeafSize = 8

// meshAccelThreshold is the triangle count above which MeshData builds
// a BVH instead of testing every triangle linearly.
const meshAccelThreshold = 32

// MeshData is an immutable vertex+triangle soup built once and safe to
// share across any number of MeshObject placements, the same way a
// texture or material can be shared across objects.
type MeshData struct {
	Vertices  []Vertex
	Triangles []Triangle
	bounds    core.BoundingBox
	bvh       *meshBVHNode // nil below meshAccelThreshold; triangles scanned linearly instead
}

// NewMeshData validates vertex indices and builds the mesh's bounds
// and, above meshAccelThreshold triangles, its BVH.
func NewMeshData(vertices []Vertex, triangles []Triangle) (*MeshData, error) {
	if len(vertices) == 0 || len(triangles) == 0 {
		return nil, fmt.Errorf("mesh: empty mesh: %w", rterr.ErrInvalidArgument)
	}
	for i, tri := range triangles {
		if int(tri.A) >= len(vertices) || int(tri.B) >= len(vertices) || int(tri.C) >= len(vertices) {
			return nil, fmt.Errorf("mesh: triangle %d references out-of-range vertex: %w", i, rterr.ErrInvalidArgument)
		}
	}

	bounds := core.EmptyBoundingBox()
	for _, v := range vertices {
		bounds = bounds.Include(v.Position)
	}

	data := &MeshData{Vertices: vertices, Triangles: triangles, bounds: bounds}
	if len(triangles) > meshAccelThreshold {
		indices := make([]int, len(triangles))
		for i := range indices {
			indices[i] = i
		}
		data.bvh = buildMeshBVH(data, indices)
	}
	return data, nil
}

func (d *MeshData) triangleBounds(idx int) core.BoundingBox {
	tri := d.Triangles[idx]
	b := core.EmptyBoundingBox()
	b = b.Include(d.Vertices[tri.A].Position)
	b = b.Include(d.Vertices[tri.B].Position)
	b = b.Include(d.Vertices[tri.C].Position)
	return b
}

func (d *MeshData) triangleCentroid(idx int) vecmath.Vector {
	tri := d.Triangles[idx]
	return d.Vertices[tri.A].Position.
		Add(d.Vertices[tri.B].Position).
		Add(d.Vertices[tri.C].Position).
		Scale(1.0 / 3.0)
}

// meshBVHNode is a median-split BVH node over triangle indices,
// grounded on the core package's scene-level BVH but rebuilt here
// since it partitions triangle indices rather than whole objects.
type meshBVHNode struct {
	bounds      core.BoundingBox
	left, right *meshBVHNode
	triangles   []int // non-nil only on leaves
}

func buildMeshBVH(data *MeshData, indices []int) *meshBVHNode {
	bounds := core.EmptyBoundingBox()
	for _, idx := range indices {
		bounds = bounds.Union(data.triangleBounds(idx))
	}

	if len(indices) <= meshBVHLeafSize {
		return &meshBVHNode{bounds: bounds, triangles: indices}
	}

	axis, splitPos, ok := bestMeshSplit(data, indices, bounds)
	if !ok {
		return &meshBVHNode{bounds: bounds, triangles: indices}
	}

	var left, right []int
	for _, idx := range indices {
		if data.triangleCentroid(idx).Component(axis) < splitPos {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &meshBVHNode{bounds: bounds, triangles: indices}
	}

	return &meshBVHNode{
		bounds: bounds,
		left:   buildMeshBVH(data, left),
		right:  buildMeshBVH(data, right),
	}
}

// bestMeshSplit picks the longest axis of bounds and splits at its
// midpoint, the same fast median approach the scene-level BVH uses
// instead of a full SAH search.
func bestMeshSplit(data *MeshData, indices []int, bounds core.BoundingBox) (axis int, splitPos float64, ok bool) {
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

type triangleHit struct {
	t, u, v  float64
	triangle int
}

// intersectTriangle implements Moller-Trumbore: e1=v1-v0, e2=v2-v0,
// p=d x e2, det=e1.p; rejects near-parallel rays and barycentrics
// outside the triangle.
func (d *MeshData) intersectTriangle(ray core.Ray, idx int) (triangleHit, bool) {
	tri := d.Triangles[idx]
	v0 := d.Vertices[tri.A].Position
	v1 := d.Vertices[tri.B].Position
	v2 := d.Vertices[tri.C].Position

	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < vecmath.Epsilon {
		return triangleHit{}, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(v0)
	u := tvec.Dot(p) * invDet
	if u < 0 || u > 1 {
		return triangleHit{}, false
	}

	qvec := tvec.Cross(e1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return triangleHit{}, false
	}

	t := e2.Dot(qvec) * invDet
	if t < vecmath.Epsilon {
		return triangleHit{}, false
	}
	return triangleHit{t: t, u: u, v: v, triangle: idx}, true
}

func (d *MeshData) intersectIndices(ray core.Ray, indices []int) (triangleHit, bool) {
	best := triangleHit{}
	found := false
	for _, idx := range indices {
		if hit, ok := d.intersectTriangle(ray, idx); ok && (!found || hit.t < best.t) {
			best, found = hit, true
		}
	}
	return best, found
}

func (d *MeshData) intersectBVHNode(node *meshBVHNode, ray core.Ray) (triangleHit, bool) {
	if node.bounds.Intersect(ray) == core.NoHit {
		return triangleHit{}, false
	}
	if node.triangles != nil {
		return d.intersectIndices(ray, node.triangles)
	}

	leftHit, leftOK := d.intersectBVHNode(node.left, ray)
	rightHit, rightOK := d.intersectBVHNode(node.right, ray)
	switch {
	case leftOK && rightOK:
		if leftHit.t < rightHit.t {
			return leftHit, true
		}
		return rightHit, true
	case leftOK:
		return leftHit, true
	case rightOK:
		return rightHit, true
	default:
		return triangleHit{}, false
	}
}

func (d *MeshData) intersectLocal(ray core.Ray) (triangleHit, bool) {
	if d.bvh != nil {
		return d.intersectBVHNode(d.bvh, ray)
	}
	all := make([]int, len(d.Triangles))
	for i := range all {
		all[i] = i
	}
	return d.intersectIndices(ray, all)
}

// interpolate barycentrically blends the hit triangle's vertex
// normals and uvs, renormalizing the interpolated normal.
func (d *MeshData) interpolate(hit triangleHit) (normal vecmath.Vector, u, v float64) {
	tri := d.Triangles[hit.triangle]
	v0, v1, v2 := d.Vertices[tri.A], d.Vertices[tri.B], d.Vertices[tri.C]
	w := 1 - hit.u - hit.v

	normal = v0.Normal.Scale(w).Add(v1.Normal.Scale(hit.u)).Add(v2.Normal.Scale(hit.v)).Unit()
	u = v0.U*w + v1.U*hit.u + v2.U*hit.v
	v = v0.V*w + v1.V*hit.u + v2.V*hit.v
	return normal, u, v
}

// MeshObject places a shared MeshData in world space. Unlike the other
// variants it does not implement Primitive: recovering which triangle
// was struck needs more than the hit point alone, so it implements
// core.Object directly and re-runs the local intersection in SurfaceAt
// rather than caching state that worker goroutines would race on.
type MeshObject struct {
	Transform *transform.Transform
	Material  core.Material
	Data      *MeshData
}

// NewMesh places data in world space with material m.
func NewMesh(t *transform.Transform, m core.Material, data *MeshData) *MeshObject {
	return &MeshObject{Transform: t, Material: m, Data: data}
}

// Intersect implements core.Object, re-measuring the hit distance in
// world space for the same non-uniform-scale reason as Base.Intersect.
func (mo *MeshObject) Intersect(ray core.Ray) (float64, bool) {
	localRay := mo.Transform.TransformRay(ray)
	hit, ok := mo.Data.intersectLocal(localRay)
	if !ok {
		return 0, false
	}

	localHitPoint := localRay.At(hit.t)
	worldHit := mo.Transform.UntransformPosition(localHitPoint)
	distance := worldHit.Sub(ray.Origin).Length()
	if distance <= vecmath.Epsilon || math.IsNaN(distance) {
		return 0, false
	}
	return distance, true
}

// SurfaceAt implements core.Object.
func (mo *MeshObject) SurfaceAt(ray core.Ray, distance float64) core.SurfaceHit {
	localRay := mo.Transform.TransformRay(ray)
	worldPosition := ray.At(distance)

	var localNormal vecmath.Vector
	var u, v float64
	if hit, ok := mo.Data.intersectLocal(localRay); ok {
		localNormal, u, v = mo.Data.interpolate(hit)
	}

	worldNormal := mo.Transform.UntransformNormal(localNormal)
	tangent, bitangent := orthonormalBasis(worldNormal)

	return core.SurfaceHit{
		Position:  worldPosition,
		Normal:    worldNormal,
		Tangent:   tangent,
		Bitangent: bitangent,
		U:         u,
		V:         v,
	}
}

// Mat implements core.Object.
func (mo *MeshObject) Mat() core.Material {
	return mo.Material
}

// BoundingBox implements core.Object.
func (mo *MeshObject) BoundingBox() core.BoundingBox {
	return mo.Transform.UntransformBoundingBox(mo.Data.bounds)
}
