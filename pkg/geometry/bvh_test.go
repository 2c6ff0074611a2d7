package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func boxShape(min, max core.Vec3, t float64) MockShape {
	return MockShape{boundingBox: core.NewAABB(min, max), bounded: true, hitFn: hitAt(t)}
}

func TestBVH_EmptyAndSingleShape(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	empty := NewBVH(nil, sampler)
	if _, ok := empty.Hit(ray, 0.001, 1000); ok {
		t.Error("Expected no hit for empty BVH")
	}
	if _, ok := empty.BoundingBox(); ok {
		t.Error("Empty BVH should have no bounding box")
	}

	sphere := NewSphere(core.NewVec3(5, 0, 0), 1, nil)
	single := NewBVH([]Hittable{sphere}, sampler)
	if single.Right != nil {
		t.Error("Single object BVH should have no sibling")
	}
	hit, ok := single.Hit(ray, 0.001, 1000)
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4, got %v %v", hit, ok)
	}
}

func TestBVH_TwoObjectsOrderedByAxis(t *testing.T) {
	a := NewSphere(core.NewVec3(3, 3, 3), 1, nil)
	b := NewSphere(core.NewVec3(0, 0, 0), 1, nil)

	for seed := int64(0); seed < 10; seed++ {
		node := NewBVH([]Hittable{a, b}, core.NewRandomSampler(rand.New(rand.NewSource(seed))))
		// b has the smaller minimum on every axis
		if node.Left != Hittable(b) || node.Right != Hittable(a) {
			t.Errorf("Seed %d: expected children ordered by minimum corner", seed)
		}
		box, _ := node.BoundingBox()
		if box.Min != core.NewVec3(-1, -1, -1) || box.Max != core.NewVec3(4, 4, 4) {
			t.Errorf("Seed %d: unexpected node box %v", seed, box)
		}
	}
}

func TestBVH_DoesNotModifyInput(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(5, 0, 0), 1, nil),
		NewSphere(core.NewVec3(1, 0, 0), 1, nil),
		NewSphere(core.NewVec3(3, 0, 0), 1, nil),
		NewSphere(core.NewVec3(2, 0, 0), 1, nil),
	}
	original := make([]Hittable, len(objects))
	copy(original, objects)

	NewBVH(objects, core.NewRandomSampler(rand.New(rand.NewSource(3))))

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatalf("Input slice was reordered at index %d", i)
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	shapes := make([]Hittable, 16)
	for i := range shapes {
		x := float64(i)
		shapes[i] = boxShape(core.NewVec3(x, 0, 0), core.NewVec3(x+1, 1, 1), x)
	}

	bvh := NewBVH(shapes, core.NewRandomSampler(rand.New(rand.NewSource(42))))
	stats := bvh.getStats()

	if stats.totalShapes != 16 {
		t.Errorf("Expected 16 shapes in the tree, got %d", stats.totalShapes)
	}
	// Median splits of 16 objects give a perfect tree of 8 two-object leaves
	if stats.leafNodes != 8 || stats.totalNodes != 15 || stats.maxDepth != 3 {
		t.Errorf("Unexpected tree shape: %+v", stats)
	}
	if stats.avgDepth != 3 {
		t.Errorf("Expected average leaf depth 3, got %f", stats.avgDepth)
	}
}

func TestBVH_LeafSize(t *testing.T) {
	shapes := make([]Hittable, 9)
	for i := range shapes {
		x := float64(i)
		shapes[i] = boxShape(core.NewVec3(x, 0, 0), core.NewVec3(x+1, 1, 1), x)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	whole := NewBVHWithLeafSize(shapes, 9, sampler)
	stats := whole.getStats()
	if stats.totalNodes != 1 || stats.leafNodes != 1 || stats.totalShapes != 9 {
		t.Errorf("Expected a single leaf holding 9 shapes, got %+v", stats)
	}

	// 9 splits into 4 (list leaf) and 5, which splits into a pair and a list of 3
	split := NewBVHWithLeafSize(shapes, 4, sampler)
	stats = split.getStats()
	if stats.totalNodes != 5 || stats.leafNodes != 3 || stats.totalShapes != 9 {
		t.Errorf("Unexpected tree shape: %+v", stats)
	}
}

func TestBVH_TiesStayWithFirstChild(t *testing.T) {
	tagged := func(tag float64) func(core.Ray, float64, float64) (*material.HitRecord, bool) {
		return func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
			if 2 < tMin || 2 > tMax {
				return nil, false
			}
			return &material.HitRecord{T: 2, Normal: core.NewVec3(tag, 0, 0)}, true
		}
	}
	first := MockShape{boundingBox: core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), bounded: true, hitFn: tagged(1)}
	second := MockShape{boundingBox: core.NewAABB(core.NewVec3(0.5, 0, 0), core.NewVec3(1.5, 1, 1)), bounded: true, hitFn: tagged(2)}
	node := &BVHNode{Left: first, Right: second, Box: core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1.5, 1, 1))}

	ray := core.NewRay(core.NewVec3(-1, 0.5, 0.5), core.NewVec3(1, 0, 0))
	hit, ok := node.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal.X != 1 {
		t.Errorf("Expected the first child's hit to win a tie, got %+v", hit)
	}
}

// randomPrimitive returns a sphere or an axis-aligned rectangle inside [-10,10]³
func randomPrimitive(random *rand.Rand) Hittable {
	coord := func() float64 { return random.Float64()*20 - 10 }
	center := core.NewVec3(coord(), coord(), coord())

	switch random.Intn(4) {
	case 0:
		return NewSphere(center, 0.2+random.Float64()*2, nil)
	case 1:
		w, h := random.Float64()*4, random.Float64()*4
		return NewXYRect(center.X, center.X+w, center.Y, center.Y+h, center.Z, nil)
	case 2:
		w, h := random.Float64()*4, random.Float64()*4
		return NewXZRect(center.X, center.X+w, center.Z, center.Z+h, center.Y, nil)
	default:
		w, h := random.Float64()*4, random.Float64()*4
		return NewYZRect(center.Y, center.Y+w, center.Z, center.Z+h, center.X, nil)
	}
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	const scenes = 1000
	hits := 0
	for i := 0; i < scenes; i++ {
		n := 3 + random.Intn(60)
		objects := make([]Hittable, n)
		for j := range objects {
			objects[j] = randomPrimitive(random)
		}

		bvh := NewBVH(objects, sampler)
		linear := NewHittableList(objects...)

		for r := 0; r < 5; r++ {
			origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
			direction := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
			// Every fifth ray is axis-aligned to exercise infinite slab parameters
			if r == 4 {
				direction = core.UnitAxis(random.Intn(3)).Multiply(float64(1 - 2*random.Intn(2)))
			}
			ray := core.NewRay(origin, direction)

			bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))
			linearHit, linearOK := linear.Hit(ray, 0.001, math.Inf(1))

			if bvhOK != linearOK {
				t.Fatalf("Scene %d ray %d: BVH hit=%v, linear hit=%v", i, r, bvhOK, linearOK)
			}
			if bvhOK {
				hits++
				if math.Abs(bvhHit.T-linearHit.T) > 1e-9 {
					t.Fatalf("Scene %d ray %d: BVH t=%f, linear t=%f", i, r, bvhHit.T, linearHit.T)
				}
			}
		}
	}

	if hits == 0 {
		t.Error("Randomized scenes produced no hits; the comparison is vacuous")
	}
}
