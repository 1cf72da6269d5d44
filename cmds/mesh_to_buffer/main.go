package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/vec-d/vecd"
)

func main() {
	var normals bool
	var center bool
	var tolerance float64
	flag.BoolVar(&normals, "normals", false, "follow each vertex with its face normal")
	flag.BoolVar(&center, "center", false, "translate the mesh so that its bounds are centered at the origin")
	flag.Float64Var(&tolerance, "tolerance", vecd.DefaultTolerance,
		"cross products with all components within this band produce a zero normal")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_to_buffer [flags] <input.stl> <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	f, err := os.Open(inputPath)
	essentials.Must(err)
	tris, err := model3d.ReadSTL(f)
	f.Close()
	essentials.Must(err)
	mesh := model3d.NewMeshTriangles(tris)

	offset := vecd.NewVec3[float32]()
	if center {
		offset.SetTuple(vecd.Coord3D[float32](mesh.Min()))
		offset.MidPointSelf(vecd.Coord3D[float32](mesh.Max())).NegSelf()
		log.Printf(" => translating by %v", offset)
	}

	log.Println("Packing vertices...")
	vertices := PackTriangles(tris, offset, normals, float32(tolerance))

	log.Printf("Writing %d vectors...", len(vertices))
	f, err = os.Create(outputPath)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(vecd.WriteVec3s(f, vertices))
}

// PackTriangles lists the vertices of every triangle in order, translated by
// offset and optionally interleaved with the triangle's unit normal.
func PackTriangles(tris []*model3d.Triangle, offset *vecd.Vec3F, normals bool,
	tolerance float32) []*vecd.Vec3F {
	perVertex := 1
	if normals {
		perVertex = 2
	}
	vertices := make([]*vecd.Vec3F, len(tris)*3*perVertex)
	essentials.ConcurrentMap(0, len(tris), func(i int) {
		t := tris[i]
		var normal *vecd.Vec3F
		if normals {
			// Degenerate triangles get a zero normal rather than NaN.
			p0 := vecd.Coord3D[float32](t[0])
			e1 := vecd.Sub(vecd.Coord3D[float32](t[1]), p0, vecd.Vec3Sink[float32]())
			e2 := vecd.Sub(vecd.Coord3D[float32](t[2]), p0, vecd.Vec3Sink[float32]())
			normal = e1.CrossSelf(e2).NormalizeToleranceSelf(tolerance)
		}
		for j, c := range t {
			idx := (i*3 + j) * perVertex
			vertices[idx] = offset.Add(vecd.Coord3D[float32](c))
			if normals {
				vertices[idx+1] = normal
			}
		}
	})
	return vertices
}
