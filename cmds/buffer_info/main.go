package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/vec-d/vecd"
)

var axisNames = [3]string{"x", "y", "z"}

func main() {
	var normals bool
	flag.BoolVar(&normals, "normals", false, "input interleaves each vertex with a normal")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: buffer_info [flags] <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading buffer...")
	f, err := os.Open(inputPath)
	essentials.Must(err)
	vectors, err := vecd.ReadAllVec3s[float32](f)
	f.Close()
	essentials.Must(err)

	positions := vectors
	var zeroNormals int
	if normals {
		if len(vectors)%2 != 0 {
			essentials.Die("buffer has an odd number of vectors")
		}
		positions = make([]*vecd.Vec3F, 0, len(vectors)/2)
		for i := 0; i < len(vectors); i += 2 {
			positions = append(positions, vectors[i])
			if vectors[i+1].NormSquared() == 0 {
				zeroNormals++
			}
		}
	}
	if len(positions) == 0 {
		essentials.Die("buffer contains no vertices")
	}

	min, max := positions[0].Copy(), positions[0].Copy()
	var totalNorm float64
	for _, p := range positions {
		min.MinSelf(p)
		max.MaxSelf(p)
		totalNorm += float64(p.Norm())
	}
	lowest := min.MinComponent()
	highest := max.MaxComponent()

	fmt.Println("Number of vertices:", len(positions))
	fmt.Println("Bounds:", min, "to", max)
	fmt.Printf("Lowest coordinate: %s=%f\n", axisNames[lowest.Index], lowest.Value)
	fmt.Printf("Highest coordinate: %s=%f\n", axisNames[highest.Index], highest.Value)
	fmt.Printf("Mean distance from origin: %f\n", totalNorm/float64(len(positions)))
	if normals {
		fmt.Println("Zero normals:", zeroNormals)
	}
}
