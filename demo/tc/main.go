package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"tricount"
	"tricount/edgelist"
)

func main() {
	var cpuprofile, memprofile string
	var check bool
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional output file for a cpu profile")
	flag.StringVar(&memprofile, "memprofile", "", "optional output file for a mem profile")
	flag.BoolVar(&check, "check", false, "re-verify the count with the GraphBLAS recount")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalln("Missing input file.")
	}
	filename := flag.Arg(0)
	log.Printf("Reading edge list: %v\n", filename)

	tic := time.Now()
	G, err := tricount.Build(edgelist.File(filename))
	if err != nil {
		log.Fatalln(err)
	}
	stats := G.Stats()
	log.Printf("records %v self-loops %v duplicates %v edges %v nodes %v build %v\n",
		stats.Records, stats.SelfLoops, stats.Duplicates, stats.Edges, G.NumNodes(), time.Since(tic))
	ds := G.DegreeStats()
	log.Printf("degree mean %.2f median %.0f max %v\n", ds.Mean, ds.Median, ds.Max)

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	tic = time.Now()
	ntriangles := G.TriangleCount()
	log.Printf("Triangles %v time %v\n", ntriangles, time.Since(tic))

	if check {
		nt, err := tricount.CheckCount(G)
		if err != nil {
			log.Fatalln(err)
		}
		if nt != int(ntriangles) {
			log.Fatalf("check mismatch: kernel %v, GraphBLAS %v", ntriangles, nt)
		}
		log.Println("check OK")
	}

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
