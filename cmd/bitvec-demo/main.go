package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/anaghavi/bitvec"
	"github.com/sirupsen/logrus"
)

var (
	flagBits      = flag.Int("bits", 100, "Number of bits in the vector")
	flagLineWidth = flag.Int("line-width", 10, "Bits per line in the dump output")
	flagRandom    = flag.Bool("random", false, "Fill the vector with seeded random bits instead of the grid example")
	flagSeed      = flag.Int64("seed", 0, "Seed used with -random")
	flagLogLevel  = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
)

func main() {
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*flagLogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q - %v", *flagLogLevel, err)
	}
	log.SetLevel(level)

	if *flagBits < 4 {
		log.Fatalf("-bits must be at least 4, got %d", *flagBits)
	}
	if *flagLineWidth < 1 {
		log.Fatalf("-line-width must be positive, got %d", *flagLineWidth)
	}

	bv := bitvec.New(*flagBits)
	log.Debugf("Created %d-bit vector backed by %d bytes", bv.BitLen(), bv.ByteLen())

	if *flagRandom {
		rng := rand.New(rand.NewSource(*flagSeed))
		for i := 0; i < bv.BitLen(); i++ {
			if rng.Intn(2) == 1 {
				bv.Set(i)
			}
		}
	} else {
		// Address a single bit through its coordinate in a 2x2 grid
		dims := []int{2, 2}
		coord := []int{1, 1}
		i := bitvec.LinearIndex(dims, coord)
		log.Debugf("Coordinate %v in grid %v flattens to bit %d", coord, dims, i)
		bv.Set(i)
	}

	if err := bv.Dump(os.Stdout, *flagLineWidth); err != nil {
		log.Fatalf("Failed to dump bit vector - %v", err)
	}
	fmt.Println()

	dup := bv.Clone()
	if !dup.Equal(bv) {
		log.Fatal("Copy does not match its source")
	}
	if err := dup.Dump(os.Stdout, *flagLineWidth); err != nil {
		log.Fatalf("Failed to dump copied bit vector - %v", err)
	}

	bv.Release()
	dup.Release()
}
