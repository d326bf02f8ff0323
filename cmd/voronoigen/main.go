// Command voronoigen is a thin driver over package voronoi: it builds a
// set of sites (random, or read from a file), runs
// voronoi.CreateVoronoiDiagram, and logs a summary — the Go-idiomatic
// equivalent of original_source/main.c's single call to
// create_voronoi_diagram, generalized past its hard-coded 10 sites and
// 1000x1000 box.
package main

import (
	"bufio"
	"fmt"
	"image"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/voronoi"
)

// cliConfig holds every value pflag binds; the library core never sees
// this type (SPEC_FULL.md §10.3 — no flag parsing below this boundary).
type cliConfig struct {
	width      int
	height     int
	siteCount  int
	sitesFile  string
	seed       int64
	tolerance  float64
	verbose    bool
	printEdges bool
}

func main() {
	cfg := parseFlags()

	log := logrus.New()
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	entry := logrus.NewEntry(log)

	if err := run(cfg, entry); err != nil {
		entry.WithError(err).Error("voronoigen: failed")
		os.Exit(1)
	}
}

func parseFlags() cliConfig {
	var cfg cliConfig
	flag.IntVar(&cfg.width, "width", 1000, "bounding box width")
	flag.IntVar(&cfg.height, "height", 1000, "bounding box height")
	flag.IntVar(&cfg.siteCount, "sites", 10, "number of random sites to generate (ignored if --sites-file is set)")
	flag.StringVar(&cfg.sitesFile, "sites-file", "", "path to a file of whitespace-separated \"x y\" site coordinates, one per line")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed for site generation")
	flag.Float64Var(&cfg.tolerance, "tolerance", voronoi.DefaultTolerance, "snapping/acceptance tolerance for boundary geometry")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log step-by-step sweep progress")
	flag.BoolVar(&cfg.printEdges, "print-edges", false, "print the full edge list after generation")
	flag.Parse()
	return cfg
}

func run(cfg cliConfig, log *logrus.Entry) error {
	bounds := image.Rect(0, 0, cfg.width, cfg.height)

	var sites []voronoi.Site
	var err error
	if cfg.sitesFile != "" {
		sites, err = readSitesFile(cfg.sitesFile)
		if err != nil {
			return errors.Wrapf(err, "read sites file %q", cfg.sitesFile)
		}
		log.WithFields(logrus.Fields{"file": cfg.sitesFile, "sites": len(sites)}).Info("voronoigen: loaded sites")
	} else {
		sites = randomSites(cfg.siteCount, bounds, rand.New(rand.NewSource(cfg.seed)))
		log.WithFields(logrus.Fields{"count": len(sites), "seed": cfg.seed}).Info("voronoigen: generated random sites")
	}

	el := dcel.NewEdgeList()
	diagram := voronoi.NewDiagram(el, float64(bounds.Dx()), float64(bounds.Dy()), voronoi.Config{Tolerance: cfg.tolerance})

	log.Info("voronoigen: sweeping")
	if err := diagram.Generate(sites, log); err != nil {
		return errors.Wrap(err, "generate diagram")
	}

	log.WithFields(logrus.Fields{
		"faces":     el.FaceCount(),
		"vertices":  el.VertexCount(),
		"halfEdges": el.HalfEdgeCount(),
	}).Info("voronoigen: done")

	if cfg.printEdges {
		voronoi.PrintEdgeList(el, os.Stdout)
	}
	return nil
}

// randomSites generates n sites strictly inside bounds using r — the
// explicit-source replacement for original_source/random.h's implicit
// global RNG (SPEC_FULL.md §12), taking care never to sit exactly on
// the box edge, which CreateVoronoiDiagram rejects.
func randomSites(n int, bounds image.Rectangle, r *rand.Rand) []voronoi.Site {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	sites := make([]voronoi.Site, n)
	for i := range sites {
		sites[i] = voronoi.Site{
			X: r.Float64()*(w-2) + 1,
			Y: r.Float64()*(h-2) + 1,
		}
	}
	return sites
}

// readSitesFile parses whitespace-separated "x y" pairs, one per
// non-empty, non-comment ("#"-prefixed) line.
func readSitesFile(path string) ([]voronoi.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sites []voronoi.Site
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sites = append(sites, voronoi.Site{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sites, nil
}
