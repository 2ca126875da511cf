// Command glcts runs the registered conformance suites against a
// context provider and prints the run report.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
	_ "github.com/gogpu/glcts/gl/glsoft"
	"github.com/gogpu/glcts/manifest"
	"github.com/gogpu/glcts/suites"
	_ "github.com/gogpu/glcts/suites/std"
)

func main() {
	var (
		provider     = flag.String("provider", "", "context provider name (default: registry default)")
		manifestPath = flag.String("manifest", "", "run-list manifest file")
		width        = flag.Int("width", 256, "default framebuffer width")
		height       = flag.Int("height", 256, "default framebuffer height")
		verbose      = flag.Bool("v", false, "log case execution")
		list         = flag.Bool("list", false, "list suites and providers, then exit")
	)
	flag.Parse()

	if *list {
		fmt.Println("suites:")
		for _, name := range suites.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("providers:")
		for _, name := range gl.Available() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	if *verbose {
		glcts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	opts := []glcts.Option{}
	providerName := *provider

	if *manifestPath != "" {
		m, warnings, err := manifest.Load(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
		for _, w := range warnings {
			log.Print(w)
		}
		opts = append(opts, glcts.WithFilter(m.Filter()))
		if providerName == "" {
			providerName = m.Provider
		}
	}

	p := gl.Default()
	if providerName != "" {
		p = gl.Get(providerName)
	}
	if p == nil {
		log.Fatalf("No context provider %q (available: %v)", providerName, gl.Available())
	}
	ctx, err := p.NewContext(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create %s context: %v", p.Name(), err)
	}
	opts = append(opts, glcts.WithContext(ctx))

	s := glcts.New("gles3", opts...)
	suites.Build(s)

	report, err := s.Run()
	if err != nil {
		log.Fatalf("Run aborted: %v", err)
	}
	fmt.Println(report)
	if !report.OK() {
		os.Exit(1)
	}
}
