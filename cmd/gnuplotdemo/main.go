// Command gnuplotdemo exercises the gnuplot driver against a locally
// installed gnuplot, writing a 2D and a 3D demo plot to files.
package main

import (
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/gnuplot"
)

func main() {
	var (
		executable = pflag.String("executable", "", "path to the gnuplot binary (default: autodetect)")
		terminal   = pflag.String("terminal", "svg", "output terminal")
		output     = pflag.String("output", "demo-2d.svg", "2D demo output file")
		output3D   = pflag.String("output-3d", "demo-3d.svg", "3D demo output file")
		configPath = pflag.String("config", "", "optional YAML config file")
		verbose    = pflag.BoolP("verbose", "v", false, "log every directive")
	)
	pflag.Parse()

	if *verbose {
		gnuplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []gnuplot.Option{
		gnuplot.WithTerminal(gnuplot.Terminal(*terminal)),
		gnuplot.WithDebug(*verbose),
	}
	if *configPath != "" {
		cfg, err := gnuplot.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		opts = append([]gnuplot.Option{gnuplot.WithConfig(cfg)}, opts...)
	}
	if *executable != "" {
		opts = append(opts, gnuplot.WithExecutable(*executable))
	}

	gp, err := gnuplot.New(opts...)
	if err != nil {
		log.Fatalf("open gnuplot session: %v", err)
	}
	defer gp.Close()

	draw2D(gp, *output)
	draw3D(gp, *output3D)

	log.Printf("Demos saved to %s and %s", *output, *output3D)
}

func draw2D(gp *gnuplot.Session, output string) {
	n := 200
	x := make([]float64, n)
	sin := make([]float64, n)
	damped := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * 4 * math.Pi / float64(n-1)
		sin[i] = math.Sin(x[i])
		damped[i] = math.Exp(-x[i]/4) * math.Sin(x[i])
	}

	gp.SetOutput(output).
		SetTitle("damped oscillation").
		SetXLabel("t").
		SetYLabel("amplitude").
		SetGridLineStyle(gnuplot.GridMajor, gnuplot.LineDashed, gnuplot.RGB(160, 160, 160), 1, "").
		ApplyGrid("xtics ytics", "back", true).
		SetLegend(gnuplot.NewLegend("top right"))

	gp.SetPlotStyle(gnuplot.StyleLines).
		SetLineColor("blue").
		SetLineWidth(1)
	gp.PlotXY(x, sin, "sin(t)")

	gp.SetLineColor("red").SetLineWidth(2)
	gp.PlotXY(x, damped, "exp(-t/4) sin(t)")

	if err := gp.Err(); err != nil {
		log.Printf("2D demo reported: %v", err)
	}
}

func draw3D(gp *gnuplot.Session, output string) {
	n := 40
	xs := make([]float64, n)
	ys := make([]float64, n)
	z := make([][]float64, n)
	for i := range xs {
		xs[i] = -2 + 4*float64(i)/float64(n-1)
		ys[i] = -2 + 4*float64(i)/float64(n-1)
	}
	for i := range xs {
		z[i] = make([]float64, n)
		for j := range ys {
			r := math.Hypot(xs[i], ys[j])
			z[i][j] = math.Cos(r*3) * math.Exp(-r)
		}
	}

	gp.ResetPlot().
		SetOutput(output).
		SetTitle("ripple").
		SetZLabel("z").
		SetHidden3D().
		SetContourType(gnuplot.ContourBase).
		SetContourParam(gnuplot.ContourLevels).
		SetContourLevels(12).
		ApplyContourSettings()

	gp.SetPlotStyle(gnuplot.StyleLines).
		SetLineColor("").
		SetLineWidth(1)
	gp.PlotGrid3D(xs, ys, z, "cos(3r) exp(-r)")

	if err := gp.Err(); err != nil {
		log.Printf("3D demo reported: %v", err)
	}
}
