package gnuplot

// Terminal names a gnuplot output terminal. The value is passed through
// to "set terminal" verbatim, so any terminal the installed engine
// understands can be used, including ones not listed here.
type Terminal string

// Terminals supported by stock gnuplot builds.
const (
	TerminalWxt         Terminal = "wxt"          // wxWidgets cross-platform interactive terminal
	TerminalCairoLatex  Terminal = "cairolatex"   // LaTeX picture environment with Cairo backend
	TerminalCanvas      Terminal = "canvas"       // HTML Canvas object
	TerminalCGM         Terminal = "cgm"          // Computer Graphics Metafile
	TerminalContext     Terminal = "context"      // ConTeXt with MetaFun
	TerminalDomterm     Terminal = "domterm"      // DomTerm terminal emulator with embedded SVG
	TerminalDpu414      Terminal = "dpu414"       // Seiko DPU-414 thermal printer
	TerminalDumb        Terminal = "dumb"         // ASCII art
	TerminalDxf         Terminal = "dxf"          // DXF file for AutoCAD
	TerminalEmf         Terminal = "emf"          // Enhanced Metafile format
	TerminalEpsCairo    Terminal = "epscairo"     // EPS based on Cairo
	TerminalEpsLatex    Terminal = "epslatex"     // LaTeX picture environment
	TerminalEpson180dpi Terminal = "epson_180dpi" // Epson LQ-style 180 dpi printers
	TerminalEpson60dpi  Terminal = "epson_60dpi"  // Epson-style 60 dpi printers
	TerminalEpsonLX800  Terminal = "epson_lx800"  // Epson LX-800 and relatives
	TerminalFig         Terminal = "fig"          // FIG graphics language for XFIG
	TerminalGIF         Terminal = "gif"          // GIF images using libgd
	TerminalHP500c      Terminal = "hp500c"       // HP DeskJet 500c
	TerminalHPDJ        Terminal = "hpdj"         // HP DeskJet 500
	TerminalHPGL        Terminal = "hpgl"         // HP7475 and relatives
	TerminalHPLJII      Terminal = "hpljii"       // HP Laserjet series II
	TerminalHPPJ        Terminal = "hppj"         // HP PaintJet and HP3630
	TerminalJPEG        Terminal = "jpeg"         // JPEG images using libgd
	TerminalLua         Terminal = "lua"          // Lua generic terminal driver
	TerminalMF          Terminal = "mf"           // Metafont plotting standard
	TerminalMP          Terminal = "mp"           // MetaPost plotting standard
	TerminalNECCP6      Terminal = "nec_cp6"      // NEC printer CP6, Epson LQ-800
	TerminalOkidata     Terminal = "okidata"      // OKIDATA 320/321 Standard
	TerminalPBM         Terminal = "pbm"          // Portable bitmap
	TerminalPCL5        Terminal = "pcl5"         // PCL5e/PCL5c printers using HP-GL/2
	TerminalPDFCairo    Terminal = "pdfcairo"     // PDF based on Cairo
	TerminalPict2e      Terminal = "pict2e"       // LaTeX2e picture environment
	TerminalPNG         Terminal = "png"          // PNG images using libgd
	TerminalPNGCairo    Terminal = "pngcairo"     // PNG based on Cairo
	TerminalPostscript  Terminal = "postscript"   // PostScript graphics
	TerminalPSLatex     Terminal = "pslatex"      // LaTeX with PostScript specials
	TerminalPSTeX       Terminal = "pstex"        // Plain TeX with PostScript specials
	TerminalPSTricks    Terminal = "pstricks"     // LaTeX with PSTricks macros
	TerminalSixelGD     Terminal = "sixelgd"      // Sixel using libgd
	TerminalSixelTek    Terminal = "sixeltek"     // Sixel using bitmap graphics
	TerminalStarc       Terminal = "starc"        // Star Color Printer
	TerminalSVG         Terminal = "svg"          // W3C Scalable Vector Graphics
	TerminalTandy60dpi  Terminal = "tandy_60dpi"  // Tandy DMP-130 series
	TerminalTek40xx     Terminal = "tek40xx"      // Tektronix 4010 and others
	TerminalTek410x     Terminal = "tek410x"      // Tektronix 4106/4107/4109/420X
	TerminalTexdraw     Terminal = "texdraw"      // LaTeX texdraw environment
	TerminalTikz        Terminal = "tikz"         // TeX TikZ graphics macros
	TerminalTkCanvas    Terminal = "tkcanvas"     // Tk canvas widget
	TerminalUnknown     Terminal = "unknown"      // not a plotting device
	TerminalVTTek       Terminal = "vttek"        // VT-like Tek40xx terminal emulator
	TerminalX11         Terminal = "x11"          // X11 interactive terminal
	TerminalXlib        Terminal = "xlib"         // X11 command stream dump
	TerminalXterm       Terminal = "xterm"        // Xterm Tektronix 4014 mode
)

// String returns the terminal name, defaulting to wxt for the empty
// value.
func (t Terminal) String() string {
	if t == "" {
		return string(TerminalWxt)
	}
	return string(t)
}
