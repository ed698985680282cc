package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/BedMatch/internal/importer"
	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/spf13/cobra"
)

// workpieceFlags holds the workpiece and candidate flags shared by the
// match, cost, compare and validate commands.
type workpieceFlags struct {
	length   float64
	width    float64
	quantity int
	margin   float64
	unit     string
	rotate   bool
	dxf      string

	surfaces []string
	category string
}

var wpFlags workpieceFlags

func addWorkpieceFlags(cmd *cobra.Command, f *workpieceFlags) {
	cmd.Flags().Float64VarP(&f.length, "length", "l", 0, "part length")
	cmd.Flags().Float64VarP(&f.width, "width", "w", 0, "part width")
	cmd.Flags().IntVarP(&f.quantity, "quantity", "q", 1, "number of parts required")
	cmd.Flags().Float64VarP(&f.margin, "margin", "m", 0, "spacing between parts (default from config)")
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "unit of length, width and margin: mm or in (default from config)")
	cmd.Flags().BoolVar(&f.rotate, "rotate", true, "allow 90° rotation (default from config)")
	cmd.Flags().StringVar(&f.dxf, "dxf", "", "read length and width from the bounding box of a DXF drawing")
}

func addSurfaceFlags(cmd *cobra.Command, f *workpieceFlags) {
	cmd.Flags().StringArrayVarP(&f.surfaces, "surface", "s", nil,
		"candidate surface as [NAME=]LENGTHxWIDTH in mm, repeatable (default: catalog)")
	cmd.Flags().StringVar(&f.category, "category", "", "only consider catalog surfaces of this size category")
}

// input builds the possibly incomplete workpiece described by the flags.
// Settings the user did not pass come from the config.
func (f *workpieceFlags) input(cmd *cobra.Command) (model.WorkpieceInput, error) {
	flags := cmd.Flags()

	w := model.Workpiece{}
	cfg.ApplyToWorkpiece(&w)
	if flags.Changed("unit") {
		u, ok := model.ParseUnit(f.unit)
		if !ok {
			return model.WorkpieceInput{}, fmt.Errorf("unknown unit %q (use mm or in)", f.unit)
		}
		if !flags.Changed("margin") {
			w.Margin = model.FromMillimeters(model.ToMillimeters(w.Margin, w.Unit), u)
		}
		w.Unit = u
	}
	if flags.Changed("margin") {
		w.Margin = f.margin
	}
	if flags.Changed("rotate") {
		w.RotationAllowed = f.rotate
	}

	in := model.WorkpieceInput{
		Margin:          &w.Margin,
		RotationAllowed: w.RotationAllowed,
		Unit:            w.Unit,
	}

	if f.dxf != "" {
		fp := importer.ImportFootprintDXF(f.dxf)
		for _, warn := range fp.Warnings {
			logger.Printf("%s: %s", f.dxf, warn)
		}
		if len(fp.Errors) > 0 {
			return model.WorkpieceInput{}, fmt.Errorf("failed to read footprint from %s: %s", f.dxf, strings.Join(fp.Errors, "; "))
		}
		logger.Printf("footprint from %s: %g x %g (%d shapes)", f.dxf, fp.Length, fp.Width, fp.Shapes)
		length, width := fp.Length, fp.Width
		in.Length, in.Width = &length, &width
	}
	if flags.Changed("length") {
		length := f.length
		in.Length = &length
	}
	if flags.Changed("width") {
		width := f.width
		in.Width = &width
	}
	if flags.Changed("quantity") {
		qty := f.quantity
		in.Quantity = &qty
	}
	return in, nil
}

// workpiece builds a complete workpiece; the quantity defaults to 1.
func (f *workpieceFlags) workpiece(cmd *cobra.Command) (model.Workpiece, error) {
	in, err := f.input(cmd)
	if err != nil {
		return model.Workpiece{}, err
	}
	w := model.Workpiece{
		Quantity:        f.quantity,
		Margin:          *in.Margin,
		RotationAllowed: in.RotationAllowed,
		Unit:            in.Unit,
	}
	if in.Length != nil {
		w.Length = *in.Length
	}
	if in.Width != nil {
		w.Width = *in.Width
	}
	return w, nil
}

// candidates returns the surfaces given with --surface, or the catalog
// filtered by --category.
func (f *workpieceFlags) candidates() ([]model.CandidateSurface, error) {
	if len(f.surfaces) > 0 {
		out := make([]model.CandidateSurface, 0, len(f.surfaces))
		for _, arg := range f.surfaces {
			s, err := parseSurface(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	if f.category == "" {
		return catalog.Surfaces, nil
	}
	cat, ok := model.ParseCategory(f.category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q (use small, medium, large or xlarge)", f.category)
	}
	return catalog.ByCategory(cat), nil
}

// parseSurface parses a surface given as [NAME=]LENGTHxWIDTH in mm.
func parseSurface(arg string) (model.CandidateSurface, error) {
	name, dims, hasName := strings.Cut(arg, "=")
	if !hasName {
		dims = arg
		name = ""
	}
	parts := strings.FieldsFunc(strings.ToLower(dims), func(r rune) bool { return r == 'x' })
	if len(parts) != 2 {
		return model.CandidateSurface{}, fmt.Errorf("invalid surface %q: expected [NAME=]LENGTHxWIDTH", arg)
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.CandidateSurface{}, fmt.Errorf("invalid surface length in %q: %w", arg, err)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.CandidateSurface{}, fmt.Errorf("invalid surface width in %q: %w", arg, err)
	}
	if length <= 0 || width <= 0 {
		return model.CandidateSurface{}, fmt.Errorf("invalid surface %q: length and width must be positive", arg)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%gx%g", length, width)
	}
	return model.NewCandidateSurface(name, length, width), nil
}
