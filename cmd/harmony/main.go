// harmony prints the dyad and triad of a base color. The color may be given
// as hex ("#3366cc", "36c") or as a color name ("tomato").
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

const defaultColor = "#3366cc"

var labelStyle = lipgloss.NewStyle().Bold(true).Width(8)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "harmony [color]",
		Short:        "Show the dyad and triad harmonies of a color",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := harmony.Harmonize(colorArg(args))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, set, func(w io.Writer) {
				printSwatch(w, "Base", set.Base)
				printSwatch(w, "Dyad", set.Diad[0])
				for i, hex := range set.Triad {
					printSwatch(w, "Triad "+strconv.Itoa(i+1), hex)
				}
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	cmd.AddCommand(
		newListCmd("diad", "Show the complementary color", harmony.Diad, &output),
		newListCmd("triad", "Show the two triadic colors", harmony.Triad, &output),
		newHSLCmd(&output),
		newHexCmd(&output),
	)
	return cmd
}

// colorArg resolves the optional color argument; an unresolvable value is
// returned unchanged so the harmony functions report it.
func colorArg(args []string) string {
	if len(args) == 0 {
		return defaultColor
	}
	if hex, err := harmony.Resolve(args[0]); err == nil {
		return hex
	}
	return args[0]
}

func newListCmd(use, short string, fn func(string) ([]string, error), output *string) *cobra.Command {
	return &cobra.Command{
		Use:          use + " [color]",
		Short:        short,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := fn(colorArg(args))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *output, colors, func(w io.Writer) {
				for _, hex := range colors {
					printSwatch(w, "", hex)
				}
			})
		},
	}
}

func newHSLCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:          "hsl [color]",
		Short:        "Convert a color to hue, saturation and lightness",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hsl, err := harmony.HexToHSL(colorArg(args))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *output, hsl, func(w io.Writer) {
				fmt.Fprintf(w, "hsl(%g, %g, %g)\n", hsl.H, hsl.S, hsl.L)
			})
		},
	}
}

func newHexCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:          "hex <hue> <saturation> <lightness>",
		Short:        "Convert hue (degrees), saturation and lightness (0-1) to hex",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]float64
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return errors.Wrapf(err, "argument %d", i+1)
				}
				vals[i] = v
			}
			if vals[1] < 0 || vals[1] > 1 {
				return errors.Errorf("saturation must be between 0 and 1, got %g", vals[1])
			}
			if vals[2] < 0 || vals[2] > 1 {
				return errors.Errorf("lightness must be between 0 and 1, got %g", vals[2])
			}
			hsl := harmony.Rotate(harmony.HSL{H: vals[0], S: vals[1], L: vals[2]}, 0)
			hex := "#" + harmony.HSLToHex(hsl.H, hsl.S, hsl.L)
			return render(cmd.OutOrStdout(), *output, map[string]string{"hex": hex}, func(w io.Writer) {
				printSwatch(w, "", hex)
			})
		},
	}
}

func render(w io.Writer, format string, v interface{}, text func(io.Writer)) error {
	switch format {
	case "text", "":
		text(w)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}

func printSwatch(w io.Writer, label, hex string) {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
	if label != "" {
		fmt.Fprintln(w, labelStyle.Render(label), block, hex)
		return
	}
	fmt.Fprintln(w, block, hex)
}
